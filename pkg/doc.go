// Package pkg provides the libraries behind algographics, a drawing helper
// for figures that explain string algorithms.
//
// # Overview
//
// A figure is a row (or several rows) of character cells with position
// numbers, highlighted cells, arrows, brackets and translucent overlays. The
// pkg directory is organized bottom-up:
//
//  1. [surface] - Drawing contexts: PNG raster, SVG vector and a recorder
//  2. [fonts] - Embedded font and ink-box text measurement
//  3. [diagram] - Character rows, arrows, brackets, highlights and text
//  4. [export] - SaveSVG / SavePNG and their io.Writer variants
//  5. [scene] - TOML scene files drawn through [diagram]
//
// [errors] and [buildinfo] support the command line in internal/cli.
//
// # Architecture
//
//	scene.toml ──▶ [scene] ──▶ [diagram] ──▶ [surface].Context
//	                                              │
//	                       [export] ◀─────────────┘
//	                          │
//	                    SVG / PNG files
//
// Every diagram routine takes a [surface.Context] and absolute coordinates.
// Nothing is laid out automatically and nothing outlives a single export.
//
// # Quick Start
//
//	err := export.SavePNG(func(c surface.Context) {
//	    diagram.DrawCharList(c, 50, 100, "ABRACADABRA",
//	        diagram.WithHighlight(3),
//	        diagram.WithArrows(diagram.Arrow{Position: 3, Caption: "i"}))
//	}, "abra.png", export.WithSize(700, 250))
//
// [surface]: https://pkg.go.dev/github.com/algographics/algographics/pkg/surface
// [surface.Context]: https://pkg.go.dev/github.com/algographics/algographics/pkg/surface#Context
// [fonts]: https://pkg.go.dev/github.com/algographics/algographics/pkg/fonts
// [diagram]: https://pkg.go.dev/github.com/algographics/algographics/pkg/diagram
// [export]: https://pkg.go.dev/github.com/algographics/algographics/pkg/export
// [scene]: https://pkg.go.dev/github.com/algographics/algographics/pkg/scene
// [errors]: https://pkg.go.dev/github.com/algographics/algographics/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/algographics/algographics/pkg/buildinfo
package pkg
