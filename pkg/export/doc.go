// Package export writes diagrams to SVG and PNG.
//
// # Overview
//
// A diagram is a [DrawFunc]: a closure that draws onto a [surface.Context]
// using the routines in package diagram. The exporters create the surface,
// call the closure once and encode the result:
//
//	err := export.SavePNG(func(c surface.Context) {
//	    diagram.DrawCharList(c, 50, 100, "ABRACADABRA", diagram.WithHighlight(3))
//	}, "abra.png", export.WithSize(700, 250))
//
// Use [SaveSVG] and [SavePNG] for files, or [WriteSVG] and [WritePNG] for any
// io.Writer.
//
// # Backgrounds
//
// PNG output is painted on opaque white unless [WithTransparentBackground]
// is given. SVG output never has a background.
//
// # Fonts
//
// Text is centred using the metrics of the embedded Go font. PNG output uses
// that font directly. SVG viewers substitute their own font unless
// [WithEmbeddedFont] puts the font into the document.
//
// # Errors
//
// The first failure from creating the file, drawing or encoding is returned.
// File errors keep their cause, so errors.Is(err, fs.ErrNotExist) works.
package export
