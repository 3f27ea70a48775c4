// Package surface defines the drawing context diagrams are painted on and the
// surfaces that back it.
//
// # Context
//
// [Context] is a stateful cursor with a current path, a current point, a line
// width, a font size and a source colour. It follows the familiar path model:
//
//   - MoveTo, LineTo, Arc and Rectangle build the current path
//   - Arc draws a straight line from the current point to its start
//   - Fill and Stroke paint the path and clear it, including the current point
//   - ShowText paints at the current point and advances it
//
// Angles are in radians and turn from +x towards +y, which is clockwise on
// screen because y grows downwards.
//
// # Surfaces
//
//   - [Raster]: pixel canvas backed by github.com/gogpu/gg, encoded as PNG
//   - [Vector]: SVG document written with github.com/ajstarks/svgo
//   - [Recorder]: keeps every paint operation for inspection
//
// All three measure text with the embedded font from [fonts], so centred
// labels are placed identically everywhere.
//
// # Errors
//
// Backend failures are sticky. The first one is kept and returned by
// Context.Err; drawing calls after a failure are still accepted.
//
// Surfaces are not safe for concurrent use.
//
// [fonts]: github.com/algographics/algographics/pkg/fonts
package surface
