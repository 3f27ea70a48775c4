// Package diagram draws annotated character arrays for explaining
// pattern-matching algorithms.
//
// # Overview
//
// A character array is a row of 50×50 cells, one per rune, laid out left to
// right from a caller supplied origin. [DrawCharList] draws the row together
// with its decorations:
//
//   - position numbers under the cells (every fifth position or an explicit set)
//   - thicker borders for highlighted positions
//   - ellipsis connectors marking omitted text on either side
//   - arrows with captions below the row
//   - captioned brackets above the row, stacked by layer
//
// [ColorHighlight] paints translucent rectangles over cells afterwards, and
// [DrawArrow], [DrawBracket] and [DrawCenteredText] are available on their own.
//
// All routines are stateless. They validate nothing: out of range positions
// simply draw outside the row. Every coordinate is absolute; there is no
// layout engine.
//
// # Positions
//
// Highlight, arrow and bracket positions are absolute, that is they already
// include the numbering offset. With WithNumbersOffset(10) the first cell is
// position 10 and an arrow at position 12 points at the third cell.
//
// # Usage
//
//	export.SavePNG(func(c surface.Context) {
//	    diagram.DrawCharList(c, 50, 100, "ABRACADABRA",
//	        diagram.WithHighlight(3),
//	        diagram.WithArrows(diagram.Arrow{Position: 3, Caption: "i"}),
//	        diagram.WithBrackets(diagram.Bracket{Start: 0, End: 3, Caption: "w"}),
//	    )
//	    diagram.ColorHighlight(c, 50, 100, surface.RGBA{R: 1, G: 0.8, A: 0.4}, 0, 7)
//	}, "abra.png")
package diagram
