package diagram

import "github.com/algographics/algographics/pkg/surface"

// ColorHighlight fills the cells at the given positions of a row starting at
// (x, y) with col, in order. Positions are column indexes, not offset
// positions. The source colour stays set to col afterwards.
func ColorHighlight(c surface.Context, x, y float64, col surface.RGBA, positions ...int) {
	c.SetSourceRGBA(col.R, col.G, col.B, col.A)
	for _, p := range positions {
		c.Rectangle(x+CellSize*float64(p), y, CellSize, CellSize)
		c.Fill()
	}
}
