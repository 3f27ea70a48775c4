package diagram

import (
	"math"

	"github.com/algographics/algographics/pkg/surface"
)

const (
	shapeLineWidth   = 2
	captionFontSize  = 20
	bracketRadius    = 10
	bracketNotchRise = 20
)

// DrawArrow draws an upward pointing arrow with its tip at (x, y) and the
// caption centred below the shaft.
func DrawArrow(c surface.Context, x, y float64, caption string) {
	c.SetLineWidth(shapeLineWidth)
	c.SetFontSize(captionFontSize)

	c.MoveTo(x, y)
	c.LineTo(x+5, y+10)
	c.LineTo(x-5, y+10)
	c.Fill()
	c.MoveTo(x, y+10)
	c.LineTo(x, y+30)
	c.Stroke()

	DrawCenteredText(c, Box{X: x - 10, Y: y + 30, W: 20, H: 30}, captionFontSize, caption)
}

// DrawBracket draws a curly bracket from x1 to x2 whose ends rest on y and
// whose notch, in the middle, rises to y-20. The caption is centred above the
// notch.
func DrawBracket(c surface.Context, x1, x2, y float64, caption string) {
	const r = bracketRadius
	mid := (x1 + x2) / 2
	top := y - bracketNotchRise

	c.SetLineWidth(shapeLineWidth)
	c.SetFontSize(captionFontSize)

	c.Arc(x1+r, y, r, math.Pi, 1.5*math.Pi)
	c.LineTo(mid-r, y-r)
	c.Stroke()
	c.Arc(mid-r, top, r, 0, 0.5*math.Pi)
	c.MoveTo(mid+r, y-r)
	c.LineTo(x2-r, y-r)
	c.Stroke()
	c.Arc(mid+r, top, r, 0.5*math.Pi, math.Pi)
	c.Stroke()
	c.Arc(x2-r, y, r, 1.5*math.Pi, 0)
	c.Stroke()

	DrawCenteredText(c, Box{X: mid - 20, Y: y - 45, W: 40, H: 20}, captionFontSize, caption)
}
