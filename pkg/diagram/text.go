package diagram

import "github.com/algographics/algographics/pkg/surface"

// Box is an axis aligned rectangle in drawing units.
type Box struct {
	X, Y, W, H float64
}

// CenteredOrigin returns the drawing origin that centres the ink box of text
// inside b at the given font size. It sets the font size on c.
func CenteredOrigin(c surface.Context, b Box, fontSize float64, text string) (x, y float64) {
	c.SetFontSize(fontSize)
	e := c.TextExtents(text)
	x = b.X + b.W/2 - (e.Width/2 + e.XBearing)
	y = b.Y + b.H/2 - (e.Height/2 + e.YBearing)
	return x, y
}

// DrawCenteredText draws text with its ink centred in b.
func DrawCenteredText(c surface.Context, b Box, fontSize float64, text string) {
	x, y := CenteredOrigin(c, b, fontSize, text)
	showText(c, x, y, text)
}

// DrawTextFixedY centres text horizontally in b and puts its baseline at
// b.Y + yOffset.
func DrawTextFixedY(c surface.Context, b Box, fontSize float64, text string, yOffset float64) {
	x, _ := CenteredOrigin(c, b, fontSize, text)
	showText(c, x, b.Y+yOffset, text)
}

func showText(c surface.Context, x, y float64, text string) {
	c.MoveTo(x, y)
	c.ShowText(text)
	c.Stroke()
}
