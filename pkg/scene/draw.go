package scene

import (
	"github.com/algographics/algographics/pkg/diagram"
	"github.com/algographics/algographics/pkg/surface"
)

// Draw paints the scene onto c. It has the signature of export.DrawFunc.
func (s *Scene) Draw(c surface.Context) {
	c.SetSourceRGBA(0, 0, 0, 1)
	for _, r := range s.Rows {
		diagram.DrawCharList(c, r.X, r.Y, r.Chars, r.options()...)
	}
	for _, b := range s.Brackets {
		diagram.DrawBracket(c, b.X1, b.X2, b.Y, b.Caption)
	}
	for _, a := range s.Arrows {
		diagram.DrawArrow(c, a.X, a.Y, a.Caption)
	}
	for _, l := range s.Labels {
		diagram.DrawCenteredText(c, diagram.Box{X: l.X, Y: l.Y, W: l.Width, H: l.Height}, l.FontSize, l.Text)
	}
	for _, o := range s.Overlays {
		diagram.ColorHighlight(c, o.X, o.Y, o.resolved, o.Positions...)
	}
}

func (r Row) options() []diagram.CharListOption {
	opts := []diagram.CharListOption{
		diagram.WithHighlight(r.Highlight...),
		diagram.WithNumbers(r.numbering()),
		diagram.WithNumbersOffset(r.NumbersOffset),
	}
	if r.DotsLeft {
		opts = append(opts, diagram.WithDotsLeft())
	}
	if r.DotsRight {
		opts = append(opts, diagram.WithDotsRight())
	}
	if r.Frame != nil && !*r.Frame {
		opts = append(opts, diagram.WithoutFrame())
	}
	for _, a := range r.Arrows {
		opts = append(opts, diagram.WithArrows(diagram.Arrow{Position: a.Position, Caption: a.Caption}))
	}
	for _, b := range r.Brackets {
		opts = append(opts, diagram.WithBrackets(diagram.Bracket{Start: b.Start, End: b.End, Layer: b.Layer, Caption: b.Caption}))
	}
	return opts
}

func (r Row) numbering() diagram.Numbering {
	switch r.Numbers {
	case NumbersNone:
		return diagram.NoNumbers
	case NumbersExplicit:
		return diagram.NumbersAt(r.NumberPositions...)
	}
	return diagram.EveryFifth
}
