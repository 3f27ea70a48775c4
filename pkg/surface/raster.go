package surface

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/algographics/algographics/pkg/fonts"
)

// Raster is a pixel surface backed by a gogpu/gg context.
// The canvas starts fully transparent.
type Raster struct {
	state
	dc    *gg.Context
	faces map[float64]text.Face
}

var _ Context = (*Raster)(nil)

// NewRaster creates a transparent canvas of the given size in pixels.
func NewRaster(width, height int) *Raster {
	return &Raster{
		state: newState(),
		dc:    gg.NewContext(width, height),
		faces: make(map[float64]text.Face),
	}
}

// Width returns the canvas width in pixels.
func (r *Raster) Width() int { return r.dc.Width() }

// Height returns the canvas height in pixels.
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Fill() {
	path := r.takePath()
	if len(path) == 0 {
		return
	}
	r.build(path)
	r.dc.SetRGBA(r.color.R, r.color.G, r.color.B, r.color.A)
	r.fail(r.dc.Fill())
}

func (r *Raster) Stroke() {
	path := r.takePath()
	if len(path) == 0 {
		return
	}
	r.build(path)
	r.dc.SetLineWidth(r.lineWidth)
	r.dc.SetRGBA(r.color.R, r.color.G, r.color.B, r.color.A)
	r.fail(r.dc.Stroke())
}

func (r *Raster) build(path []Segment) {
	for _, seg := range path {
		switch seg.Kind {
		case MoveSegment:
			r.dc.MoveTo(seg.X, seg.Y)
		case LineSegment:
			r.dc.LineTo(seg.X, seg.Y)
		case ArcSegment:
			r.dc.DrawArc(seg.X, seg.Y, seg.Radius, seg.Angle1, seg.Angle2)
		case CloseSegment:
			r.dc.ClosePath()
		}
	}
}

func (r *Raster) ShowText(s string) {
	face, err := r.face(r.fontSize)
	if err != nil {
		r.fail(err)
		return
	}
	o := r.advance(s)
	r.dc.SetFont(face)
	r.dc.SetRGBA(r.color.R, r.color.G, r.color.B, r.color.A)
	r.dc.DrawString(s, o.x, o.y)
}

func (r *Raster) face(size float64) (text.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	src, err := fonts.Source()
	if err != nil {
		return nil, err
	}
	f := src.Face(size, text.WithHinting(text.HintingNone))
	r.faces[size] = f
	return f, nil
}

// Image returns the current pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the canvas and cached faces.
func (r *Raster) Close() error {
	return errors.Join(r.close(), r.dc.Close())
}
