package export

import (
	"fmt"
	"io"
	"os"

	"github.com/algographics/algographics/pkg/surface"
)

// Default canvas size in pixels (PNG) or user units (SVG).
const (
	DefaultWidth  = 1000
	DefaultHeight = 400
)

// DrawFunc draws a diagram onto c.
type DrawFunc func(c surface.Context)

// Option configures an export.
type Option func(*options)

type options struct {
	width       int
	height      int
	transparent bool
	embedFont   bool
}

// WithSize sets the canvas size (default 1000×400).
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithTransparentBackground leaves the PNG canvas transparent instead of
// painting it white. It has no effect on SVG output.
func WithTransparentBackground() Option {
	return func(o *options) { o.transparent = true }
}

// WithEmbeddedFont embeds the measuring font in SVG output.
// It has no effect on PNG output.
func WithEmbeddedFont() Option {
	return func(o *options) { o.embedFont = true }
}

func newOptions(opts []Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteSVG draws fn into an SVG document and writes it to w.
func WriteSVG(fn DrawFunc, w io.Writer, opts ...Option) error {
	o := newOptions(opts)
	var vopts []surface.VectorOption
	if o.embedFont {
		vopts = append(vopts, surface.WithEmbeddedFont())
	}
	v := surface.NewVector(w, o.width, o.height, vopts...)
	fn(v)
	if err := v.Finish(); err != nil {
		return fmt.Errorf("draw svg: %w", err)
	}
	return nil
}

// SaveSVG writes the SVG rendering of fn to filename.
// This is a convenience wrapper around [WriteSVG] for file-based output.
func SaveSVG(fn DrawFunc, filename string, opts ...Option) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := WriteSVG(fn, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePNG draws fn onto a raster canvas and writes it to w as PNG.
func WritePNG(fn DrawFunc, w io.Writer, opts ...Option) error {
	o := newOptions(opts)
	r := surface.NewRaster(o.width, o.height)
	defer r.Close()

	if !o.transparent {
		paintBackground(r, o.width, o.height)
	}
	fn(r)
	if err := r.Err(); err != nil {
		return fmt.Errorf("draw png: %w", err)
	}
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the PNG rendering of fn to filename.
// This is a convenience wrapper around [WritePNG] for file-based output.
func SavePNG(fn DrawFunc, filename string, opts ...Option) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := WritePNG(fn, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// paintBackground fills the canvas white and restores the default black pen.
func paintBackground(c surface.Context, width, height int) {
	c.SetSourceRGBA(1, 1, 1, 1)
	c.Rectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetSourceRGBA(0, 0, 0, 1)
}
