// Package fonts provides the embedded font used to measure and paint text.
//
// Every surface measures labels with the same font, so a caption centred in
// an SVG document lands on the same spot as in a PNG of the same diagram.
// The font is Go Regular from golang.org/x/image, embedded in the binary.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the CSS font-family name for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers without the embedded font.
const FallbackFontFamily = `'Go', 'DejaVu Sans', 'Helvetica', sans-serif`

// TTF returns the embedded TrueType font data.
func TTF() []byte {
	return goregular.TTF
}

// Parsed fonts and encodings are computed once and never modified afterwards.
var (
	parsedFont     *opentype.Font
	parsedFontErr  error
	parsedFontOnce sync.Once

	source     *text.FontSource
	sourceErr  error
	sourceOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

func parsed() (*opentype.Font, error) {
	parsedFontOnce.Do(func() {
		parsedFont, parsedFontErr = opentype.Parse(goregular.TTF)
	})
	return parsedFont, parsedFontErr
}

// Source returns the embedded font as a gogpu text source for raster drawing.
func Source() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
	})
	return source, sourceErr
}

// TTFBase64 returns the TTF font data as a base64 string.
// The result is cached after first computation.
func TTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// Extents is the ink box of a rendered string, relative to its drawing origin
// on the baseline. YBearing is negative for glyphs that rise above the baseline.
type Extents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
}

// Measurer measures text with the embedded font, keeping one face per size.
// A Measurer is not safe for concurrent use.
type Measurer struct {
	faces map[float64]font.Face
}

// NewMeasurer returns an empty Measurer.
func NewMeasurer() *Measurer {
	return &Measurer{faces: make(map[float64]font.Face)}
}

// Extents returns the ink box of s at the given size in pixels.
// The empty string has a zero box.
func (m *Measurer) Extents(size float64, s string) (Extents, error) {
	if s == "" {
		return Extents{}, nil
	}
	face, err := m.face(size)
	if err != nil {
		return Extents{}, err
	}
	bounds, advance := font.BoundString(face, s)
	return Extents{
		XBearing: toFloat(bounds.Min.X),
		YBearing: toFloat(bounds.Min.Y),
		Width:    toFloat(bounds.Max.X - bounds.Min.X),
		Height:   toFloat(bounds.Max.Y - bounds.Min.Y),
		XAdvance: toFloat(advance),
	}, nil
}

// Close releases the cached faces.
func (m *Measurer) Close() error {
	var first error
	for size, f := range m.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(m.faces, size)
	}
	return first
}

func (m *Measurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	fnt, err := parsed()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
