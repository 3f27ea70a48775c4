package surface

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/algographics/algographics/pkg/fonts"
)

// VectorOption configures a Vector surface.
type VectorOption func(*Vector)

// WithEmbeddedFont embeds the measuring font in the document as an
// @font-face rule, so viewers lay text out with the same metrics.
func WithEmbeddedFont() VectorOption {
	return func(v *Vector) { v.embedFont = true }
}

// Vector is an SVG surface. Every Fill and Stroke becomes a path element and
// every ShowText a text element, in drawing order.
type Vector struct {
	state
	out       *errWriter
	doc       *svg.SVG
	embedFont bool
	finished  bool
}

var _ Context = (*Vector)(nil)

// NewVector starts an SVG document of the given size on w.
// The document is complete once Finish is called.
func NewVector(w io.Writer, width, height int, opts ...VectorOption) *Vector {
	out := &errWriter{w: w}
	v := &Vector{state: newState(), out: out, doc: svg.New(out)}
	for _, opt := range opts {
		opt(v)
	}
	v.doc.Start(width, height)
	if v.embedFont {
		v.doc.Style("text/css", fontFaceCSS())
	}
	return v
}

func fontFaceCSS() string {
	return fmt.Sprintf("@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
		fonts.FontFamily, fonts.TTFBase64())
}

func (v *Vector) Fill() {
	path := v.takePath()
	if len(path) == 0 {
		return
	}
	v.doc.Path(pathData(path), fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none",
		rgb(v.color), num(v.color.A)))
}

func (v *Vector) Stroke() {
	path := v.takePath()
	if len(path) == 0 {
		return
	}
	v.doc.Path(pathData(path), fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s",
		rgb(v.color), num(v.color.A), num(v.lineWidth)))
}

func (v *Vector) ShowText(s string) {
	o := v.advance(s)
	v.doc.Gtransform(fmt.Sprintf("translate(%s,%s)", num(o.x), num(o.y)))
	v.doc.Text(0, 0, s, fmt.Sprintf("font-family:%s;font-size:%spx;fill:%s;fill-opacity:%s;white-space:pre",
		fonts.FallbackFontFamily, num(v.fontSize), rgb(v.color), num(v.color.A)))
	v.doc.Gend()
}

// Finish closes the document and returns the first error from drawing or writing.
// Calling Finish more than once has no further effect.
func (v *Vector) Finish() error {
	if !v.finished {
		v.doc.End()
		v.finished = true
		v.fail(v.close())
	}
	return v.Err()
}

// Err reports the first measuring or write failure.
func (v *Vector) Err() error {
	if v.err != nil {
		return v.err
	}
	return v.out.err
}

func pathData(path []Segment) string {
	var b strings.Builder
	for _, seg := range path {
		switch seg.Kind {
		case MoveSegment:
			fmt.Fprintf(&b, "M%s %s ", num(seg.X), num(seg.Y))
		case LineSegment:
			fmt.Fprintf(&b, "L%s %s ", num(seg.X), num(seg.Y))
		case ArcSegment:
			writeArc(&b, seg)
		case CloseSegment:
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}

// writeArc emits one SVG arc command per half turn at most, so the large-arc
// flag is always 0 and full circles still have distinct end points.
func writeArc(b *strings.Builder, seg Segment) {
	sweep := seg.Angle2 - seg.Angle1
	if sweep <= 0 {
		return
	}
	pieces := int(math.Ceil(sweep / math.Pi))
	step := sweep / float64(pieces)
	for i := 1; i <= pieces; i++ {
		a := seg.Angle1 + step*float64(i)
		x := seg.X + seg.Radius*math.Cos(a)
		y := seg.Y + seg.Radius*math.Sin(a)
		fmt.Fprintf(b, "A%s %s 0 0 1 %s %s ", num(seg.Radius), num(seg.Radius), num(x), num(y))
	}
}

func rgb(c RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
