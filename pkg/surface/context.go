package surface

import (
	"math"

	"github.com/algographics/algographics/pkg/fonts"
)

// Extents is the ink box of a string at the current font size.
type Extents = fonts.Extents

// RGBA is a colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
)

// Context is the drawing context handed to diagram routines.
type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(xc, yc, radius, angle1, angle2 float64)
	Rectangle(x, y, width, height float64)
	ClosePath()

	// Fill paints the inside of the current path and clears it.
	Fill()
	// Stroke paints the outline of the current path and clears it.
	Stroke()

	SetLineWidth(width float64)
	SetFontSize(size float64)
	SetSourceRGBA(r, g, b, a float64)

	// TextExtents measures s at the current font size.
	TextExtents(s string) Extents
	// ShowText paints s with its origin at the current point.
	ShowText(s string)

	// Err returns the first failure reported by the backend, if any.
	Err() error
}

const (
	defaultLineWidth = 2.0
	defaultFontSize  = 10.0
)

// SegmentKind identifies a path segment.
type SegmentKind uint8

const (
	MoveSegment SegmentKind = iota
	LineSegment
	ArcSegment
	CloseSegment
)

func (k SegmentKind) String() string {
	switch k {
	case MoveSegment:
		return "move"
	case LineSegment:
		return "line"
	case ArcSegment:
		return "arc"
	case CloseSegment:
		return "close"
	}
	return "unknown"
}

// Segment is one element of a path. X and Y are the end point of a move or
// line and the centre of an arc. Angle2 of an arc is never less than Angle1.
type Segment struct {
	Kind           SegmentKind
	X, Y           float64
	Radius         float64
	Angle1, Angle2 float64
}

// ArcStart returns the first point of an arc segment.
func (s Segment) ArcStart() (x, y float64) {
	return s.X + s.Radius*math.Cos(s.Angle1), s.Y + s.Radius*math.Sin(s.Angle1)
}

// ArcEnd returns the last point of an arc segment.
func (s Segment) ArcEnd() (x, y float64) {
	return s.X + s.Radius*math.Cos(s.Angle2), s.Y + s.Radius*math.Sin(s.Angle2)
}

type point struct{ x, y float64 }

// state is the backend independent part of a Context: path construction,
// pen settings, text metrics and the sticky error.
type state struct {
	path   []Segment
	cur    point
	hasCur bool
	start  point

	lineWidth float64
	fontSize  float64
	color     RGBA

	measurer *fonts.Measurer
	err      error
}

func newState() state {
	return state{
		lineWidth: defaultLineWidth,
		fontSize:  defaultFontSize,
		color:     Black,
		measurer:  fonts.NewMeasurer(),
	}
}

func (s *state) MoveTo(x, y float64) {
	s.path = append(s.path, Segment{Kind: MoveSegment, X: x, Y: y})
	s.cur = point{x, y}
	s.start = s.cur
	s.hasCur = true
}

// LineTo behaves like MoveTo when there is no current point.
func (s *state) LineTo(x, y float64) {
	if !s.hasCur {
		s.MoveTo(x, y)
		return
	}
	s.path = append(s.path, Segment{Kind: LineSegment, X: x, Y: y})
	s.cur = point{x, y}
}

func (s *state) Arc(xc, yc, radius, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	seg := Segment{Kind: ArcSegment, X: xc, Y: yc, Radius: radius, Angle1: angle1, Angle2: angle2}
	sx, sy := seg.ArcStart()
	if s.hasCur {
		s.LineTo(sx, sy)
	} else {
		s.MoveTo(sx, sy)
	}
	s.path = append(s.path, seg)
	ex, ey := seg.ArcEnd()
	s.cur = point{ex, ey}
}

func (s *state) Rectangle(x, y, width, height float64) {
	s.MoveTo(x, y)
	s.LineTo(x+width, y)
	s.LineTo(x+width, y+height)
	s.LineTo(x, y+height)
	s.ClosePath()
}

func (s *state) ClosePath() {
	if len(s.path) == 0 {
		return
	}
	s.path = append(s.path, Segment{Kind: CloseSegment})
	s.cur = s.start
}

// takePath returns the current path and clears it together with the current
// point. A path made of moves only paints nothing and is returned as nil.
func (s *state) takePath() []Segment {
	p := s.path
	s.path = nil
	s.hasCur = false
	for _, seg := range p {
		if seg.Kind != MoveSegment {
			return p
		}
	}
	return nil
}

func (s *state) SetLineWidth(width float64) { s.lineWidth = width }
func (s *state) SetFontSize(size float64)   { s.fontSize = size }

func (s *state) SetSourceRGBA(r, g, b, a float64) {
	s.color = RGBA{r, g, b, a}
}

func (s *state) TextExtents(text string) Extents {
	e, err := s.measurer.Extents(s.fontSize, text)
	s.fail(err)
	return e
}

// advance returns the origin for text and moves the current point past it.
func (s *state) advance(text string) point {
	origin := s.cur
	e := s.TextExtents(text)
	s.MoveTo(origin.x+e.XAdvance, origin.y)
	return origin
}

func (s *state) fail(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *state) Err() error { return s.err }

func (s *state) close() error {
	return s.measurer.Close()
}
