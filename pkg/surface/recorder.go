package surface

// OpKind identifies a recorded paint operation.
type OpKind uint8

const (
	FillOp OpKind = iota
	StrokeOp
	TextOp
)

func (k OpKind) String() string {
	switch k {
	case FillOp:
		return "fill"
	case StrokeOp:
		return "stroke"
	case TextOp:
		return "text"
	}
	return "unknown"
}

// Op is one paint operation with the pen state it was painted with.
// Path is set for fills and strokes, Text and X, Y (the origin) for text.
type Op struct {
	Kind      OpKind
	Path      []Segment
	LineWidth float64
	FontSize  float64
	Color     RGBA
	Text      string
	X, Y      float64
}

// Recorder is a Context that paints nothing and keeps every operation instead.
// Fills and strokes of an empty path paint nothing and are not recorded.
type Recorder struct {
	state
	ops []Op
}

var _ Context = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{state: newState()}
}

func (r *Recorder) Fill()   { r.paint(FillOp) }
func (r *Recorder) Stroke() { r.paint(StrokeOp) }

func (r *Recorder) paint(kind OpKind) {
	path := r.takePath()
	if len(path) == 0 {
		return
	}
	r.ops = append(r.ops, Op{
		Kind:      kind,
		Path:      path,
		LineWidth: r.lineWidth,
		FontSize:  r.fontSize,
		Color:     r.color,
	})
}

func (r *Recorder) ShowText(s string) {
	o := r.advance(s)
	r.ops = append(r.ops, Op{
		Kind:      TextOp,
		LineWidth: r.lineWidth,
		FontSize:  r.fontSize,
		Color:     r.color,
		Text:      s,
		X:         o.x,
		Y:         o.y,
	})
}

// Ops returns the recorded operations in painting order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Replay paints the recorded operations onto c.
func (r *Recorder) Replay(c Context) {
	for _, op := range r.ops {
		c.SetSourceRGBA(op.Color.R, op.Color.G, op.Color.B, op.Color.A)
		c.SetLineWidth(op.LineWidth)
		c.SetFontSize(op.FontSize)
		switch op.Kind {
		case TextOp:
			c.MoveTo(op.X, op.Y)
			c.ShowText(op.Text)
			c.Stroke()
		case FillOp:
			replayPath(c, op.Path)
			c.Fill()
		case StrokeOp:
			replayPath(c, op.Path)
			c.Stroke()
		}
	}
}

func replayPath(c Context, path []Segment) {
	for _, seg := range path {
		switch seg.Kind {
		case MoveSegment:
			c.MoveTo(seg.X, seg.Y)
		case LineSegment:
			c.LineTo(seg.X, seg.Y)
		case ArcSegment:
			c.Arc(seg.X, seg.Y, seg.Radius, seg.Angle1, seg.Angle2)
		case CloseSegment:
			c.ClosePath()
		}
	}
}

// Reset drops all recorded operations and the current path.
func (r *Recorder) Reset() {
	r.ops = nil
	r.takePath()
}

// Close releases cached font faces.
func (r *Recorder) Close() error {
	return r.close()
}
