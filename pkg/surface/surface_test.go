package surface

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func kinds(path []Segment) []SegmentKind {
	out := make([]SegmentKind, len(path))
	for i, s := range path {
		out[i] = s.Kind
	}
	return out
}

func equalKinds(a, b []SegmentKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArcJoinsCurrentPoint(t *testing.T) {
	r := NewRecorder()
	defer r.Close()

	r.MoveTo(0, 0)
	r.Arc(10, 0, 5, math.Pi, 1.5*math.Pi)
	r.Stroke()

	ops := r.Ops()
	if len(ops) != 1 {
		t.Fatalf("ops = %d, want 1", len(ops))
	}
	path := ops[0].Path
	want := []SegmentKind{MoveSegment, LineSegment, ArcSegment}
	if !equalKinds(kinds(path), want) {
		t.Fatalf("path kinds = %v, want %v", kinds(path), want)
	}
	if !near(path[1].X, 5) || !near(path[1].Y, 0) {
		t.Errorf("line to arc start = (%v, %v), want (5, 0)", path[1].X, path[1].Y)
	}
}

func TestArcWithoutCurrentPointMoves(t *testing.T) {
	r := NewRecorder()
	defer r.Close()

	r.Arc(20, 20, 3, 0, 2*math.Pi)
	r.Fill()

	path := r.Ops()[0].Path
	want := []SegmentKind{MoveSegment, ArcSegment}
	if !equalKinds(kinds(path), want) {
		t.Fatalf("path kinds = %v, want %v", kinds(path), want)
	}
	if !near(path[0].X, 23) || !near(path[0].Y, 20) {
		t.Errorf("move = (%v, %v), want (23, 20)", path[0].X, path[0].Y)
	}
}

func TestArcNormalisesAngles(t *testing.T) {
	r := NewRecorder()
	defer r.Close()

	r.Arc(0, 0, 10, 1.5*math.Pi, 0)
	r.Stroke()

	arc := r.Ops()[0].Path[1]
	if !near(arc.Angle2, 2*math.Pi) {
		t.Errorf("Angle2 = %v, want 2π", arc.Angle2)
	}
	x, y := arc.ArcEnd()
	if !near(x, 10) || !near(y, 0) {
		t.Errorf("ArcEnd = (%v, %v), want (10, 0)", x, y)
	}
}

func TestFillClearsCurrentPoint(t *testing.T) {
	r := NewRecorder()
	defer r.Close()

	r.Rectangle(0, 0, 10, 10)
	r.Fill()
	r.LineTo(5, 5)
	r.Stroke()

	if len(r.Ops()) != 1 {
		t.Fatalf("ops = %d, want 1 (lone LineTo must act as MoveTo)", len(r.Ops()))
	}
	want := []SegmentKind{MoveSegment, LineSegment, LineSegment, LineSegment, CloseSegment}
	if got := kinds(r.Ops()[0].Path); !equalKinds(got, want) {
		t.Errorf("rectangle kinds = %v, want %v", got, want)
	}
}

func TestShowTextAdvancesCurrentPoint(t *testing.T) {
	r := NewRecorder()
	defer r.Close()

	r.SetFontSize(20)
	r.MoveTo(10, 30)
	r.ShowText("AB")
	adv := r.TextExtents("AB").XAdvance
	r.LineTo(100, 30)
	r.Stroke()

	ops := r.Ops()
	if len(ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(ops))
	}
	if ops[0].Kind != TextOp || ops[0].X != 10 || ops[0].Y != 30 || ops[0].FontSize != 20 {
		t.Errorf("text op = %+v", ops[0])
	}
	path := ops[1].Path
	from := path[len(path)-2]
	if from.Kind != MoveSegment || !near(from.X, 10+adv) {
		t.Errorf("line starts at %+v, want move to x=%v", from, 10+adv)
	}
}

func TestEmptyPaintIsNotRecorded(t *testing.T) {
	r := NewRecorder()
	defer r.Close()

	r.Stroke()
	r.MoveTo(1, 1)
	r.Fill()
	if len(r.Ops()) != 0 {
		t.Errorf("ops = %d, want 0", len(r.Ops()))
	}
}

func TestReplay(t *testing.T) {
	src := NewRecorder()
	defer src.Close()

	src.SetLineWidth(6)
	src.SetSourceRGBA(0, 0, 1, 0.5)
	src.Rectangle(0, 0, 50, 50)
	src.Stroke()
	src.SetFontSize(40)
	src.MoveTo(12, 40)
	src.ShowText("A")
	src.Stroke()
	src.Arc(5, 5, 3, 0, 2*math.Pi)
	src.Fill()

	dst := NewRecorder()
	defer dst.Close()
	src.Replay(dst)

	got, want := dst.Ops(), src.Ops()
	if len(got) != len(want) {
		t.Fatalf("replayed ops = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Color != want[i].Color ||
			got[i].LineWidth != want[i].LineWidth || got[i].Text != want[i].Text {
			t.Errorf("op %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVectorDocument(t *testing.T) {
	var buf bytes.Buffer
	v := NewVector(&buf, 100, 50)

	v.SetSourceRGBA(1, 0, 0, 1)
	v.Rectangle(0, 0, 10, 10)
	v.Fill()
	v.SetLineWidth(6)
	v.MoveTo(0, 20)
	v.LineTo(30, 20)
	v.Stroke()
	v.MoveTo(5, 40)
	v.ShowText("a<b")

	if err := v.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`width="100"`,
		`height="50"`,
		`M0 0 L10 0 L10 10 L0 10 Z`,
		`fill:rgb(255,0,0)`,
		`stroke-width:6`,
		`translate(5,40)`,
		`a&lt;b`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(out, "@font-face") {
		t.Error("font embedded without WithEmbeddedFont")
	}
}

func TestVectorEmbeddedFont(t *testing.T) {
	var buf bytes.Buffer
	v := NewVector(&buf, 10, 10, WithEmbeddedFont())
	if err := v.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if !strings.Contains(buf.String(), "@font-face") {
		t.Error("SVG missing @font-face rule")
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestVectorWriteErrorPropagates(t *testing.T) {
	v := NewVector(failingWriter{}, 10, 10)
	v.Rectangle(0, 0, 1, 1)
	v.Fill()
	if err := v.Finish(); !errors.Is(err, errDiskFull) {
		t.Errorf("Finish() error = %v, want %v", err, errDiskFull)
	}
}

func TestPathDataFullCircle(t *testing.T) {
	r := NewRecorder()
	defer r.Close()
	r.Arc(0, 0, 3, 0, 2*math.Pi)
	r.Fill()

	d := pathData(r.Ops()[0].Path)
	if got := strings.Count(d, "A"); got != 2 {
		t.Errorf("arc commands = %d in %q, want 2", got, d)
	}
	if !strings.HasPrefix(d, "M3 0 A3 3 0 0 1 -3 0") {
		t.Errorf("pathData = %q", d)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{12.5, "12.5"},
		{1.0 / 3, "0.333"},
		{-7, "-7"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(20, 10)
	defer r.Close()

	if r.Width() != 20 || r.Height() != 10 {
		t.Fatalf("size = %dx%d, want 20x10", r.Width(), r.Height())
	}
	if _, _, _, a := r.Image().At(5, 5).RGBA(); a != 0 {
		t.Errorf("fresh canvas alpha = %d, want 0", a)
	}

	r.SetSourceRGBA(1, 1, 1, 1)
	r.Rectangle(0, 0, 20, 10)
	r.Fill()
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if cr, cg, cb, ca := r.Image().At(5, 5).RGBA(); cr != 0xffff || cg != 0xffff || cb != 0xffff || ca != 0xffff {
		t.Errorf("pixel = (%d,%d,%d,%d), want opaque white", cr, cg, cb, ca)
	}
}
