package scene

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/algographics/algographics/pkg/diagram"
	"github.com/algographics/algographics/pkg/errors"
	"github.com/algographics/algographics/pkg/surface"
)

func decode(t *testing.T, src string) *Scene {
	t.Helper()
	s, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return s
}

func TestDecodeDefaults(t *testing.T) {
	s := decode(t, `
[[rows]]
chars = "AB"

[[labels]]
text = "t"
`)
	if s.Width != 1000 || s.Height != 400 {
		t.Errorf("size = %dx%d, want 1000x400", s.Width, s.Height)
	}
	row := s.Rows[0]
	if row.Numbers != NumbersEveryFifth {
		t.Errorf("numbers = %q, want %q", row.Numbers, NumbersEveryFifth)
	}
	if row.Frame == nil || !*row.Frame {
		t.Error("frame should default to true")
	}
	if s.Labels[0].FontSize != 20 {
		t.Errorf("label font size = %v, want 20", s.Labels[0].FontSize)
	}
}

func TestDecodeColours(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want surface.RGBA
	}{
		{"hex", `color = "#ff0000"`, surface.RGBA{R: 1, A: 1}},
		{"short hex with alpha", "color = \"#fff\"\nalpha = 0.5", surface.RGBA{R: 1, G: 1, B: 1, A: 0.5}},
		{"rgb", `rgba = [0, 0.5, 1]`, surface.RGBA{G: 0.5, B: 1, A: 1}},
		{"rgba", `rgba = [1, 0.8, 0, 0.4]`, surface.RGBA{R: 1, G: 0.8, A: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := decode(t, "[[overlays]]\n"+tt.src+"\n")
			if got := s.Overlays[0].Resolved(); got != tt.want {
				t.Errorf("colour = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode errors.Code
		wantMsg  string
	}{
		{"syntax", "width = ", errors.ErrCodeInvalidScene, ""},
		{"wrong type", `width = "wide"`, errors.ErrCodeInvalidScene, ""},
		{"unknown key", "[[rows]]\nchars = \"A\"\nhighlite = [1]", errors.ErrCodeInvalidScene, "rows.highlite"},
		{"unknown table", "[camera]\nzoom = 2", errors.ErrCodeInvalidScene, "camera"},
		{"negative size", "width = -5", errors.ErrCodeInvalidScene, "canvas size"},
		{"huge size", "height = 100000", errors.ErrCodeInvalidScene, "exceeds"},
		{"unknown numbering", "[[rows]]\nnumbers = \"odd\"", errors.ErrCodeInvalidScene, "rows[0]: unknown numbering"},
		{"positions without explicit", "[[rows]]\nnumber_positions = [1]", errors.ErrCodeInvalidScene, "number_positions"},
		{"bad hex", "[[overlays]]\ncolor = \"yellow\"", errors.ErrCodeInvalidColor, "overlays[0]"},
		{"alpha range", "[[overlays]]\ncolor = \"#fff\"\nalpha = 2", errors.ErrCodeInvalidColor, "alpha"},
		{"both colours", "[[overlays]]\ncolor = \"#fff\"\nrgba = [1, 1, 1]", errors.ErrCodeInvalidColor, "mutually exclusive"},
		{"short rgba", "[[overlays]]\nrgba = [1, 1]", errors.ErrCodeInvalidColor, "3 or 4"},
		{"rgba range", "[[overlays]]\nrgba = [1, 1, 255]", errors.ErrCodeInvalidColor, "outside"},
		{"rgba with alpha", "[[overlays]]\nrgba = [1, 1, 1]\nalpha = 1", errors.ErrCodeInvalidColor, "only allowed"},
		{"no colour", "[[overlays]]\npositions = [1]", errors.ErrCodeInvalidColor, "needs color"},
		{"label size", "[[labels]]\nfont_size = -1", errors.ErrCodeInvalidScene, "labels[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Decode() error = nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v (%v)", got, tt.wantCode, err)
			}
			if !strings.Contains(errors.UserMessage(err), tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", errors.UserMessage(err), tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "kmp.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Width != 800 || s.Height != 300 {
		t.Errorf("size = %dx%d, want 800x300", s.Width, s.Height)
	}
	if len(s.Rows) != 2 || s.Rows[0].Chars != "ABABDABACD" {
		t.Fatalf("rows = %+v", s.Rows)
	}
	if len(s.Rows[0].Arrows) != 1 || len(s.Rows[0].Brackets) != 1 {
		t.Errorf("row annotations = %+v, %+v", s.Rows[0].Arrows, s.Rows[0].Brackets)
	}
	if *s.Rows[1].Frame {
		t.Error("second row should have no frame")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantCode errors.Code
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.toml"), errors.ErrCodeFileNotFound},
		{"not toml", filepath.Join("testdata", "kmp.json"), errors.ErrCodeInvalidPath},
		{"empty path", "", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestDrawOrder(t *testing.T) {
	s := decode(t, `
[[overlays]]
rgba = [1, 0, 0, 0.5]
positions = [0]

[[labels]]
width = 100
height = 20
text = "label"

[[arrows]]
x = 10
y = 10
caption = "arrow"

[[brackets]]
x1 = 0
x2 = 100
y = 50
caption = "bracket"

[[rows]]
chars = "X"
numbers = "none"
`)
	r := surface.NewRecorder()
	defer r.Close()
	s.Draw(r)

	var got []string
	for _, op := range r.Ops() {
		if op.Kind == surface.TextOp {
			got = append(got, op.Text)
		}
	}
	if want := []string{"X", "bracket", "arrow", "label"}; !slices.Equal(got, want) {
		t.Errorf("text order = %v, want %v", got, want)
	}

	last := r.Ops()[len(r.Ops())-1]
	if last.Kind != surface.FillOp || last.Color != (surface.RGBA{R: 1, A: 0.5}) {
		t.Errorf("last op = %+v, want the overlay fill", last)
	}
}

func TestDrawMatchesDiagram(t *testing.T) {
	s := decode(t, `
[[rows]]
x = 10
y = 20
chars = "ABCDEFG"
highlight = [3]
numbers = "explicit"
number_positions = [2, 4]
numbers_offset = 1
dots_left = true
frame = false

  [[rows.arrows]]
  position = 3
  caption = "i"

  [[rows.brackets]]
  start = 1
  end = 2
  layer = 1
  caption = "w"
`)
	fromScene := surface.NewRecorder()
	defer fromScene.Close()
	s.Draw(fromScene)

	direct := surface.NewRecorder()
	defer direct.Close()
	diagram.DrawCharList(direct, 10, 20, "ABCDEFG",
		diagram.WithHighlight(3),
		diagram.WithNumbers(diagram.NumbersAt(2, 4)),
		diagram.WithNumbersOffset(1),
		diagram.WithDotsLeft(),
		diagram.WithoutFrame(),
		diagram.WithArrows(diagram.Arrow{Position: 3, Caption: "i"}),
		diagram.WithBrackets(diagram.Bracket{Start: 1, End: 2, Layer: 1, Caption: "w"}))

	a, b := fromScene.Ops(), direct.Ops()
	if len(a) != len(b) {
		t.Fatalf("scene drew %d ops, direct call %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text || a[i].LineWidth != b[i].LineWidth ||
			a[i].X != b[i].X || a[i].Y != b[i].Y || !slices.Equal(a[i].Path, b[i].Path) {
			t.Errorf("op %d = %+v, want %+v", i, a[i], b[i])
		}
	}
}

func TestOptions(t *testing.T) {
	s := decode(t, "transparent = true\nembed_font = true\n")
	if n := len(s.Options()); n != 3 {
		t.Errorf("Options() returned %d options, want 3", n)
	}
	s = decode(t, "")
	if n := len(s.Options()); n != 1 {
		t.Errorf("Options() returned %d options, want 1", n)
	}
}

func TestExampleScenes(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example scenes")
	}
	for _, p := range paths {
		t.Run(filepath.Base(p), func(t *testing.T) {
			s, err := Load(p)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			r := surface.NewRecorder()
			defer r.Close()
			s.Draw(r)
			if err := r.Err(); err != nil {
				t.Errorf("Draw() error = %v", err)
			}
			if len(r.Ops()) == 0 {
				t.Error("scene drew nothing")
			}
		})
	}
}
