package scene

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/algographics/algographics/pkg/errors"
	"github.com/algographics/algographics/pkg/export"
	"github.com/algographics/algographics/pkg/surface"
)

// Numbering modes of a row.
const (
	NumbersEveryFifth = "every5"
	NumbersNone       = "none"
	NumbersExplicit   = "explicit"
)

const defaultLabelFontSize = 20

// Scene is a complete diagram.
type Scene struct {
	Width       int  `toml:"width"`
	Height      int  `toml:"height"`
	Transparent bool `toml:"transparent"`
	EmbedFont   bool `toml:"embed_font"`

	Rows     []Row     `toml:"rows"`
	Overlays []Overlay `toml:"overlays"`
	Arrows   []Arrow   `toml:"arrows"`
	Brackets []Bracket `toml:"brackets"`
	Labels   []Label   `toml:"labels"`
}

// Row is a character array drawn with diagram.DrawCharList.
type Row struct {
	X               float64      `toml:"x"`
	Y               float64      `toml:"y"`
	Chars           string       `toml:"chars"`
	Highlight       []int        `toml:"highlight"`
	Numbers         string       `toml:"numbers"`
	NumberPositions []int        `toml:"number_positions"`
	NumbersOffset   int          `toml:"numbers_offset"`
	DotsLeft        bool         `toml:"dots_left"`
	DotsRight       bool         `toml:"dots_right"`
	Frame           *bool        `toml:"frame"`
	Arrows          []RowArrow   `toml:"arrows"`
	Brackets        []RowBracket `toml:"brackets"`
}

// RowArrow points at a position of its row.
type RowArrow struct {
	Position int    `toml:"position"`
	Caption  string `toml:"caption"`
}

// RowBracket spans positions of its row.
type RowBracket struct {
	Start   int    `toml:"start"`
	End     int    `toml:"end"`
	Layer   int    `toml:"layer"`
	Caption string `toml:"caption"`
}

// Overlay fills cells of a row with a translucent colour. The colour is
// either a hex string with an optional alpha (default 1) or an rgba array
// with three or four components in [0, 1].
type Overlay struct {
	X         float64   `toml:"x"`
	Y         float64   `toml:"y"`
	Color     string    `toml:"color"`
	Alpha     *float64  `toml:"alpha"`
	RGBA      []float64 `toml:"rgba"`
	Positions []int     `toml:"positions"`

	resolved surface.RGBA
}

// Arrow is a free-standing arrow with its tip at (X, Y).
type Arrow struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Caption string  `toml:"caption"`
}

// Bracket is a free-standing bracket from X1 to X2 resting on Y.
type Bracket struct {
	X1      float64 `toml:"x1"`
	X2      float64 `toml:"x2"`
	Y       float64 `toml:"y"`
	Caption string  `toml:"caption"`
}

// Label is text centred in a box.
type Label struct {
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	FontSize float64 `toml:"font_size"`
	Text     string  `toml:"text"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	if err := errors.ValidateSceneFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open scene %s", path)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, within(err, "%s", path)
	}
	return s, nil
}

// Decode reads a scene from r, applies defaults and validates it.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		var perr toml.ParseError
		if stderrors.As(err, &perr) {
			return nil, errors.New(errors.ErrCodeInvalidScene, "%s", perr.ErrorWithPosition())
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) normalize() error {
	if s.Width == 0 {
		s.Width = export.DefaultWidth
	}
	if s.Height == 0 {
		s.Height = export.DefaultHeight
	}
	if err := errors.ValidateCanvasSize(s.Width, s.Height); err != nil {
		return err
	}

	for i := range s.Rows {
		if err := s.Rows[i].normalize(); err != nil {
			return within(err, "rows[%d]", i)
		}
	}
	for i := range s.Overlays {
		if err := s.Overlays[i].normalize(); err != nil {
			return within(err, "overlays[%d]", i)
		}
	}
	for i := range s.Labels {
		if s.Labels[i].FontSize == 0 {
			s.Labels[i].FontSize = defaultLabelFontSize
		}
		if s.Labels[i].FontSize < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "labels[%d]: font_size must be positive", i)
		}
	}
	return nil
}

// within prefixes the message of a coded error with its location.
func within(err error, format string, args ...any) error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return fmt.Errorf(format+": %w", append(args, err)...)
	}
	return &errors.Error{
		Code:    e.Code,
		Message: fmt.Sprintf(format, args...) + ": " + e.Message,
		Cause:   e.Cause,
	}
}

func (r *Row) normalize() error {
	if r.Numbers == "" {
		r.Numbers = NumbersEveryFifth
	}
	switch r.Numbers {
	case NumbersEveryFifth, NumbersNone:
		if len(r.NumberPositions) > 0 {
			return errors.New(errors.ErrCodeInvalidScene, "number_positions requires numbers = %q", NumbersExplicit)
		}
	case NumbersExplicit:
	default:
		return errors.New(errors.ErrCodeInvalidScene, "unknown numbering %q (want %s, %s or %s)",
			r.Numbers, NumbersEveryFifth, NumbersNone, NumbersExplicit)
	}
	if r.Frame == nil {
		frame := true
		r.Frame = &frame
	}
	return nil
}

func (o *Overlay) normalize() error {
	switch {
	case o.Color != "" && o.RGBA != nil:
		return errors.New(errors.ErrCodeInvalidColor, "color and rgba are mutually exclusive")
	case o.Color != "":
		c, err := colorful.Hex(o.Color)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "color %q", o.Color)
		}
		alpha := 1.0
		if o.Alpha != nil {
			alpha = *o.Alpha
		}
		if alpha < 0 || alpha > 1 {
			return errors.New(errors.ErrCodeInvalidColor, "alpha %v outside [0, 1]", alpha)
		}
		o.resolved = surface.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
	case o.RGBA != nil:
		if o.Alpha != nil {
			return errors.New(errors.ErrCodeInvalidColor, "alpha is only allowed with color")
		}
		if n := len(o.RGBA); n != 3 && n != 4 {
			return errors.New(errors.ErrCodeInvalidColor, "rgba needs 3 or 4 components, got %d", n)
		}
		for _, v := range o.RGBA {
			if v < 0 || v > 1 {
				return errors.New(errors.ErrCodeInvalidColor, "rgba component %v outside [0, 1]", v)
			}
		}
		o.resolved = surface.RGBA{R: o.RGBA[0], G: o.RGBA[1], B: o.RGBA[2], A: 1}
		if len(o.RGBA) == 4 {
			o.resolved.A = o.RGBA[3]
		}
	default:
		return errors.New(errors.ErrCodeInvalidColor, "overlay needs color or rgba")
	}
	return nil
}

// Resolved returns the overlay colour after decoding.
func (o Overlay) Resolved() surface.RGBA {
	return o.resolved
}

// Options returns the export options the scene asks for.
func (s *Scene) Options() []export.Option {
	opts := []export.Option{export.WithSize(s.Width, s.Height)}
	if s.Transparent {
		opts = append(opts, export.WithTransparentBackground())
	}
	if s.EmbedFont {
		opts = append(opts, export.WithEmbeddedFont())
	}
	return opts
}
