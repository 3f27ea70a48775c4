package diagram

import (
	"math"
	"slices"
	"strconv"

	"github.com/algographics/algographics/pkg/surface"
)

// Cell geometry and pen settings of a character row.
const (
	CellSize = 50

	cellLineWidth      = 2
	highlightLineWidth = 6
	charFontSize       = 40
	charBaseline       = 40 // baseline offset from the cell top, not true centring
	numberFontSize     = 20
	numberBoxHeight    = 35
	arrowDrop          = 60
	bracketLift        = 10
	bracketLayerStep   = 20
)

// Arrow points at a position from below the row.
type Arrow struct {
	Position int
	Caption  string
}

// Bracket spans the positions Start to End inclusive above the row.
// Each Layer lifts the bracket by 20 units so overlapping spans stay apart.
type Bracket struct {
	Start, End int
	Layer      int
	Caption    string
}

type numberingKind uint8

const (
	numberingNone numberingKind = iota
	numberingEveryFifth
	numberingExplicit
)

// Numbering selects which positions get a number label under their cell.
// The zero value shows no numbers.
type Numbering struct {
	kind      numberingKind
	positions []int
}

var (
	// EveryFifth labels positions that are multiples of five.
	EveryFifth = Numbering{kind: numberingEveryFifth}
	// NoNumbers disables labels.
	NoNumbers = Numbering{kind: numberingNone}
)

// NumbersAt labels exactly the given positions.
func NumbersAt(positions ...int) Numbering {
	return Numbering{kind: numberingExplicit, positions: slices.Clone(positions)}
}

// Shows reports whether pos gets a label.
func (n Numbering) Shows(pos int) bool {
	switch n.kind {
	case numberingEveryFifth:
		return pos%5 == 0
	case numberingExplicit:
		return slices.Contains(n.positions, pos)
	}
	return false
}

func (n Numbering) String() string {
	switch n.kind {
	case numberingEveryFifth:
		return "every5"
	case numberingExplicit:
		return "explicit"
	}
	return "none"
}

// CharListOption configures DrawCharList.
type CharListOption func(*charList)

type charList struct {
	highlight map[int]bool
	numbers   Numbering
	offset    int
	dotsLeft  bool
	dotsRight bool
	arrows    []Arrow
	brackets  []Bracket
	frame     bool
}

// WithHighlight draws the borders of the given positions with a thick pen.
// Repeated options accumulate.
func WithHighlight(positions ...int) CharListOption {
	return func(l *charList) {
		for _, p := range positions {
			l.highlight[p] = true
		}
	}
}

// WithNumbers selects the number labels (default EveryFifth).
func WithNumbers(n Numbering) CharListOption {
	return func(l *charList) { l.numbers = n }
}

// WithNumbersOffset sets the position of the first cell (default 0).
func WithNumbersOffset(offset int) CharListOption {
	return func(l *charList) { l.offset = offset }
}

// WithDotsLeft marks omitted text before the row.
func WithDotsLeft() CharListOption { return func(l *charList) { l.dotsLeft = true } }

// WithDotsRight marks omitted text after the row.
func WithDotsRight() CharListOption { return func(l *charList) { l.dotsRight = true } }

// WithArrows adds arrows below the row.
func WithArrows(arrows ...Arrow) CharListOption {
	return func(l *charList) { l.arrows = append(l.arrows, arrows...) }
}

// WithBrackets adds brackets above the row.
func WithBrackets(brackets ...Bracket) CharListOption {
	return func(l *charList) { l.brackets = append(l.brackets, brackets...) }
}

// WithoutFrame omits the cell borders.
func WithoutFrame() CharListOption { return func(l *charList) { l.frame = false } }

func newCharList(opts ...CharListOption) *charList {
	l := &charList{
		highlight: make(map[int]bool),
		numbers:   EveryFifth,
		frame:     true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DrawCharList draws chars as a row of cells with its top left corner at
// (x, y). Decorations are painted first so the cells end up on top:
// ellipsis connectors, arrows, brackets, then cells with characters and
// numbers.
func DrawCharList(c surface.Context, x, y float64, chars string, opts ...CharListOption) {
	l := newCharList(opts...)
	runes := []rune(chars)
	right := x + CellSize*float64(len(runes))

	if l.dotsLeft {
		drawEllipsis(c, x, y, -1)
	}
	if l.dotsRight {
		drawEllipsis(c, right, y, 1)
	}

	for _, a := range l.arrows {
		DrawArrow(c, x+CellSize*float64(a.Position-l.offset)+CellSize/2, y+arrowDrop, a.Caption)
	}

	for _, b := range l.brackets {
		DrawBracket(c,
			x+CellSize*float64(b.Start-l.offset),
			x+CellSize*float64(b.End-l.offset+1),
			y-bracketLift-bracketLayerStep*float64(b.Layer),
			b.Caption)
	}

	for i, r := range runes {
		pos := i + l.offset
		cellX := x + CellSize*float64(i)

		if l.highlight[pos] {
			c.SetLineWidth(highlightLineWidth)
		} else {
			c.SetLineWidth(cellLineWidth)
		}

		if l.frame {
			c.Rectangle(cellX, y, CellSize, CellSize)
			c.Stroke()
		}

		DrawTextFixedY(c, Box{X: cellX, Y: y, W: CellSize, H: CellSize}, charFontSize, string(r), charBaseline)

		if l.numbers.Shows(pos) {
			DrawCenteredText(c, Box{X: cellX, Y: y + CellSize, W: CellSize, H: numberBoxHeight}, numberFontSize, strconv.Itoa(pos))
		}
	}
}

// drawEllipsis draws an open bracket at edge with three dots beyond it.
// dir is -1 for the left side of the row and 1 for the right side.
func drawEllipsis(c surface.Context, edge, y, dir float64) {
	c.SetLineWidth(cellLineWidth)
	c.MoveTo(edge+dir*25, y)
	c.LineTo(edge, y)
	c.LineTo(edge, y+CellSize)
	c.LineTo(edge+dir*25, y+CellSize)
	c.Stroke()
	for _, d := range []float64{20, 30, 40} {
		c.Arc(edge+dir*d, y+CellSize/2, 3, 0, 2*math.Pi)
		c.Fill()
	}
}
