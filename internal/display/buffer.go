package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fudanchii/brl/internal/braille"
)

var (
	ErrInvalidWidth         = errors.New("display: error, width must be at least 1 cell")
	ErrInvalidOverflowStyle = errors.New("config: error parsing overflow style, use one of wrap, trim, marquee")
)

const DEFAULT_WIDTH = 20

// OverflowStyle decides which window of a line longer than the display is
// rendered next.
type OverflowStyle interface {
	// next returns the start of the window to render and the start of the
	// window after it, -1 when the line is exhausted.
	next(pos, width, length int) (start, following int)
}

// OfWrapSpan shows consecutive windows, one per render.
type OfWrapSpan struct{}

func (OfWrapSpan) next(pos, width, length int) (int, int) {
	following := pos + width
	if following >= length {
		following = -1
	}
	return pos, following
}

// OfTrimLine shows the first window only.
type OfTrimLine struct{}

func (OfTrimLine) next(pos, width, length int) (int, int) {
	return 0, -1
}

// OfMarquee slides one cell per render.
type OfMarquee struct{}

func (OfMarquee) next(pos, width, length int) (int, int) {
	following := pos + 1
	if following+width > length {
		following = -1
	}
	return pos, following
}

func ParseOverflowStyle(flag string) (OverflowStyle, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "wrap":
		return OfWrapSpan{}, nil
	case "trim", "t":
		return OfTrimLine{}, nil
	case "marquee", "m":
		return OfMarquee{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidOverflowStyle, flag)
}

// Buffer holds one converted line for a display of a fixed number of cells.
type Buffer struct {
	width int
	style OverflowStyle
	cells []braille.Cell
	pos   int
}

func NewBuffer(width int, style OverflowStyle) (*Buffer, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	if style == nil {
		style = OfWrapSpan{}
	}
	return &Buffer{width: width, style: style, pos: -1}, nil
}

// SetLine replaces the buffered line and rewinds to its first window.
func (db *Buffer) SetLine(res braille.Result) {
	db.cells = res.Cells
	db.pos = 0
}

// NextRender returns the next window padded with blank cells to the display
// width, and false once the line has been fully shown.
func (db *Buffer) NextRender() ([]braille.Cell, bool) {
	if db.pos < 0 {
		return nil, false
	}

	start, following := db.style.next(db.pos, db.width, len(db.cells))
	end := min(start+db.width, len(db.cells))

	window := make([]braille.Cell, db.width)
	copy(window, db.cells[start:end])
	for i := end - start; i < db.width; i++ {
		window[i] = braille.Cell{Pos: -1, Char: ' '}
	}

	db.pos = following

	return window, true
}

// Windows drains the buffer.
func (db *Buffer) Windows() [][]braille.Cell {
	windows := [][]braille.Cell{}
	for {
		w, ok := db.NextRender()
		if !ok {
			return windows
		}
		windows = append(windows, w)
	}
}
