package braille

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	ErrUnsupported = errors.New("braille: error, unsupported character")
)

type UnsupportedError struct {
	Pos  int
	Char rune
}

func (e *UnsupportedError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("braille: error, unsupported character %q", e.Char)
	}
	return fmt.Sprintf("braille: error, unsupported character %q at %d", e.Char, e.Pos)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// fold lowercases c only when the lowercase form maps back to c, so
// letters such as U+0130 keep their own identity.
func fold(c rune) rune {
	if !unicode.IsUpper(c) {
		return c
	}
	if lower := unicode.ToLower(c); unicode.ToUpper(lower) == c {
		return lower
	}
	return c
}

// Lookup folds c to lowercase and returns its table entry.
func Lookup(c rune) (Pattern, bool) {
	p, ok := table[fold(c)]
	return p, ok
}

// ConvertChar returns the pattern for c, or an *UnsupportedError carrying c.
func ConvertChar(c rune) (Pattern, error) {
	p, ok := Lookup(c)
	if !ok {
		return Pattern{}, &UnsupportedError{Pos: -1, Char: c}
	}
	return p, nil
}

// Cell is one converted character of a text.
type Cell struct {
	Pos     int
	Char    rune
	Pattern Pattern
}

type Unsupported struct {
	Pos  int
	Char rune
}

// Result keeps converted cells and skipped characters apart. Positions are
// 0-based rune indexes into the converted text.
type Result struct {
	Cells       []Cell
	Unsupported []Unsupported
}

// ConvertText converts s rune by rune. Unsupported characters are left out of
// Cells and listed in Unsupported, conversion never stops early.
func ConvertText(s string) Result {
	res := Result{
		Cells: make([]Cell, 0, utf8.RuneCountInString(s)),
	}

	pos := 0
	for _, c := range s {
		if p, ok := Lookup(c); ok {
			res.Cells = append(res.Cells, Cell{Pos: pos, Char: c, Pattern: p})
		} else {
			res.Unsupported = append(res.Unsupported, Unsupported{Pos: pos, Char: c})
		}
		pos++
	}

	return res
}

func (r Result) Patterns() []Pattern {
	patterns := make([]Pattern, len(r.Cells))
	for i, cell := range r.Cells {
		patterns[i] = cell.Pattern
	}
	return patterns
}

// Len is the number of runes the result was built from.
func (r Result) Len() int {
	return len(r.Cells) + len(r.Unsupported)
}

// Err joins an *UnsupportedError per skipped character, nil if there are none.
func (r Result) Err() error {
	if len(r.Unsupported) == 0 {
		return nil
	}

	errs := make([]error, len(r.Unsupported))
	for i, u := range r.Unsupported {
		errs[i] = &UnsupportedError{Pos: u.Pos, Char: u.Char}
	}
	return errors.Join(errs...)
}
