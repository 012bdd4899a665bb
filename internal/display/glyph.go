package display

import (
	"fmt"
	"strings"

	"github.com/fudanchii/brl/internal/braille"
)

// Glyphs renders cells as Unicode Braille.
func Glyphs(cells []braille.Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteRune(c.Pattern.Rune())
	}
	return sb.String()
}

// GlyphLine renders a whole result, with '?' where a character had no cell.
func GlyphLine(res braille.Result) string {
	runes := make([]rune, res.Len())
	for _, c := range res.Cells {
		runes[c.Pos] = c.Pattern.Rune()
	}
	for _, u := range res.Unsupported {
		runes[u.Pos] = '?'
	}
	return string(runes)
}

// Label shows a character the way the tables print it, quoting blanks.
func Label(c rune) string {
	if c == ' ' || c == '\t' {
		return fmt.Sprintf("%q", c)
	}
	return string(c)
}

// Alphabet lists every supported character with its pins and glyph.
func Alphabet() []string {
	lines := []string{}
	for _, c := range braille.Supported() {
		p, _ := braille.Lookup(c)
		lines = append(lines, fmt.Sprintf("%4s  %s  %c  dots %v", Label(c), p, p.Rune(), p.Dots()))
	}
	return lines
}
