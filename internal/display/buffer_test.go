package display

import (
	"strings"
	"testing"

	"github.com/fudanchii/brl/internal/braille"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chars(cells []braille.Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteRune(c.Char)
	}
	return sb.String()
}

func render(t *testing.T, width int, style string, text string) []string {
	s, err := ParseOverflowStyle(style)
	require.NoError(t, err)

	db, err := NewBuffer(width, s)
	require.NoError(t, err)
	db.SetLine(braille.ConvertText(text))

	out := []string{}
	for _, w := range db.Windows() {
		require.Len(t, w, width)
		out = append(out, chars(w))
	}
	return out
}

func TestOverflowStyles(t *testing.T) {
	assert.Equal(t, []string{"bonj", "our ", "toi "}, render(t, 4, "wrap", "bonjour toi"))
	assert.Equal(t, []string{"bonj"}, render(t, 4, "trim", "bonjour toi"))
	assert.Equal(t, []string{"salu", "alut"}, render(t, 4, "marquee", "salut"))
	assert.Equal(t, []string{"ab  "}, render(t, 4, "marquee", "ab"))
	assert.Equal(t, []string{"    "}, render(t, 4, "wrap", ""))
}

func TestWindowsSkipUnsupported(t *testing.T) {
	assert.Equal(t, []string{"abc"}, render(t, 3, "wrap", "a1b2c3"))
}

func TestBufferWithoutLine(t *testing.T) {
	db, err := NewBuffer(DEFAULT_WIDTH, nil)
	require.NoError(t, err)

	_, ok := db.NextRender()
	assert.False(t, ok)

	_, err = NewBuffer(0, nil)
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestParseOverflowStyle(t *testing.T) {
	_, err := ParseOverflowStyle("scroll")
	assert.ErrorIs(t, err, ErrInvalidOverflowStyle)
}

func TestGlyphLine(t *testing.T) {
	res := braille.ConvertText("ab1 c")
	assert.Equal(t, "\u2801\u2803?\u2800\u2809", GlyphLine(res))
	assert.Equal(t, "\u2801\u2803\u2800\u2809", Glyphs(res.Cells))
	assert.Empty(t, GlyphLine(braille.ConvertText("")))
}

func TestAlphabet(t *testing.T) {
	lines := Alphabet()
	require.Len(t, lines, len(braille.Supported()))
	assert.Contains(t, lines, "   a  [1, 0, 0, 0, 0, 0, 0, 0]  \u2801  dots [1]")
	assert.Contains(t, lines, " ' '  [0, 0, 0, 0, 0, 0, 0, 0]  \u2800  dots []")
}
