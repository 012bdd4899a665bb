package braille

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	chars := Supported()
	require.Len(t, chars, 26+1+13+13)

	for _, c := range chars {
		p, err := ConvertChar(c)
		require.NoError(t, err, "char %q", c)

		for i, v := range p {
			assert.Contains(t, []uint8{0, 1}, v, "char %q pin %d", c, i)
		}
		assert.Zero(t, p[3], "char %q reserved pin 3", c)
		assert.Zero(t, p[7], "char %q reserved pin 7", c)
	}
}

func TestConvertCharScenarios(t *testing.T) {
	tests := []struct {
		char rune
		want Pattern
	}{
		{'a', Pattern{1, 0, 0, 0, 0, 0, 0, 0}},
		{' ', Pattern{0, 0, 0, 0, 0, 0, 0, 0}},
		{'z', Pattern{1, 0, 1, 0, 0, 1, 1, 0}},
		{'…', Pattern{0, 1, 0, 0, 1, 0, 0, 0}},
		{'ç', Pattern{1, 1, 1, 0, 1, 0, 1, 0}},
		{')', Pattern{0, 1, 1, 0, 1, 1, 1, 0}},
		{'é', Pattern{1, 0, 0, 0, 0, 1, 0, 0}},
	}

	for _, tt := range tests {
		got, err := ConvertChar(tt.char)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "char %q", tt.char)
	}
}

func TestConvertCharFoldsCase(t *testing.T) {
	for c := 'a'; c <= 'z'; c++ {
		lower, err := ConvertChar(c)
		require.NoError(t, err)

		upper, err := ConvertChar(c - 'a' + 'A')
		require.NoError(t, err)

		assert.Equal(t, lower, upper, "char %q", c)
	}

	accented, err := ConvertChar('É')
	require.NoError(t, err)
	assert.Equal(t, Pattern{1, 0, 0, 0, 0, 1, 0, 0}, accented)
}

func TestConvertCharUnsupported(t *testing.T) {
	for _, c := range []rune{'1', '@', '\n', 'ñ', '\u0301', '\u0130', '\u212a', utf8.RuneError} {
		p, err := ConvertChar(c)
		require.Error(t, err, "char %q", c)
		assert.True(t, errors.Is(err, ErrUnsupported))
		assert.Equal(t, Pattern{}, p)

		var uerr *UnsupportedError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, c, uerr.Char)
	}
}

func TestReturnedPatternIsACopy(t *testing.T) {
	p, err := ConvertChar('a')
	require.NoError(t, err)
	p[5] = 1

	again, err := ConvertChar('a')
	require.NoError(t, err)
	assert.Equal(t, Pattern{1, 0, 0, 0, 0, 0, 0, 0}, again)

	res := ConvertText("a")
	res.Cells[0].Pattern[1] = 1
	assert.Equal(t, Pattern{1, 0, 0, 0, 0, 0, 0, 0}, ConvertText("a").Cells[0].Pattern)
}

func TestConvertTextBonjour(t *testing.T) {
	res := ConvertText("Bonjour")

	assert.Empty(t, res.Unsupported)
	assert.NoError(t, res.Err())
	assert.Equal(t, []Pattern{
		{1, 1, 0, 0, 0, 0, 0, 0},
		{1, 0, 1, 0, 0, 1, 0, 0},
		{1, 0, 1, 0, 1, 1, 0, 0},
		{0, 1, 0, 0, 1, 1, 0, 0},
		{1, 0, 1, 0, 0, 1, 0, 0},
		{1, 0, 1, 0, 0, 0, 1, 0},
		{1, 1, 1, 0, 0, 1, 0, 0},
	}, res.Patterns())
	assert.Equal(t, 'B', res.Cells[0].Char)
}

func TestConvertTextReportsUnsupported(t *testing.T) {
	res := ConvertText("Bonjour123")

	assert.Len(t, res.Patterns(), 7)
	assert.Equal(t, []Unsupported{
		{Pos: 7, Char: '1'},
		{Pos: 8, Char: '2'},
		{Pos: 9, Char: '3'},
	}, res.Unsupported)

	err := res.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Contains(t, err.Error(), "'2' at 8")
}

func TestConvertTextEmpty(t *testing.T) {
	res := ConvertText("")

	assert.Empty(t, res.Patterns())
	assert.Empty(t, res.Unsupported)
	assert.Zero(t, res.Len())
	assert.NoError(t, res.Err())
}

func TestConvertTextLengths(t *testing.T) {
	inputs := []string{
		"",
		"Bonjour",
		"Ça va ? Très bien !",
		"l'été… (2024)",
		"  espaces   répétés  ",
		"e\u0301", // decomposed é
		"\xff\xfeabc",
	}

	for _, s := range inputs {
		res := ConvertText(s)
		assert.Equal(t, utf8.RuneCountInString(s), len(res.Cells)+len(res.Unsupported), "input %q", s)
		assert.Equal(t, res, ConvertText(s), "input %q", s)

		last := -1
		for _, cell := range res.Cells {
			assert.Greater(t, cell.Pos, last)
			last = cell.Pos
		}
	}
}

func TestConvertTextNoNormalization(t *testing.T) {
	res := ConvertText("e\u0301")

	require.Len(t, res.Cells, 1)
	assert.Equal(t, 'e', res.Cells[0].Char)
	assert.Equal(t, []Unsupported{{Pos: 1, Char: '\u0301'}}, res.Unsupported)
}

func TestConvertTextKeepsWhitespaceAndRepeats(t *testing.T) {
	res := ConvertText("aa  a")

	require.Len(t, res.Cells, 5)
	for i, cell := range res.Cells {
		assert.Equal(t, i, cell.Pos)
	}
	assert.True(t, res.Cells[2].Pattern.IsBlank())
	assert.Equal(t, res.Cells[0].Pattern, res.Cells[1].Pattern)
}
