package braille

import "sort"

// Dots 1-3 sit at pins 0-2, dots 4-6 at pins 4-6, pins 3 and 7 stay down.
var table = map[rune]Pattern{
	// a-j
	'a': {1, 0, 0, 0, 0, 0, 0, 0},
	'b': {1, 1, 0, 0, 0, 0, 0, 0},
	'c': {1, 0, 0, 0, 1, 0, 0, 0},
	'd': {1, 0, 0, 0, 1, 1, 0, 0},
	'e': {1, 0, 0, 0, 0, 1, 0, 0},
	'f': {1, 1, 0, 0, 1, 0, 0, 0},
	'g': {1, 1, 0, 0, 1, 1, 0, 0},
	'h': {1, 1, 0, 0, 0, 1, 0, 0},
	'i': {0, 1, 0, 0, 1, 0, 0, 0},
	'j': {0, 1, 0, 0, 1, 1, 0, 0},

	// k-t, a-j plus dot 3
	'k': {1, 0, 1, 0, 0, 0, 0, 0},
	'l': {1, 1, 1, 0, 0, 0, 0, 0},
	'm': {1, 0, 1, 0, 1, 0, 0, 0},
	'n': {1, 0, 1, 0, 1, 1, 0, 0},
	'o': {1, 0, 1, 0, 0, 1, 0, 0},
	'p': {1, 1, 1, 0, 1, 0, 0, 0},
	'q': {1, 1, 1, 0, 1, 1, 0, 0},
	'r': {1, 1, 1, 0, 0, 1, 0, 0},
	's': {0, 1, 1, 0, 1, 0, 0, 0},
	't': {0, 1, 1, 0, 1, 1, 0, 0},

	// u-z, plus dot 6
	'u': {1, 0, 1, 0, 0, 0, 1, 0},
	'v': {1, 1, 1, 0, 0, 0, 1, 0},
	'w': {0, 1, 0, 0, 1, 1, 1, 0},
	'x': {1, 0, 1, 0, 1, 0, 1, 0},
	'y': {1, 0, 1, 0, 1, 1, 1, 0},
	'z': {1, 0, 1, 0, 0, 1, 1, 0},

	' ': {0, 0, 0, 0, 0, 0, 0, 0},

	'.':  {0, 1, 0, 0, 1, 1, 0, 0},
	',':  {0, 1, 0, 0, 0, 1, 0, 0},
	'?':  {0, 1, 1, 0, 0, 1, 0, 0},
	'!':  {0, 1, 1, 0, 1, 0, 0, 0},
	'\'': {0, 0, 1, 0, 0, 0, 0, 0},
	':':  {0, 1, 0, 0, 1, 0, 0, 0},
	';':  {0, 1, 1, 0, 1, 0, 0, 0},
	'-':  {0, 0, 1, 0, 0, 1, 0, 0},
	'(':  {1, 1, 1, 0, 1, 1, 0, 0},
	')':  {0, 1, 1, 0, 1, 1, 1, 0},
	'"':  {0, 1, 1, 0, 0, 1, 0, 0},
	'/':  {0, 0, 1, 0, 1, 0, 1, 0},
	'…':  {0, 1, 0, 0, 1, 0, 0, 0}, // ellipsis shares the colon cell

	'à': {1, 0, 0, 0, 0, 0, 0, 0},
	'â': {1, 0, 0, 0, 0, 0, 0, 0},
	'é': {1, 0, 0, 0, 0, 1, 0, 0},
	'è': {1, 0, 0, 0, 0, 1, 0, 0},
	'ê': {1, 0, 0, 0, 0, 1, 0, 0},
	'ë': {1, 0, 0, 0, 0, 1, 0, 0},
	'î': {0, 1, 0, 0, 1, 0, 0, 0},
	'ï': {0, 1, 0, 0, 1, 0, 0, 0},
	'ô': {1, 0, 1, 0, 0, 1, 0, 0},
	'ù': {1, 0, 1, 0, 0, 0, 1, 0},
	'û': {1, 0, 1, 0, 0, 0, 1, 0},
	'ü': {1, 0, 1, 0, 0, 0, 1, 0},
	'ç': {1, 1, 1, 0, 1, 0, 1, 0},
}

// Supported returns every character with a table entry, sorted by code point.
func Supported() []rune {
	chars := make([]rune, 0, len(table))
	for c := range table {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}
