package firmware

// Packed cells keyed by Windows-1252 byte, bit i = pin i. This is the board's
// own copy of the braille table; TestTableMatchesCore keeps them in step.
var cells = map[byte]byte{
	' ': 0x00,

	'a': 0x01, 'b': 0x03, 'c': 0x11, 'd': 0x31, 'e': 0x21,
	'f': 0x13, 'g': 0x33, 'h': 0x23, 'i': 0x12, 'j': 0x32,
	'k': 0x05, 'l': 0x07, 'm': 0x15, 'n': 0x35, 'o': 0x25,
	'p': 0x17, 'q': 0x37, 'r': 0x27, 's': 0x16, 't': 0x36,
	'u': 0x45, 'v': 0x47, 'w': 0x72, 'x': 0x55, 'y': 0x75,
	'z': 0x65,

	'.':  0x32,
	',':  0x22,
	'?':  0x26,
	'!':  0x16,
	'\'': 0x04,
	':':  0x12,
	';':  0x16,
	'-':  0x24,
	'(':  0x37,
	')':  0x76,
	'"':  0x26,
	'/':  0x54,
	0x85: 0x12, // …

	0xe0: 0x01, // à
	0xe2: 0x01, // â
	0xe7: 0x57, // ç
	0xe8: 0x21, // è
	0xe9: 0x21, // é
	0xea: 0x21, // ê
	0xeb: 0x21, // ë
	0xee: 0x12, // î
	0xef: 0x12, // ï
	0xf4: 0x25, // ô
	0xf9: 0x45, // ù
	0xfb: 0x45, // û
	0xfc: 0x45, // ü
}

// fold maps upper case letters of the code page to lower case.
func fold(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return b + 0x20
	case b >= 0xc0 && b <= 0xde && b != 0xd7:
		return b + 0x20
	}
	return b
}

// Lookup returns the packed cell for one received byte.
func Lookup(b byte) (byte, bool) {
	mask, ok := cells[fold(b)]
	return mask, ok
}
