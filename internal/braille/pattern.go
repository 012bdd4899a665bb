// Package braille maps French text to 8-pin Braille cells.
//
// A cell is laid out as two columns of four pins:
//
//	pin0 pin4    dot1 dot4
//	pin1 pin5    dot2 dot5
//	pin2 pin6    dot3 dot6
//	pin3 pin7    dot7 dot8
//
// Pins 3 and 7 are reserved for 8-dot extensions and are never raised by the
// current table.
package braille

import (
	"strconv"
	"strings"
)

const PinCount = 8

const (
	pinDown uint8 = 0
	pinUp   uint8 = 1
)

// Pattern is the pin state of one cell, 0 = down, 1 = up.
type Pattern [PinCount]uint8

// unicode dot bit for each pin index
var glyphBits = [PinCount]rune{0x01, 0x02, 0x04, 0x40, 0x08, 0x10, 0x20, 0x80}

// dot number for each pin index
var dotNumbers = [PinCount]int{1, 2, 3, 7, 4, 5, 6, 8}

const GlyphBase = 0x2800

// Byte packs the pattern, bit i = pin i.
func (p Pattern) Byte() byte {
	var b byte
	for i, v := range p {
		if v != pinDown {
			b |= 1 << i
		}
	}
	return b
}

func FromByte(b byte) Pattern {
	var p Pattern
	for i := range p {
		if b&(1<<i) != 0 {
			p[i] = pinUp
		}
	}
	return p
}

// Rune returns the Unicode Braille glyph for the pattern.
func (p Pattern) Rune() rune {
	r := rune(GlyphBase)
	for i, v := range p {
		if v != pinDown {
			r |= glyphBits[i]
		}
	}
	return r
}

// Dots returns the raised dots using standard 1-8 numbering, ascending.
func (p Pattern) Dots() []int {
	dots := []int{}
	for n := 1; n <= PinCount; n++ {
		for i, d := range dotNumbers {
			if d == n && p[i] != pinDown {
				dots = append(dots, n)
			}
		}
	}
	return dots
}

func (p Pattern) IsBlank() bool {
	return p == Pattern{}
}

func (p Pattern) String() string {
	parts := make([]string, 0, PinCount)
	for _, v := range p {
		parts = append(parts, strconv.Itoa(int(v)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Bits renders the pins as eight digits, pin0 first.
func (p Pattern) Bits() string {
	var sb strings.Builder
	for _, v := range p {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}
