// Package firmware is the board side of the serial link: one byte in, one
// cell shown on the relays, one acknowledgment line out.
package firmware

import (
	"errors"
	"fmt"
	"io"

	"github.com/fudanchii/brl/internal/braille"
)

const (
	AckOK       = "OK"
	AckRejected = "NA"
)

// Cells is the output stage, normally a *driver.Driver.
type Cells interface {
	Show(mask byte) error
	Rest() error
}

type Engine struct {
	cells Cells
	out   io.Writer

	received int
	shown    int
}

// NewEngine rests the output stage before the first character.
func NewEngine(cells Cells, out io.Writer) (*Engine, error) {
	if err := cells.Rest(); err != nil {
		return nil, err
	}
	return &Engine{cells: cells, out: out}, nil
}

// Feed handles one received byte. CR and LF leave the lines alone and are not
// acknowledged.
func (e *Engine) Feed(b byte) error {
	if b == '\r' || b == '\n' {
		return nil
	}

	e.received++

	mask, ok := Lookup(b)
	if !ok {
		_, err := fmt.Fprintf(e.out, "%s %02x\r\n", AckRejected, b)
		return err
	}

	if err := e.cells.Show(mask); err != nil {
		return err
	}
	e.shown++

	_, err := fmt.Fprintf(e.out, "%s %02x %s\r\n", AckOK, b, braille.FromByte(mask).Bits())
	return err
}

// Run feeds bytes until the reader fails. io.EOF ends the loop cleanly.
func (e *Engine) Run(in io.ByteReader) error {
	for {
		b, err := in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := e.Feed(b); err != nil {
			return err
		}
	}
}

func (e *Engine) Stats() (received, shown int) {
	return e.received, e.shown
}
