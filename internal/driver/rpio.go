//go:build linux && !baremetal

package driver

import (
	"fmt"

	"github.com/fudanchii/brl/internal/braille"
	"github.com/stianeikeland/go-rpio/v4"
)

type rpioLine struct {
	pin rpio.Pin
}

func (l rpioLine) Set(level bool) error {
	if level {
		l.pin.High()
	} else {
		l.pin.Low()
	}
	return nil
}

// RPiBoard drives eight BCM GPIO pins of a Raspberry Pi.
type RPiBoard struct {
	pins [braille.PinCount]int
}

// OpenRPi maps the GPIO registers and configures the pins as outputs.
func OpenRPi(pins [braille.PinCount]int) (*RPiBoard, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("driver: opening gpio: %w", err)
	}

	for _, n := range pins {
		rpio.Pin(n).Output()
	}

	return &RPiBoard{pins: pins}, nil
}

func (b *RPiBoard) Lines() [braille.PinCount]Line {
	var lines [braille.PinCount]Line
	for i, n := range b.pins {
		lines[i] = rpioLine{pin: rpio.Pin(n)}
	}
	return lines
}

func (b *RPiBoard) Close() error {
	return rpio.Close()
}
