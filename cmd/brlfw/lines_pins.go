//go:build tinygo && !shiftreg

package main

import (
	"machine"

	"github.com/fudanchii/brl/internal/braille"
	"github.com/fudanchii/brl/internal/driver"
)

// relay inputs for pin0..pin7
var relayPins = [braille.PinCount]machine.Pin{
	machine.GP2, machine.GP3, machine.GP4, machine.GP5,
	machine.GP6, machine.GP7, machine.GP8, machine.GP9,
}

type pinLine machine.Pin

func (p pinLine) Set(level bool) error {
	machine.Pin(p).Set(level)
	return nil
}

func outputLines() [braille.PinCount]driver.Line {
	var lines [braille.PinCount]driver.Line
	for i, pin := range relayPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		lines[i] = pinLine(pin)
	}
	return lines
}
