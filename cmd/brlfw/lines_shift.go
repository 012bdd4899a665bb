//go:build tinygo && shiftreg

package main

import (
	"machine"

	"github.com/fudanchii/brl/internal/braille"
	"github.com/fudanchii/brl/internal/driver"
	"tinygo.org/x/drivers/shiftregister"
)

// 74HC595 wiring, QA..QH carry pin0..pin7
const (
	LATCH_PIN = machine.GP10
	CLOCK_PIN = machine.GP11
	DATA_PIN  = machine.GP12
)

type shiftLine struct {
	pin *shiftregister.ShiftPin
}

func (l shiftLine) Set(level bool) error {
	if level {
		l.pin.High()
	} else {
		l.pin.Low()
	}
	return nil
}

func outputLines() [braille.PinCount]driver.Line {
	reg := shiftregister.New(shiftregister.EIGHT_BITS, LATCH_PIN, CLOCK_PIN, DATA_PIN)
	reg.Configure()

	var lines [braille.PinCount]driver.Line
	for i := range lines {
		lines[i] = shiftLine{pin: reg.GetShiftPin(i)}
	}
	return lines
}
