//go:build tinygo

// brlfw runs on the relay board: every byte received on the UART is shown as
// one Braille cell on eight relays, then acknowledged on the same UART.
package main

import (
	"machine"
	"time"

	"github.com/fudanchii/brl/internal/driver"
	"github.com/fudanchii/brl/internal/firmware"
)

const (
	BAUD_RATE   = 9600
	HOLD        = 1 * time.Second
	POLARITY    = driver.ActiveLow
	POLL_RATE   = 5 * time.Millisecond
	RETRY_DELAY = 1 * time.Second
)

func halt(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(RETRY_DELAY)
	}
}

func main() {
	uart := machine.DefaultUART
	if err := uart.Configure(machine.UARTConfig{BaudRate: BAUD_RATE}); err != nil {
		halt("could not configure uart:", err)
	}

	cells, err := driver.New(outputLines(), driver.Config{Polarity: POLARITY, Hold: HOLD})
	if err != nil {
		halt("could not set up relays:", err)
	}

	engine, err := firmware.NewEngine(cells, uart)
	if err != nil {
		halt("could not rest relays:", err)
	}

	for {
		if uart.Buffered() == 0 {
			time.Sleep(POLL_RATE)
			continue
		}

		b, err := uart.ReadByte()
		if err != nil {
			continue
		}

		if err := engine.Feed(b); err != nil {
			println("cell failed:", err.Error())
			cells.Rest()
		}
	}
}
