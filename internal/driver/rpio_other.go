//go:build !linux || baremetal

package driver

import (
	"errors"

	"github.com/fudanchii/brl/internal/braille"
)

var ErrGPIOUnavailable = errors.New("driver: error, gpio output is only available on linux")

type RPiBoard struct{}

func OpenRPi(pins [braille.PinCount]int) (*RPiBoard, error) {
	return nil, ErrGPIOUnavailable
}

func (b *RPiBoard) Lines() [braille.PinCount]Line {
	return [braille.PinCount]Line{}
}

func (b *RPiBoard) Close() error {
	return nil
}
