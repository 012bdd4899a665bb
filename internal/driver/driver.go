// Package driver asserts eight output lines from one Braille cell.
//
// Line i follows pin i of the cell. Relay boards are often active-low, so the
// electrical level written to a line is the pin state XOR the polarity.
package driver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fudanchii/brl/internal/braille"
)

var (
	ErrMissingLine     = errors.New("driver: error, all 8 output lines must be assigned")
	ErrInvalidPolarity = errors.New("driver: error, polarity must be active-high or active-low")
)

// Line is one physical output signal.
type Line interface {
	Set(level bool) error
}

type Polarity uint8

const (
	ActiveHigh Polarity = iota
	ActiveLow
)

func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "high", "active-high":
		return ActiveHigh, nil
	case "low", "active-low":
		return ActiveLow, nil
	}
	return ActiveHigh, fmt.Errorf("%w: %q", ErrInvalidPolarity, s)
}

func (p Polarity) String() string {
	if p == ActiveLow {
		return "active-low"
	}
	return "active-high"
}

// Level is the electrical level that asserts (or releases) a pin.
func (p Polarity) Level(asserted bool) bool {
	if p == ActiveLow {
		return !asserted
	}
	return asserted
}

type Config struct {
	Polarity Polarity
	Hold     time.Duration
}

type Option func(*Driver)

// WithLogger replaces slog.Default. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSleep replaces time.Sleep for the hold interval.
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Driver) {
		d.sleep = sleep
	}
}

type Driver struct {
	mu     sync.Mutex
	lines  [braille.PinCount]Line
	cfg    Config
	state  byte
	sleep  func(time.Duration)
	logger *slog.Logger
}

// New checks the line assignment and leaves every line at rest.
func New(lines [braille.PinCount]Line, cfg Config, opts ...Option) (*Driver, error) {
	for i, line := range lines {
		if line == nil {
			return nil, fmt.Errorf("%w (line %d)", ErrMissingLine, i)
		}
	}

	if cfg.Polarity != ActiveHigh && cfg.Polarity != ActiveLow {
		return nil, ErrInvalidPolarity
	}

	d := &Driver{
		lines:  lines,
		cfg:    cfg,
		sleep:  time.Sleep,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	if err := d.Rest(); err != nil {
		return nil, err
	}

	return d, nil
}

// Apply asserts line i iff bit i of mask is set. The lines hold until the
// next call.
func (d *Driver) Apply(mask byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.apply(mask)
}

func (d *Driver) apply(mask byte) error {
	for i, line := range d.lines {
		asserted := mask&(1<<i) != 0
		if err := line.Set(d.cfg.Polarity.Level(asserted)); err != nil {
			return fmt.Errorf("driver: line %d: %w", i, err)
		}
	}

	d.state = mask
	d.logger.Debug("driver: applied", "mask", fmt.Sprintf("%08b", mask), "polarity", d.cfg.Polarity.String())

	return nil
}

// Rest puts every pin down.
func (d *Driver) Rest() error {
	return d.Apply(0)
}

// Show applies mask, holds it for the configured interval, then rests.
func (d *Driver) Show(mask byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.apply(mask); err != nil {
		return err
	}

	if d.cfg.Hold > 0 {
		d.sleep(d.cfg.Hold)
	}

	return d.apply(0)
}

func (d *Driver) ShowPattern(p braille.Pattern) error {
	return d.Show(p.Byte())
}

func (d *Driver) ApplyPattern(p braille.Pattern) error {
	return d.Apply(p.Byte())
}

// State is the mask last applied, 0 when resting.
func (d *Driver) State() byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

func (d *Driver) Config() Config {
	return d.cfg
}
