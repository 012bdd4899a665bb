package driver

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fudanchii/brl/internal/braille"
)

// VirtualLine keeps the level in memory, for dry runs and tests.
type VirtualLine struct {
	mu     sync.Mutex
	name   string
	level  bool
	writes int
	logger *slog.Logger
}

func NewVirtualLine(name string, logger *slog.Logger) *VirtualLine {
	return &VirtualLine{name: name, logger: logger}
}

func (l *VirtualLine) Set(level bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
	l.writes++
	if l.logger != nil {
		l.logger.Debug("line: set", "line", l.name, "level", level)
	}
	return nil
}

func (l *VirtualLine) Level() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *VirtualLine) Writes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes
}

// VirtualBoard is eight virtual lines named L0..L7.
type VirtualBoard [braille.PinCount]*VirtualLine

func NewVirtualBoard(logger *slog.Logger) *VirtualBoard {
	var board VirtualBoard
	for i := range board {
		board[i] = NewVirtualLine(fmt.Sprintf("L%d", i), logger)
	}
	return &board
}

func (b *VirtualBoard) Lines() [braille.PinCount]Line {
	var lines [braille.PinCount]Line
	for i, l := range b {
		lines[i] = l
	}
	return lines
}

// Levels packs the electrical levels, bit i = line i high.
func (b *VirtualBoard) Levels() byte {
	var levels byte
	for i, l := range b {
		if l.Level() {
			levels |= 1 << i
		}
	}
	return levels
}
