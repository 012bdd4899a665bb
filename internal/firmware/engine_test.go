package firmware

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fudanchii/brl/internal/braille"
	"github.com/fudanchii/brl/internal/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestTableMatchesCore(t *testing.T) {
	enc := charmap.Windows1252.NewEncoder()

	for _, c := range braille.Supported() {
		wire, err := enc.String(string(c))
		require.NoError(t, err, "char %q", c)
		require.Len(t, wire, 1)

		p, _ := braille.Lookup(c)
		mask, ok := Lookup(wire[0])
		require.True(t, ok, "char %q missing from firmware table", c)
		assert.Equal(t, p.Byte(), mask, "char %q", c)
	}

	assert.Len(t, cells, len(braille.Supported()))
}

func TestLookupFoldsCase(t *testing.T) {
	upper, ok := Lookup('B')
	require.True(t, ok)
	lower, _ := Lookup('b')
	assert.Equal(t, lower, upper)

	upper, ok = Lookup(0xc9) // É
	require.True(t, ok)
	assert.Equal(t, byte(0x21), upper)

	_, ok = Lookup(0xd7) // ×
	assert.False(t, ok)
}

type fakeCells struct {
	shown  []byte
	rested int
	err    error
}

func (f *fakeCells) Show(mask byte) error {
	if f.err != nil {
		return f.err
	}
	f.shown = append(f.shown, mask)
	return nil
}

func (f *fakeCells) Rest() error {
	f.rested++
	return nil
}

func TestEngineRun(t *testing.T) {
	cells := &fakeCells{}
	var out bytes.Buffer

	e, err := NewEngine(cells, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, cells.rested)

	require.NoError(t, e.Run(strings.NewReader("Ab\r\n1 ")))

	assert.Equal(t, []byte{0x01, 0x03, 0x00}, cells.shown)
	assert.Equal(t, "OK 41 10000000\r\nOK 62 11000000\r\nNA 31\r\nOK 20 00000000\r\n", out.String())

	received, shown := e.Stats()
	assert.Equal(t, 4, received)
	assert.Equal(t, 3, shown)
}

func TestEngineStopsOnOutputFailure(t *testing.T) {
	cells := &fakeCells{}
	e, err := NewEngine(cells, &bytes.Buffer{})
	require.NoError(t, err)

	cells.err = errors.New("relay board unpowered")
	err = e.Run(strings.NewReader("abc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unpowered")
}

func TestEngineWithDriver(t *testing.T) {
	board := driver.NewVirtualBoard(nil)
	var held []byte

	d, err := driver.New(board.Lines(), driver.Config{Polarity: driver.ActiveLow, Hold: time.Second},
		driver.WithSleep(func(time.Duration) { held = append(held, board.Levels()) }))
	require.NoError(t, err)

	var out bytes.Buffer
	e, err := NewEngine(d, &out)
	require.NoError(t, err)

	require.NoError(t, e.Feed(0xe7)) // ç
	assert.Equal(t, []byte{^byte(0x57)}, held)
	assert.Equal(t, byte(0xff), board.Levels())
	assert.Equal(t, "OK e7 11101010\r\n", out.String())

	require.NoError(t, e.Feed('\n'))
	assert.Len(t, held, 1)
}
