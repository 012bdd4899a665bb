// Package link is the host side of the relay board's serial protocol.
//
// Each character travels as one Windows-1252 byte. The board answers every
// byte except CR/LF with one line:
//
//	OK <hex byte> <pins>\r\n   cell shown, pins as eight 0/1 digits, pin0 first
//	NA <hex byte>\r\n          byte has no cell, lines stay at rest
package link

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fudanchii/brl/internal/braille"
	"go.bug.st/serial"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrUnencodable = errors.New("link: error, character has no single byte encoding")
	ErrRejected    = errors.New("link: error, board has no cell for character")
	ErrNoAck       = errors.New("link: error, no acknowledgment from board")
	ErrBadAck      = errors.New("link: error, malformed acknowledgment")
)

const (
	DEFAULT_BAUD_RATE   = 9600
	DEFAULT_ACK_TIMEOUT = 2 * time.Second
	MAX_ACK_LENGTH      = 64
)

type Ack struct {
	Char    rune
	Byte    byte
	OK      bool
	Pattern braille.Pattern
}

type Link struct {
	port   io.ReadWriter
	closer io.Closer
	enc    *encoding.Encoder
	logger *slog.Logger
}

// Open connects to the board. The read timeout bounds the wait for each
// acknowledgment.
func Open(device string, baudRate int, timeout time.Duration, logger *slog.Logger) (*Link, error) {
	tty, err := serial.Open(device, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("link: opening %s: %w", device, err)
	}

	if timeout <= 0 {
		timeout = DEFAULT_ACK_TIMEOUT
	}

	if err := tty.SetReadTimeout(timeout); err != nil {
		tty.Close()
		return nil, fmt.Errorf("link: setting read timeout: %w", err)
	}

	l := New(tty, logger)
	l.closer = tty

	return l, nil
}

// New wraps an already open stream. A read returning (0, nil) counts as a
// timeout, as serial.Port does.
func New(port io.ReadWriter, logger *slog.Logger) *Link {
	if logger == nil {
		logger = slog.Default()
	}

	return &Link{
		port:   port,
		enc:    charmap.Windows1252.NewEncoder(),
		logger: logger,
	}
}

func (l *Link) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Encode returns the wire byte for r.
func (l *Link) Encode(r rune) (byte, error) {
	wire, err := l.enc.String(string(r))
	if err != nil || len(wire) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnencodable, r)
	}
	return wire[0], nil
}

// Send writes one character and waits for the board's answer.
func (l *Link) Send(r rune) (Ack, error) {
	b, err := l.Encode(r)
	if err != nil {
		return Ack{Char: r}, err
	}

	if _, err := l.port.Write([]byte{b}); err != nil {
		return Ack{Char: r, Byte: b}, fmt.Errorf("link: write: %w", err)
	}

	line, err := l.readLine()
	if err != nil {
		return Ack{Char: r, Byte: b}, err
	}

	ack, err := ParseAck(line)
	if err != nil {
		return Ack{Char: r, Byte: b}, err
	}
	ack.Char = r

	if ack.Byte != b {
		return ack, fmt.Errorf("%w: sent %02x, board answered %02x", ErrBadAck, b, ack.Byte)
	}

	l.logger.Debug("link: ack", "char", string(r), "byte", fmt.Sprintf("%02x", b), "ok", ack.OK)

	if !ack.OK {
		return ack, fmt.Errorf("%w: %q", ErrRejected, r)
	}

	return ack, nil
}

// SendText sends s one character at a time, skipping CR and LF. Unencodable
// and rejected characters are collected and do not stop the transfer; I/O
// failures and missing acknowledgments do.
func (l *Link) SendText(s string) ([]Ack, error) {
	acks := []Ack{}
	skipped := []error{}

	for _, r := range s {
		if r == '\r' || r == '\n' {
			continue
		}

		ack, err := l.Send(r)
		switch {
		case err == nil:
			acks = append(acks, ack)
		case errors.Is(err, ErrRejected):
			acks = append(acks, ack)
			skipped = append(skipped, err)
		case errors.Is(err, ErrUnencodable):
			skipped = append(skipped, err)
		default:
			return acks, err
		}
	}

	return acks, errors.Join(skipped...)
}

func (l *Link) readLine() (string, error) {
	var (
		sb  strings.Builder
		buf [1]byte
	)

	for {
		n, err := l.port.Read(buf[:])
		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return "", ErrNoAck
			}
			return "", fmt.Errorf("link: read: %w", err)
		}

		switch buf[0] {
		case '\r':
			continue
		case '\n':
			return sb.String(), nil
		}

		if sb.Len() >= MAX_ACK_LENGTH {
			return "", ErrBadAck
		}
		sb.WriteByte(buf[0])
	}
}

// ParseAck decodes one acknowledgment line without its line ending.
func ParseAck(line string) (Ack, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Ack{}, fmt.Errorf("%w: %q", ErrBadAck, line)
	}

	b, err := strconv.ParseUint(fields[1], 16, 8)
	if err != nil {
		return Ack{}, fmt.Errorf("%w: %q", ErrBadAck, line)
	}

	ack := Ack{Byte: byte(b)}

	switch fields[0] {
	case "NA":
		if len(fields) != 2 {
			return Ack{}, fmt.Errorf("%w: %q", ErrBadAck, line)
		}
		return ack, nil
	case "OK":
		if len(fields) != 3 || len(fields[2]) != braille.PinCount {
			return Ack{}, fmt.Errorf("%w: %q", ErrBadAck, line)
		}
		for i, c := range fields[2] {
			switch c {
			case '0':
			case '1':
				ack.Pattern[i] = 1
			default:
				return Ack{}, fmt.Errorf("%w: %q", ErrBadAck, line)
			}
		}
		ack.OK = true
		return ack, nil
	}

	return Ack{}, fmt.Errorf("%w: %q", ErrBadAck, line)
}
