package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/fudanchii/brl/internal/book"
	"github.com/fudanchii/brl/internal/braille"
	"github.com/fudanchii/brl/internal/display"
	"github.com/fudanchii/brl/internal/humanreadable"
	"github.com/fudanchii/brl/internal/link"
)

const (
	CMD_PREFIX = ":"
)

var (
	ErrUnknownCommand = errors.New("session: error, unknown command, try :help")
	ErrNoBook         = errors.New("session: error, no text open, use :open <file>")
	ErrNoSpeech       = errors.New("session: error, no speech synthesizer available")
)

var quitTokens = []string{"quitter", "quit", ":q"}

var commands = []string{":open ", ":next", ":prev", ":page ", ":word", ":epeler", ":alphabet", ":help"}

// Sender forwards converted text to a board over the serial link.
type Sender interface {
	SendText(s string) ([]link.Ack, error)
}

// Shower drives local relay lines one cell at a time.
type Shower interface {
	ShowPattern(p braille.Pattern) error
}

type session struct {
	out    io.Writer
	buffer *display.Buffer
	book   *book.Book
	sender Sender
	shower Shower
	speak  Speaker
	logger *slog.Logger
	now    func() time.Time
}

func isQuit(input string) bool {
	if input == "" {
		return true
	}
	for _, q := range quitTokens {
		if strings.EqualFold(input, q) {
			return true
		}
	}
	return false
}

// handle processes one input line and reports whether the session is over.
func (s *session) handle(input string) (bool, error) {
	input = strings.TrimSpace(input)
	if isQuit(input) {
		fmt.Fprintln(s.out, "Au revoir.")
		return true, nil
	}

	if strings.HasPrefix(input, CMD_PREFIX) {
		return false, s.command(input)
	}

	return false, s.translate(input)
}

func (s *session) command(input string) error {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":help":
		fmt.Fprintln(s.out, "  <texte>         translate a line")
		fmt.Fprintln(s.out, "  :open <file>    open a .txt file and read it word by word")
		fmt.Fprintln(s.out, "  :next / :prev   move to the next or previous word")
		fmt.Fprintln(s.out, "  :page <n>       jump to page n")
		fmt.Fprintln(s.out, "  :word           show the current word again")
		fmt.Fprintln(s.out, "  :epeler [mot]   spell the current word, or the given one, aloud")
		fmt.Fprintln(s.out, "  :alphabet       list every supported character")
		fmt.Fprintln(s.out, "  empty line, quitter, Ctrl-D to leave")
		return nil

	case ":alphabet":
		for _, line := range display.Alphabet() {
			fmt.Fprintln(s.out, line)
		}
		return nil

	case ":open":
		if arg == "" {
			return fmt.Errorf("%w: missing file name", ErrUnknownCommand)
		}
		b, err := book.Load(arg)
		if err != nil {
			return err
		}
		s.book = b
		s.logger.Info("book opened", "name", b.Name, "words", b.WordCount())
		fmt.Fprintln(s.out, humanreadable.Summary(b))
		return s.word()

	case ":next", ":prev":
		if s.book == nil {
			return ErrNoBook
		}
		moved := s.book.Next
		if name == ":prev" {
			moved = s.book.Prev
		}
		if !moved() {
			fmt.Fprintln(s.out, "  (fin du texte)")
			return nil
		}
		return s.word()

	case ":page":
		if s.book == nil {
			return ErrNoBook
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: page number %q", book.ErrPageOutOfRange, arg)
		}
		if err := s.book.GoToPage(n); err != nil {
			return err
		}
		text, _ := s.book.PageText(n - 1)
		fmt.Fprintf(s.out, "— %d —\n%s\n", n, text)
		return s.word()

	case ":word":
		if s.book == nil {
			return ErrNoBook
		}
		return s.word()

	case ":epeler":
		if arg != "" {
			return s.spell(arg)
		}
		if s.book == nil {
			return ErrNoBook
		}
		w, ok := s.book.Current()
		if !ok {
			return book.ErrEmpty
		}
		return s.spell(w.Text)
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (s *session) word() error {
	w, ok := s.book.Current()
	if !ok {
		return book.ErrEmpty
	}
	fmt.Fprintf(s.out, "%s  [%s]\n", w.Text, humanreadable.Position(s.book))
	return s.translate(w.Text)
}

func (s *session) spell(word string) error {
	if s.speak == nil {
		return ErrNoSpeech
	}

	letters := []string{}
	for _, c := range word {
		letters = append(letters, spellable(c))
	}
	fmt.Fprintf(s.out, "  %s\n", strings.Join(letters, "-"))

	for _, l := range letters {
		ctx, cancel := context.WithTimeout(context.Background(), LETTER_TIMEOUT)
		err := s.speak(ctx, l)
		cancel()

		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", ErrNoSpeech, err)
		}
		if err != nil {
			s.logger.Warn("speech failed", "letter", l, "error", err)
		}
	}

	return nil
}

func (s *session) translate(text string) error {
	res := braille.ConvertText(text)

	fmt.Fprintf(s.out, "\n  Rendu Braille :  %s\n", display.GlyphLine(res))

	s.buffer.SetLine(res)
	if windows := s.buffer.Windows(); len(windows) > 1 {
		for i, w := range windows {
			fmt.Fprintf(s.out, "  [%d/%d] %s\n", i+1, len(windows), display.Glyphs(w))
		}
	}
	fmt.Fprintln(s.out)

	for _, row := range humanreadable.Rows(res) {
		fmt.Fprintln(s.out, row)
	}

	if report := humanreadable.Report(res.Unsupported).String(); report != "" {
		fmt.Fprintf(s.out, "\n  %s\n", report)
		s.logger.Debug("unsupported characters", "count", len(res.Unsupported))
	}
	fmt.Fprintln(s.out)

	return s.forward(text, res)
}

func (s *session) forward(text string, res braille.Result) error {
	if s.sender != nil {
		start := s.now()
		acks, err := s.sender.SendText(text)
		fmt.Fprintf(s.out, "  %d cells sent in %s\n", len(acks), humanreadable.Elapsed(s.now().Sub(start)))
		if err != nil {
			if !errors.Is(err, link.ErrRejected) && !errors.Is(err, link.ErrUnencodable) {
				return err
			}
			s.logger.Warn("board skipped characters", "error", err)
		}
	}

	if s.shower != nil {
		for _, cell := range res.Cells {
			if err := s.shower.ShowPattern(cell.Pattern); err != nil {
				return err
			}
		}
	}

	return nil
}
