// Package book splits a text into words and pages and keeps a reading
// position, so a long document can be shown on the cells one word at a time.
package book

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const WordsPerPage = 120

var (
	ErrPageOutOfRange = errors.New("book: error, page out of range")
	ErrEmpty          = errors.New("book: error, no words in text")
)

// Word is a maximal run of non-space characters. Start and End are byte
// offsets into the book text.
type Word struct {
	Index int
	Text  string
	Start int
	End   int
}

type Book struct {
	Name string
	Size int64

	text    string
	words   []Word
	current int
}

// Load reads a UTF-8 text file. Invalid sequences are replaced with U+FFFD.
func Load(path string) (*Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("book: reading %s: %w", path, err)
	}

	b := New(filepath.Base(path), string(raw))
	b.Size = int64(len(raw))

	return b, nil
}

func New(name, text string) *Book {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	return &Book{
		Name:  name,
		Size:  int64(len(text)),
		text:  text,
		words: split(text),
	}
}

func split(text string) []Word {
	words := []Word{}
	start := -1

	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, Word{Index: len(words), Text: text[start:i], Start: start, End: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		words = append(words, Word{Index: len(words), Text: text[start:], Start: start, End: len(text)})
	}

	return words
}

func (b *Book) Text() string { return b.text }

func (b *Book) Words() []Word { return b.words }

func (b *Book) WordCount() int { return len(b.words) }

// Pages is at least 1, even for an empty book.
func (b *Book) Pages() int {
	if len(b.words) == 0 {
		return 1
	}
	return (len(b.words) + WordsPerPage - 1) / WordsPerPage
}

// Page returns the words of the 0-based page n.
func (b *Book) Page(n int) ([]Word, error) {
	if n < 0 || n >= b.Pages() {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n+1, b.Pages())
	}

	start := n * WordsPerPage
	end := min(start+WordsPerPage, len(b.words))

	return b.words[start:end], nil
}

// PageText joins the words of page n with single spaces.
func (b *Book) PageText(n int) (string, error) {
	words, err := b.Page(n)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " "), nil
}

func (b *Book) Current() (Word, bool) {
	if len(b.words) == 0 {
		return Word{}, false
	}
	return b.words[b.current], true
}

// CurrentPage is the 0-based page holding the current word.
func (b *Book) CurrentPage() int {
	return b.current / WordsPerPage
}

// Next moves to the following word, false at the last one.
func (b *Book) Next() bool {
	if b.current+1 >= len(b.words) {
		return false
	}
	b.current++
	return true
}

func (b *Book) Prev() bool {
	if b.current == 0 {
		return false
	}
	b.current--
	return true
}

// GoToPage moves to the first word of page n, counted from 1 as users do.
func (b *Book) GoToPage(n int) error {
	if len(b.words) == 0 {
		return ErrEmpty
	}
	if n < 1 || n > b.Pages() {
		return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n, b.Pages())
	}

	b.current = (n - 1) * WordsPerPage
	return nil
}
