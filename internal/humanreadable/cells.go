package humanreadable

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fudanchii/brl/internal/book"
	"github.com/fudanchii/brl/internal/braille"
	"github.com/fudanchii/brl/internal/display"
)

// Row is one line of the per-character table.
type Row braille.Cell

func (r Row) String() string {
	return fmt.Sprintf("%6s  →  %s  │  %c", display.Label(r.Char), r.Pattern, r.Pattern.Rune())
}

type SkippedRow braille.Unsupported

func (r SkippedRow) String() string {
	return fmt.Sprintf("%6q  →  (non supporté, ignoré)", r.Char)
}

// Rows lists a result in input order, skipped characters included.
func Rows(res braille.Result) []string {
	rows := make([]string, res.Len())
	for _, c := range res.Cells {
		rows[c.Pos] = Row(c).String()
	}
	for _, u := range res.Unsupported {
		rows[u.Pos] = SkippedRow(u).String()
	}
	return rows
}

// Report summarizes skipped characters, empty when there are none.
type Report []braille.Unsupported

func (r Report) String() string {
	if len(r) == 0 {
		return ""
	}

	parts := make([]string, len(r))
	for i, u := range r {
		parts[i] = fmt.Sprintf("%q (pos %d)", u.Char, u.Pos)
	}

	return fmt.Sprintf("%s: %s", count(len(r), "unrecognized character"), strings.Join(parts, ", "))
}

// Summary describes a loaded book.
func Summary(b *book.Book) string {
	return fmt.Sprintf("%s: %s, %s, %s",
		b.Name,
		humanize.Bytes(uint64(b.Size)),
		count(b.WordCount(), "word"),
		count(b.Pages(), "page"))
}

func count(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return humanize.Comma(int64(n)) + " " + noun
}

// Position tells where the current word sits, in the book's page style.
func Position(b *book.Book) string {
	w, ok := b.Current()
	if !ok {
		return "(aucun mot)"
	}

	page := b.CurrentPage()
	words, _ := b.Page(page)

	return fmt.Sprintf("%s word of %s, page %d / %d (%d mots)",
		humanize.Ordinal(w.Index+1),
		humanize.Comma(int64(b.WordCount())),
		page+1, b.Pages(), len(words))
}
