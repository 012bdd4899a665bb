package book

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	b := New("t", "  Il était\tune fois…\n\nla fin. ")

	texts := []string{}
	for _, w := range b.Words() {
		texts = append(texts, w.Text)
		assert.Equal(t, w.Text, b.Text()[w.Start:w.End])
	}
	assert.Equal(t, []string{"Il", "était", "une", "fois…", "la", "fin."}, texts)

	for i, w := range b.Words() {
		assert.Equal(t, i, w.Index)
	}
}

func TestEmptyBook(t *testing.T) {
	b := New("empty", " \n\t ")

	assert.Zero(t, b.WordCount())
	assert.Equal(t, 1, b.Pages())
	_, ok := b.Current()
	assert.False(t, ok)
	assert.False(t, b.Next())
	assert.False(t, b.Prev())
	assert.ErrorIs(t, b.GoToPage(1), ErrEmpty)

	words, err := b.Page(0)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func manyWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("mot%d", i)
	}
	return strings.Join(words, " ")
}

func TestPagination(t *testing.T) {
	b := New("long", manyWords(2*WordsPerPage+5))

	assert.Equal(t, 3, b.Pages())

	last, err := b.Page(2)
	require.NoError(t, err)
	assert.Len(t, last, 5)
	assert.Equal(t, "mot240", last[0].Text)

	_, err = b.Page(3)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	text, err := b.PageText(2)
	require.NoError(t, err)
	assert.Equal(t, "mot240 mot241 mot242 mot243 mot244", text)
}

func TestCursor(t *testing.T) {
	b := New("long", manyWords(WordsPerPage+2))

	w, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "mot0", w.Text)
	assert.False(t, b.Prev())

	require.NoError(t, b.GoToPage(2))
	w, _ = b.Current()
	assert.Equal(t, "mot120", w.Text)
	assert.Equal(t, 1, b.CurrentPage())

	assert.True(t, b.Next())
	assert.False(t, b.Next())
	assert.True(t, b.Prev())
	assert.True(t, b.Prev())
	assert.Zero(t, b.CurrentPage())

	assert.ErrorIs(t, b.GoToPage(0), ErrPageOutOfRange)
	assert.ErrorIs(t, b.GoToPage(3), ErrPageOutOfRange)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conte.txt")
	require.NoError(t, os.WriteFile(path, []byte("Bonjour \xff monde"), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "conte.txt", b.Name)
	assert.Equal(t, int64(15), b.Size)
	assert.Equal(t, 3, b.WordCount())
	assert.Equal(t, "\uFFFD", b.Words()[1].Text)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
