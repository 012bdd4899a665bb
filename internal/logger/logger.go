package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler writes one line per record, "2006/01/02 15:04:05 LEVEL: msg k=v".
// Records go to the log file when there is one, and to the console when
// debugging or when they are above debug level.
type Handler struct {
	file    io.Writer
	console io.Writer
	level   slog.Leveler
	debug   bool

	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
}

func NewHandler(file, console io.Writer, level slog.Leveler, debug bool) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		file:    file,
		console: console,
		level:   level,
		debug:   debug,
		mu:      &sync.Mutex{},
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *Handler) qualify(attrs []slog.Attr) []slog.Attr {
	if len(h.groups) == 0 {
		return attrs
	}
	prefix := strings.Join(h.groups, ".") + "."
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	strs := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}

	for _, a := range h.attrs {
		strs = append(strs, a.Key+"="+a.Value.String())
	}

	recAttrs := []slog.Attr{}
	r.Attrs(func(a slog.Attr) bool {
		recAttrs = append(recAttrs, a)
		return true
	})
	for _, a := range h.qualify(recAttrs) {
		strs = append(strs, a.Key+"="+a.Value.String())
	}

	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.file != nil {
		_, err = h.file.Write(b)
	}

	if h.console != nil && (h.debug || r.Level > slog.LevelDebug) {
		if _, cerr := h.console.Write(b); err == nil {
			err = cerr
		}
	}

	return err
}
