package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
	color  bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &consoleHandler{writer: w, level: lvl, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var buf bytes.Buffer
	buf.Grow(128)

	if !record.Time.IsZero() {
		buf.WriteString(record.Time.Format("15:04:05"))
		buf.WriteByte(' ')
	}

	level := record.Level.String()
	switch {
	case h.color && record.Level >= slog.LevelError:
		level = ansiRed + level + ansiReset
	case h.color && record.Level >= slog.LevelWarn:
		level = ansiYellow + level + ansiReset
	case h.color && record.Level < slog.LevelInfo:
		level = ansiDim + level + ansiReset
	}
	buf.WriteString(level)

	component := ""
	var fields []slog.Attr
	appendField := func(attr slog.Attr) {
		if attr.Key == FieldComponent && component == "" {
			component = attr.Value.String()
			return
		}
		fields = append(fields, attr)
	}
	for _, attr := range h.attrs {
		appendField(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		appendField(attr)
		return true
	})

	if component != "" {
		buf.WriteString(" [")
		buf.WriteString(component)
		buf.WriteByte(']')
	}
	buf.WriteByte(' ')
	buf.WriteString(record.Message)

	for _, attr := range fields {
		buf.WriteByte(' ')
		buf.WriteString(attr.Key)
		buf.WriteByte('=')
		fmt.Fprintf(&buf, "%v", attr.Value.Any())
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append([]slog.Attr{}, h.attrs...),
		groups: append([]string{}, h.groups...),
		color:  h.color,
	}
}
