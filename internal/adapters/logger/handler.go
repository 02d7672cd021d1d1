// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/ui/output"
	"go.trai.ch/warm/internal/ui/style"
)

// Attributes with a dedicated place in pretty output.
const (
	KeyAttr   = "key"
	StateAttr = "state"
	TookAttr  = "took"
)

// PrettyHandler is a slog.Handler that renders cache events as single
// coloured lines: "<mark> <key> <message> in <took> [attrs]".
// The mark and colour come from the entry state when one is attached,
// and from the level otherwise.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// line collects the parts of one rendered record.
type line struct {
	key   string
	state domain.EntryState
	took  time.Duration
	extra []string
}

func (l *line) add(group string, attr slog.Attr) {
	if group == "" {
		switch attr.Key {
		case KeyAttr:
			l.key = attr.Value.String()
			return
		case StateAttr:
			l.state = domain.EntryState(attr.Value.String())
			return
		case TookAttr:
			if attr.Value.Kind() == slog.KindDuration {
				l.took = attr.Value.Duration()
				return
			}
		}
	}

	name := attr.Key
	if group != "" {
		name = group + "." + name
	}
	l.extra = append(l.extra, name+"="+attr.Value.String())
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var l line
	for _, attr := range h.attrs {
		l.add(h.group, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		l.add(h.group, attr)
		return true
	})

	icon, color := levelMark(r.Level)
	if l.state != "" {
		mark := style.ForState(l.state)
		icon, color = mark.Icon, mark.Color
	}

	parts := make([]string, 0, 4+len(l.extra))
	if icon != "" {
		parts = append(parts, icon)
	}
	if l.key != "" {
		parts = append(parts, l.key)
	}
	parts = append(parts, r.Message)
	if l.took > 0 {
		parts = append(parts, "in", l.took.Round(time.Millisecond).String())
	}
	parts = append(parts, l.extra...)

	styled := h.out.String(strings.Join(parts, " ")).Foreground(h.out.Color(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

func levelMark(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Error.Icon, style.Error.Color
	case level >= slog.LevelWarn:
		return style.Warn.Icon, style.Warn.Color
	default:
		return "", style.Muted
	}
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}
