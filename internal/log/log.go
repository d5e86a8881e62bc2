// Package log provides the slog loggers used by the command line tools.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/mattn/go-isatty"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/uribuilder/params"
	"github.com/ghettovoice/uribuilder/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(b *uri.Builder) slog.Value {
		if b == nil {
			return slog.StringValue("<nil>")
		}
		attrs := []slog.Attr{
			slog.String("uri", b.String()),
			slog.String("scheme", b.Scheme()),
			slog.String("host", b.Host()),
		}
		if p, ok := b.Path(); ok {
			attrs = append(attrs, slog.String("path", p))
		}
		if q := b.Query(); q.Len() > 0 {
			attrs = append(attrs, slog.String("query", q.Encode()))
		}
		if f, ok := b.Fragment(); ok {
			attrs = append(attrs, slog.String("fragment", f))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(q *params.Bag) slog.Value {
		return slog.StringValue(q.Encode())
	}),
)

// New creates a logger writing to w.
// Dev loggers use the devslog pretty printer, others the console handler.
func New(w io.Writer, level slog.Leveler, dev bool) *slog.Logger {
	if dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				NoColor:    !isTerminal(w),
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			NoColor:    !isTerminal(w),
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// ParseLevel parses a level name like "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errtrace.Wrap(err)
	}
	return lvl, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
