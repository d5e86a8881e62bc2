package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/uribuilder/internal/log"
	"github.com/ghettovoice/uribuilder/params"
	"github.com/ghettovoice/uribuilder/uri"
)

func TestNew_FormatsBuilder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, slog.LevelDebug, false)

	b := uri.New().SetScheme("https").SetHost("x.com").SetPath("a").SetQueryParam("k", 1)
	logger.Info("built", "uri", b, "query", params.Parse("z=26"), "error", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"built", "https://x.com/a?k=1", "x.com", "/a", "z=26", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, slog.LevelWarn, false)
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestNew_Dev(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log.New(&buf, slog.LevelDebug, true).Debug("dev record", "uri", uri.New().SetScheme("s").SetHost("h"))
	if out := buf.String(); !strings.Contains(out, "dev record") || !strings.Contains(out, "s://h") {
		t.Errorf("dev log output = %q, want message and uri", out)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("log.Noop.Enabled() = true, want false")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, c := range cases {
		got, err := log.ParseLevel(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("log.ParseLevel(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if !c.wantErr && got != c.want {
			t.Errorf("log.ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
