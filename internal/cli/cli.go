// Package cli implements the uribuild command.
package cli

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/uribuilder/internal/config"
	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/log"
	"github.com/ghettovoice/uribuilder/uri"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitURI   = 1
	ExitUsage = 2
)

// Run executes the command with args (without the program name) and returns the exit code.
func Run(name string, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(name, args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", name)
		return ExitUsage
	}

	logger := log.New(stderr, cfg.Level, cfg.DevLog)
	if cfg.EnvFile != "" {
		logger.Debug("environment file loaded", "file", cfg.EnvFile)
	}
	if cfg.ConfigFile != "" {
		logger.Debug("config file loaded", "file", cfg.ConfigFile)
	}

	b, err := build(cfg)
	if err != nil {
		logger.Error("failed to build URI", "uri", cfg.URI, "builder", b, "error", err)
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return ExitURI
	}
	logger.Debug("URI built", "builder", b)

	if err := write(stdout, cfg.Format, b); err != nil {
		logger.Error("failed to write output", "format", cfg.Format, "error", err)
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return ExitURI
	}
	return ExitOK
}

func build(cfg *config.Config) (*uri.Builder, error) {
	b := uri.New()
	if cfg.URI != "" {
		var err error
		if b, err = uri.Parse(cfg.URI); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	if cfg.Scheme != "" {
		b.SetScheme(cfg.Scheme)
	}
	if cfg.Host != "" {
		b.SetHost(cfg.Host)
	}
	b.SetPath(cfg.Path)
	if cfg.Query != "" {
		b.SetQuery(cfg.Query)
	}
	opt := uri.QueryParamOptions{BoolAsString: cfg.BoolAsString}
	for _, p := range cfg.Params {
		k, v, _ := strings.Cut(p, "=")
		b.SetQueryParam(k, paramValue(v), opt)
	}
	b.SetFragment(cfg.Fragment)

	if _, err := b.Build(); err != nil {
		return b, errtrace.Wrap(err)
	}
	switch {
	case b.Scheme() == "":
		return b, errtrace.Wrap(errorutil.NewWrapperError(uri.ErrMissingComponent, "scheme"))
	case b.Host() == "":
		return b, errtrace.Wrap(errorutil.NewWrapperError(uri.ErrMissingComponent, "host"))
	}
	return b, nil
}

func paramValue(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	default:
		return v
	}
}

func write(w io.Writer, format string, b *uri.Builder) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errtrace.Wrap(enc.Encode(b.Components()))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b.Components()); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		_, err := fmt.Fprintln(w, b.String())
		return errtrace.Wrap(err)
	}
}
