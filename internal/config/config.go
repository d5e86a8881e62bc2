// Package config loads the settings of the uribuild command.
//
// Precedence (highest wins): explicit flags > URIBUILD_* environment variables >
// config file > defaults. A .env file in the working directory is loaded first,
// real environment variables still win over it.
package config

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/log"
)

// EnvPrefix is the prefix of environment variables, e.g. URIBUILD_SCHEME.
const EnvPrefix = "URIBUILD"

// ErrInvalidConfig is returned when flags, environment or config file hold invalid values.
const ErrInvalidConfig errorutil.Error = "invalid configuration"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings of the uribuild command.
type Config struct {
	// URI is the optional positional argument to parse.
	URI string `mapstructure:"-"`

	Scheme       string   `mapstructure:"scheme"`
	Host         string   `mapstructure:"host"`
	Path         string   `mapstructure:"path"`
	Query        string   `mapstructure:"query"`
	Params       []string `mapstructure:"-"`
	BoolAsString bool     `mapstructure:"bool-as-string"`
	Fragment     string   `mapstructure:"fragment"`

	Format   string     `mapstructure:"format"`
	LogLevel string     `mapstructure:"log-level"`
	Level    slog.Level `mapstructure:"-"`
	DevLog   bool       `mapstructure:"dev-log"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `mapstructure:"config"`
	// EnvFile is the .env file that was loaded, if any.
	EnvFile string `mapstructure:"-"`
}

func newFlagSet(name string, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] [URI]\n\n", name)
		fmt.Fprintf(output, "Parses URI (if given), applies the component flags and prints the result.\n\n")
		fmt.Fprintf(output, "Flags:\n%s", fs.FlagUsages())
		fmt.Fprintf(output, "\nEvery flag can also be set with a %s_<FLAG> environment variable,\n", EnvPrefix)
		fmt.Fprintf(output, "e.g. %s_LOG_LEVEL=debug.\n", EnvPrefix)
	}

	fs.String("scheme", "", "URI scheme, e.g. https")
	fs.String("host", "", "URI host")
	fs.String("path", "", "URI path, '/' is prepended when missing")
	fs.String("query", "", "raw query string replacing all query parameters, e.g. 'a=1&b=2'")
	fs.StringArray("param", nil, "query parameter as key=value, repeatable; true/false become booleans")
	fs.Bool("bool-as-string", false, "store boolean query parameters as strings")
	fs.String("fragment", "", "URI fragment, '#' is prepended when missing")
	fs.String("format", FormatText, "output format: text, json or yaml")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.Bool("dev-log", false, "use the developer log format")
	fs.String("config", "", "config file (yaml, json or toml)")
	return fs
}

// Load parses args and merges them with the environment and the config file.
// Usage and flag errors are written to output.
// For -h/--help the returned error matches [pflag.ErrHelp],
// every other failure matches [ErrInvalidConfig].
func Load(name string, args []string, output io.Writer) (*Config, error) {
	var envFile string
	if err := godotenv.Load(); err == nil {
		envFile = ".env"
	}

	fs := newFlagSet(name, output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errtrace.Wrap(err)
		}
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	if fs.NArg() > 1 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "expected at most one URI argument, got %d", fs.NArg()))
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, fmt.Errorf("read %s: %w", file, err)))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	cfg.URI = fs.Arg(0)
	cfg.EnvFile = envFile
	if fs.Changed("param") {
		ps, err := fs.GetStringArray("param")
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
		}
		cfg.Params = ps
	} else {
		cfg.Params = v.GetStringSlice("param")
	}

	if err := cfg.validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "unknown format %q", c.Format))
	}

	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "log level %q: %v", c.LogLevel, err))
	}
	c.Level = lvl

	for _, p := range c.Params {
		if k, _, _ := strings.Cut(p, "="); k == "" {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "query parameter %q has no key", p))
		}
	}
	return nil
}
