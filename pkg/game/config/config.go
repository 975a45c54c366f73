// Package config resolves session settings from defaults, an optional .env
// file, BLOCKFALL_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"blockfall/pkg/engine/input"
	"blockfall/pkg/game/i18n"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "BLOCKFALL_"

// Config holds everything needed to start a session
type Config struct {
	Renderer string
	Width    int // 0 derives the width from the terminal
	Height   int // 0 derives the height from the terminal
	Tick     time.Duration
	Seed     int64 // 0 seeds from the clock
	Lang     string
	LogFile  string // empty discards log output
	Bindings []string
	EnvFile  string
	ListKeys bool // print the key bindings and exit
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Renderer: RendererTUI,
		Tick:     150 * time.Millisecond,
		Lang:     "en",
		EnvFile:  ".env",
	}
}

// LookupFunc reads an environment variable, os.LookupEnv in production
type LookupFunc func(key string) (string, bool)

// Load resolves the configuration. args excludes the program name.
// Usage and flag errors are written to output.
func Load(args []string, lookup LookupFunc, output io.Writer) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvPrefix + "ENV_FILE"); ok {
		cfg.EnvFile = v
	}
	if cfg.EnvFile != "" {
		fileVars, err := godotenv.Read(cfg.EnvFile)
		switch {
		case err == nil:
			if err := cfg.apply(mapLookup(fileVars)); err != nil {
				return cfg, fmt.Errorf("%s: %w", cfg.EnvFile, err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// optional
		default:
			return cfg, fmt.Errorf("read %s: %w", cfg.EnvFile, err)
		}
	}

	if err := cfg.apply(lookup); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}

	flags := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use: tui or ebiten")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells (0 fits the terminal)")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells (0 fits the terminal)")
	flags.DurationVar(&cfg.Tick, "tick", cfg.Tick, "time between falls")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for piece selection (0 uses the clock)")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language: "+strings.Join(i18n.Languages(), ", "))
	flags.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write debug log to this file")
	flags.BoolVar(&cfg.ListKeys, "keys", cfg.ListKeys, "print the key bindings and exit")
	bindings := flags.String("bind", strings.Join(cfg.Bindings, ","), "comma separated key overrides, e.g. left=j,right=l")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Bindings = splitList(*bindings)

	if err := cfg.Validate(); err != nil {
		flags.Usage()
		return cfg, err
	}
	return cfg, nil
}

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// apply overrides fields with whichever BLOCKFALL_* variables lookup knows
func (c *Config) apply(lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok
	}

	if v, ok := get("RENDERER"); ok {
		c.Renderer = v
	}
	if v, ok := get("WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWIDTH: %w", EnvPrefix, err)
		}
		c.Width = n
	}
	if v, ok := get("HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sHEIGHT: %w", EnvPrefix, err)
		}
		c.Height = n
	}
	if v, ok := get("TICK"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTICK: %w", EnvPrefix, err)
		}
		c.Tick = d
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := get("LANG"); ok {
		c.Lang = v
	}
	if v, ok := get("LOG"); ok {
		c.LogFile = v
	}
	if v, ok := get("BINDINGS"); ok {
		c.Bindings = splitList(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration for values a session cannot run with
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("board size %dx%d must not be negative", c.Width, c.Height)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick %s must be positive", c.Tick)
	}
	for _, b := range c.Bindings {
		if _, _, err := ParseBinding(b); err != nil {
			return err
		}
	}
	return nil
}

// ParseBinding splits an "action=code" override
func ParseBinding(s string) (input.Action, string, error) {
	name, code, ok := strings.Cut(s, "=")
	code = strings.TrimSpace(code)
	if !ok || code == "" {
		return input.ActionNone, "", fmt.Errorf("binding %q: want action=key", s)
	}
	action, err := input.ParseAction(name)
	if err != nil {
		return input.ActionNone, "", fmt.Errorf("binding %q: %w", s, err)
	}
	return action, code, nil
}

// ApplyBindings restores the default key bindings and installs the
// configured overrides on top of them
func (c Config) ApplyBindings() error {
	input.ResetBindings()
	for _, b := range c.Bindings {
		action, code, err := ParseBinding(b)
		if err != nil {
			return err
		}
		input.SetSingleBinding(action, code)
	}
	return nil
}
