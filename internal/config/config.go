// Package config loads the complexsolver TOML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
)

// DefaultHistoryPath is the SQLite file used when history is enabled
// without a path.
const DefaultHistoryPath = "complexsolver.db"

// DefaultWidth is the column budget of one result line in the editor.
const DefaultWidth = 26

// ErrInvalid marks a configuration that parsed but cannot be used.
var ErrInvalid = errors.New("config: invalid")

// Config holds the complete application configuration
type Config struct {
	Display DisplayConfig `toml:"display"`
	Solver  SolverConfig  `toml:"solver"`
	Parser  ParserConfig  `toml:"parser"`
	History HistoryConfig `toml:"history"`
}

// DisplayConfig controls how results are rendered
type DisplayConfig struct {
	Mode           string `toml:"mode"`
	AngleSeparator string `toml:"angle_separator"`
	Width          int    `toml:"width"`
}

// SolverConfig selects the elimination policy
type SolverConfig struct {
	Pivoting bool    `toml:"pivoting"`
	Legacy   bool    `toml:"legacy"` // clears Pivoting unless the file sets it
	Epsilon  float64 `toml:"epsilon"`
}

// ParserConfig selects the expression policy
type ParserConfig struct {
	BestEffort bool `toml:"best_effort"`
}

// HistoryConfig controls the solve history store
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Mode:           notation.ModeRectangular.String(),
			AngleSeparator: notation.DefaultAngleSeparator,
			Width:          DefaultWidth,
		},
		Solver: SolverConfig{
			Pivoting: true,
			Epsilon:  linear.DefaultEpsilon,
		},
		History: HistoryConfig{Path: DefaultHistoryPath},
	}
}

// Load reads path over the defaults. An empty path returns Default();
// a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg.finish(md)
}

// Decode parses TOML text over the defaults.
func Decode(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return cfg.finish(md)
}

func (c *Config) finish(md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	// legacy implies no pivoting unless the file asks for it, as --legacy does.
	if c.Solver.Legacy && !md.IsDefined("solver", "pivoting") {
		c.Solver.Pivoting = false
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// applyDefaults fills values an explicit file may have blanked.
func (c *Config) applyDefaults() {
	if c.Display.Mode == "" {
		c.Display.Mode = notation.ModeRectangular.String()
	}
	if c.Display.AngleSeparator == "" {
		c.Display.AngleSeparator = notation.DefaultAngleSeparator
	}
	if c.Display.Width == 0 {
		c.Display.Width = DefaultWidth
	}
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath
	}
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	if _, err := notation.ParseMode(c.Display.Mode); err != nil {
		return fmt.Errorf("%w: display.mode: %w", ErrInvalid, err)
	}
	if c.Display.AngleSeparator == "" {
		return fmt.Errorf("%w: display.angle_separator is empty", ErrInvalid)
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("%w: display.width %d < 0", ErrInvalid, c.Display.Width)
	}
	if eps := c.Solver.Epsilon; eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("%w: solver.epsilon %g", ErrInvalid, c.Solver.Epsilon)
	}

	return nil
}

// SolverOptions maps the solver section onto linear options.
func (c *Config) SolverOptions() []linear.Option {
	if c.Solver.Legacy {
		opts := []linear.Option{linear.WithLegacy()}
		if c.Solver.Pivoting {
			opts = append(opts, linear.WithPivoting(linear.PivotPartial))
		}

		return opts
	}

	pivot := linear.PivotNone
	if c.Solver.Pivoting {
		pivot = linear.PivotPartial
	}

	return []linear.Option{
		linear.WithPivoting(pivot),
		linear.WithEpsilon(c.Solver.Epsilon),
	}
}

// ParserOptions maps the parser section onto expr options.
func (c *Config) ParserOptions() []expr.Option {
	if c.Parser.BestEffort {
		return []expr.Option{expr.WithBestEffort()}
	}

	return []expr.Option{expr.WithStrict()}
}

// FormatterOptions maps the display section onto notation options.
func (c *Config) FormatterOptions() []notation.Option {
	return []notation.Option{notation.WithAngleSeparator(c.Display.AngleSeparator)}
}

// Formatter builds the configured notation.Formatter.
func (c *Config) Formatter() notation.Formatter {
	return notation.NewFormatter(c.FormatterOptions()...)
}

// DisplayMode returns the configured rendering. Call Validate first.
func (c *Config) DisplayMode() notation.Mode {
	m, err := notation.ParseMode(c.Display.Mode)
	if err != nil {
		return notation.ModeRectangular
	}

	return m
}
