// Package config loads the defaults a presentation layer offers its users:
// the initial formula, the plot domain and the bisection settings.
//
// Sources, later wins: Default(), then a YAML file, then whatever the
// caller overrides (the CLI applies its flags). Validate runs last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/engine"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/sample"
)

// DefaultExpression is the formula shown before the user types anything.
const DefaultExpression = "x**3 - 5*x + 2"

var (
	// ErrInvalidConfig indicates a value failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrDecode indicates the YAML could not be decoded (syntax or unknown key).
	ErrDecode = errors.New("config: cannot decode YAML")
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Config is the full set of user-facing defaults.
type Config struct {
	// Expression is the initial formula.
	Expression string `yaml:"expression" validate:"required"`

	// Variable is the free variable name.
	Variable string `yaml:"variable" validate:"required,variable"`

	// Plot is the sampling domain.
	Plot PlotConfig `yaml:"plot"`

	// Bisection holds the interval and the convergence settings.
	Bisection BisectionConfig `yaml:"bisection"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// PlotConfig is the sampling domain.
type PlotConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max" validate:"gtfield=Min"`
	Points int     `yaml:"points" validate:"min=2"`
}

// BisectionConfig is the initial interval and convergence settings.
type BisectionConfig struct {
	A             float64 `yaml:"a"`
	B             float64 `yaml:"b"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"min=1"`
	Trace         bool    `yaml:"trace"`
}

func init() {
	// variable mirrors expr.ValidateVariable so a bad name fails at load time.
	err := validate.RegisterValidation("variable", func(fl validator.FieldLevel) bool {
		return expr.ValidateVariable(fl.Field().String()) == nil
	})
	if err != nil {
		panic("config: registering the variable validation: " + err.Error())
	}
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Expression: DefaultExpression,
		Variable:   expr.DefaultVariable,
		Plot: PlotConfig{
			Min:    sample.DefaultMin,
			Max:    sample.DefaultMax,
			Points: sample.DefaultPoints,
		},
		Bisection: BisectionConfig{
			A:             bisection.DefaultLower,
			B:             bisection.DefaultUpper,
			Tolerance:     bisection.DefaultTolerance,
			MaxIterations: bisection.DefaultMaxIterations,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over Default() and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result. Keys absent
// from data keep their defaults; unknown keys are rejected. Empty input
// yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w: %w", ErrDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s=%v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("Validate: %s: %w", strings.Join(fields, ", "), ErrInvalidConfig)
		}
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML, e.g. to write a starter file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel maps LogLevel to a slog.Level; unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BisectionOptions returns the convergence settings for bisection.FindRoot.
func (c Config) BisectionOptions() bisection.Options {
	return bisection.Options{
		Tolerance:     c.Bisection.Tolerance,
		MaxIterations: c.Bisection.MaxIterations,
		Trace:         c.Bisection.Trace,
	}
}

// Request builds the engine request for a full plot-and-solve pass.
func (c Config) Request() engine.Request {
	return engine.Request{
		Expression: c.Expression,
		Variable:   c.Variable,
		Plot:       &engine.PlotRequest{Min: c.Plot.Min, Max: c.Plot.Max, Points: c.Plot.Points},
		Solve:      &engine.SolveRequest{A: c.Bisection.A, B: c.Bisection.B, Options: c.BisectionOptions()},
	}
}
