// Package config loads the settings shared by the pairwise CLI and HTTP
// server.
//
// Sources are layered in a fixed order: built-in defaults, an optional YAML
// file, optional dotenv files, then PAIRWISE_* process environment variables.
// The merged value is validated once at the end.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/pairwise/candidate"
	"github.com/katalvlaran/pairwise/generate"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates an unreadable or out-of-range configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Generation mirrors generate.Options in a serializable form.
type Generation struct {
	Strategy              string        `yaml:"strategy" validate:"strategy"`
	BatchSize             int           `yaml:"batchSize" validate:"gte=1"`
	RoundBudgetMultiplier int           `yaml:"roundBudgetMultiplier" validate:"gte=1"`
	StagnationThreshold   float64       `yaml:"stagnationThreshold" validate:"gte=0,lte=1"`
	CheckpointInterval    int           `yaml:"checkpointInterval" validate:"gte=0"`
	MaxRestarts           int           `yaml:"maxRestarts" validate:"gte=0"`
	Seed                  int64         `yaml:"seed"`
	Timeout               time.Duration `yaml:"timeout" validate:"gte=0"` // 0 = no deadline
}

// Server configures the HTTP surface.
type Server struct {
	Addr           string        `yaml:"addr" validate:"required"`
	RequestTimeout time.Duration `yaml:"requestTimeout" validate:"gt=0"`
	MaxBodyBytes   int64         `yaml:"maxBodyBytes" validate:"gt=0"`
}

// Logging selects the slog handler.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Config is the complete configuration.
type Config struct {
	Generation Generation `yaml:"generation"`
	Server     Server     `yaml:"server"`
	Logging    Logging    `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := generate.DefaultOptions()
	return Config{
		Generation: Generation{
			Strategy:              o.Strategy.String(),
			BatchSize:             o.BatchSize,
			RoundBudgetMultiplier: o.RoundBudgetMultiplier,
			StagnationThreshold:   o.StagnationThreshold,
			CheckpointInterval:    o.CheckpointInterval,
			MaxRestarts:           o.MaxRestarts,
		},
		Server: Server{
			Addr:           ":8080",
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty), the given dotenv files (missing ones are skipped) and the process
// environment, in that order.
func Load(path string, dotenv ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	env, err := readDotenv(dotenv)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(lookupWith(env)); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("strategy", validateStrategy); err != nil {
		panic(err)
	}
	return v
}

func validateStrategy(fl validator.FieldLevel) bool {
	_, err := candidate.ParseStrategy(fl.Field().String())
	return err == nil
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the generation section into generate.Options.
func (c Config) Options() (generate.Options, error) {
	s, err := candidate.ParseStrategy(c.Generation.Strategy)
	if err != nil {
		return generate.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	g := c.Generation
	return generate.Options{
		Strategy:              s,
		BatchSize:             g.BatchSize,
		RoundBudgetMultiplier: g.RoundBudgetMultiplier,
		StagnationThreshold:   g.StagnationThreshold,
		CheckpointInterval:    g.CheckpointInterval,
		MaxRestarts:           g.MaxRestarts,
		Seed:                  g.Seed,
	}, nil
}

// SlogLevel returns the slog level named by Level.
func (l Logging) SlogLevel() slog.Level {
	switch l.Level {
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

// NewLogger builds a text or JSON slog logger writing to w.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
