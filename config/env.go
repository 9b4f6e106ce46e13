package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PAIRWISE_"

// readDotenv merges the given dotenv files; later files win. Missing files
// are skipped.
func readDotenv(files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: dotenv %s: %v", ErrInvalidConfig, f, err)
		}
		for k, v := range vars {
			merged[k] = v
		}
	}
	return merged, nil
}

// lookupWith resolves a key from the process environment first, then from
// the dotenv values.
func lookupWith(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	g := &c.Generation
	steps := []struct {
		key string
		set func(string) error
	}{
		{"STRATEGY", setString(&g.Strategy)},
		{"BATCH_SIZE", setInt(&g.BatchSize)},
		{"ROUND_BUDGET_MULTIPLIER", setInt(&g.RoundBudgetMultiplier)},
		{"STAGNATION_THRESHOLD", setFloat(&g.StagnationThreshold)},
		{"CHECKPOINT_INTERVAL", setInt(&g.CheckpointInterval)},
		{"MAX_RESTARTS", setInt(&g.MaxRestarts)},
		{"SEED", setInt64(&g.Seed)},
		{"TIMEOUT", setDuration(&g.Timeout)},
		{"ADDR", setString(&c.Server.Addr)},
		{"REQUEST_TIMEOUT", setDuration(&c.Server.RequestTimeout)},
		{"MAX_BODY_BYTES", setInt64(&c.Server.MaxBodyBytes)},
		{"LOG_LEVEL", setString(&c.Logging.Level)},
		{"LOG_FORMAT", setString(&c.Logging.Format)},
	}
	for _, s := range steps {
		key := EnvPrefix + s.key
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if err := s.set(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
	}
	return nil
}

func setString(dst *string) func(string) error {
	return func(v string) error { *dst = v; return nil }
}

func setInt(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func setInt64(dst *int64) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func setFloat(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func setDuration(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}
