// Package config loads simulator settings from defaults, an optional .env
// file, the process environment, and finally CLI flags (highest
// precedence), in that order.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every tunable the CLI and library entry points need.
type Config struct {
	DataPath    string
	Strategy    string
	Iterations  int
	Seed        *int64
	Parallelism int
	Top         int
	Format      string
	LogLevel    string
}

// Load builds a Config from defaults overlaid with .env and then the
// process environment. CLI flags are applied afterward by the caller
// (cmd/wcsim), since flag.Parse must run after this to know the program's
// argv.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataPath:    envStr("WCSIM_DATA", "testdata/tournament.json"),
		Strategy:    envStr("WCSIM_STRATEGY", "composite"),
		Iterations:  envInt("WCSIM_ITERATIONS", 10000),
		Parallelism: envInt("WCSIM_PARALLELISM", 0),
		Top:         envInt("WCSIM_TOP", 10),
		Format:      envStr("WCSIM_FORMAT", "table"),
		LogLevel:    envStr("WCSIM_LOG_LEVEL", "info"),
	}
	if v := os.Getenv("WCSIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &n
		}
	}
	return cfg
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
