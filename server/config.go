package server

import (
	"errors"
	"os"

	"github.com/katalvlaran/pathcost/sweep"
)

var (
	// ErrBadConfig indicates an unusable server configuration.
	ErrBadConfig = errors.New("server: invalid configuration")
	// ErrBadMaxBody indicates a non-positive MaxBodyBytes.
	ErrBadMaxBody = errors.New("server: MaxBodyBytes must be positive")
)

// Config holds the server settings.
type Config struct {
	Addr         string // listen address, e.g. ":8080"
	Threshold    int    // success threshold for every solve
	Truncate     bool   // cut failing paths before the overrunning step
	Workers      int    // goroutines per fold
	MaxBodyBytes int64  // request body and websocket message limit
}

// DefaultConfig returns Addr=":8080", Threshold=sweep.DefaultThreshold,
// Truncate=true, Workers=1, MaxBodyBytes=1 MiB.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		Threshold:    sweep.DefaultThreshold,
		Truncate:     true,
		Workers:      1,
		MaxBodyBytes: 1 << 20,
	}
}

// WithEnv overrides Addr from the PORT environment variable when it is set.
func (c Config) WithEnv() Config {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}

	return c
}

// Validate reports ErrBadConfig for non-positive workers or body limit.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.Join(ErrBadConfig, sweep.ErrBadWorkers)
	}
	if c.MaxBodyBytes <= 0 {
		return errors.Join(ErrBadConfig, ErrBadMaxBody)
	}

	return nil
}

// options translates the config into sweep options.
func (c Config) options() []sweep.Option {
	opts := []sweep.Option{sweep.WithThreshold(c.Threshold), sweep.WithWorkers(c.Workers)}
	if !c.Truncate {
		opts = append(opts, sweep.WithoutTruncation())
	}

	return opts
}
