// Package poll implements bounded readiness polling with exponential
// backoff. It replaces fixed sleeps before dependent operations: a wait
// either observes readiness, fails with the observed error, or hits a hard
// deadline surfaced as a distinguishable timeout error.
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

// Config bounds a single wait.
type Config struct {
	// Initial is the delay before the second attempt (the first runs immediately).
	Initial time.Duration
	// Max caps the backoff between attempts.
	Max time.Duration
	// Multiplier grows the delay after each attempt.
	Multiplier float64
	// Timeout is the hard deadline for the whole wait.
	Timeout time.Duration
}

// DefaultConfig returns the standard readiness-wait bounds.
func DefaultConfig() Config {
	return Config{
		Initial:    constants.ProbePollInitialInterval,
		Max:        constants.ProbePollMaxInterval,
		Multiplier: constants.ProbePollMultiplier,
		Timeout:    constants.ProbeTimeout,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Initial <= 0 {
		c.Initial = d.Initial
	}
	if c.Max <= 0 {
		c.Max = d.Max
	}
	if c.Multiplier < 1 {
		c.Multiplier = d.Multiplier
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	return c
}

// Until calls fn until it reports done, fails, or the deadline elapses.
// The first attempt runs immediately; later attempts back off exponentially
// up to cfg.Max. A deadline hit returns an AppError with ErrCodeTimeout so
// callers can tell "still not ready" apart from "broken".
func Until(ctx context.Context, cfg Config, what string, fn func(context.Context) (bool, error)) error {
	cfg = cfg.withDefaults()

	deadline := time.After(cfg.Timeout)
	interval := cfg.Initial
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("while waiting for %s: %w", what, ctx.Err())
		case <-deadline:
			return apperrors.NewTimeoutError(what, cfg.Timeout)
		case <-timer.C:
			done, err := fn(ctx)
			if err != nil {
				return fmt.Errorf("while waiting for %s: %w", what, err)
			}
			if done {
				return nil
			}
			timer.Reset(interval)
			interval = nextInterval(interval, cfg.Max, cfg.Multiplier)
		}
	}
}

func nextInterval(current, maxInterval time.Duration, multiplier float64) time.Duration {
	next := time.Duration(float64(current) * multiplier)
	if next > maxInterval {
		return maxInterval
	}
	return next
}
