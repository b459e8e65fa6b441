package verify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
)

// Cleanup is a LIFO stack of release functions for ephemeral resources.
// Register immediately after acquiring a resource; Release always runs
// every function on a fresh context, so a canceled or timed-out suite
// still tears its resources down.
type Cleanup struct {
	mu      sync.Mutex
	names   []string
	funcs   []func(context.Context) error
	release sync.Once
	log     *slog.Logger
}

// NewCleanup returns an empty cleanup stack.
func NewCleanup(log *slog.Logger) *Cleanup {
	return &Cleanup{log: log}
}

// Register pushes a release function. Safe for concurrent use.
func (c *Cleanup) Register(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
	c.funcs = append(c.funcs, fn)
}

// Release runs the registered functions in reverse order. Failures are
// logged and do not stop the remaining releases. Release is idempotent.
func (c *Cleanup) Release() {
	c.release.Do(func() {
		c.mu.Lock()
		names, funcs := c.names, c.funcs
		c.names, c.funcs = nil, nil
		c.mu.Unlock()

		if len(funcs) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), constants.CleanupTimeout)
		defer cancel()

		for i := len(funcs) - 1; i >= 0; i-- {
			if err := funcs[i](ctx); err != nil {
				c.log.Warn("cleanup failed, resource may be left behind",
					"resource", names[i], "error", err)
			} else {
				c.log.Debug("released", "resource", names[i])
			}
		}
	})
}
