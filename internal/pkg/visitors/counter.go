package visitors

import (
	"context"
	"sync/atomic"
)

// Counter tracks how many requests the service has seen. Implementations
// must be safe for concurrent use; increments from parallel requests must
// not be lost.
type Counter interface {
	// Hit records one inbound request.
	Hit(ctx context.Context) error

	// Count returns the current visitor count.
	Count(ctx context.Context) (int64, error)
}

// MemoryCounter is the default in-process backend. The count does not
// survive restarts.
type MemoryCounter struct {
	n atomic.Int64
}

// NewMemoryCounter creates an in-memory counter starting at zero.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

// Hit atomically increments the counter.
func (c *MemoryCounter) Hit(_ context.Context) error {
	c.n.Add(1)
	return nil
}

// Count returns the current value.
func (c *MemoryCounter) Count(_ context.Context) (int64, error) {
	return c.n.Load(), nil
}
