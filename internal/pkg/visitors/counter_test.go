package visitors

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStartsAtZero(t *testing.T) {
	counter := NewMemoryCounter()

	count, err := counter.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryCounterConcurrentHits(t *testing.T) {
	counter := NewMemoryCounter()
	ctx := context.Background()

	const goroutines = 50
	const hitsPerGoroutine = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < hitsPerGoroutine; j++ {
				_ = counter.Hit(ctx)
			}
		}()
	}
	wg.Wait()

	count, err := counter.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines*hitsPerGoroutine), count)
}
