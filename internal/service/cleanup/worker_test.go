package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls   atomic.Int32
	maxIdle atomic.Int64
}

func (c *countingSweeper) CleanupIdleSessions(maxIdle time.Duration) int {
	c.calls.Add(1)
	c.maxIdle.Store(int64(maxIdle))
	return 1
}

func TestWorkerSweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	NewWorker(sweeper, 5*time.Millisecond, time.Minute).Start(ctx)
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int32(1), "first sweep runs synchronously")

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(time.Minute), sweeper.maxIdle.Load())

	cancel()
}
