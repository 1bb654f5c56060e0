package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	executed *int32
	err      error
	block    bool
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	if j.block {
		<-ctx.Done()
	}
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool_RunsJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10, 0)
	pool.Start()

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(context.Background(), job))
	require.NoError(t, pool.Enqueue(context.Background(), &testJob{executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 2 }, time.Second, 5*time.Millisecond)
	pool.Stop()
}

func TestPool_JobTimeout(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1, 20*time.Millisecond)
	pool.Start()
	defer pool.Stop()

	require.True(t, pool.TryEnqueue(&testJob{executed: &executed, block: true}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1, 0)
	pool.Start()

	require.True(t, pool.TryEnqueue(&testJob{executed: &executed, block: true}))
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.ErrorIs(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}), ErrPoolStopped)
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	var executed int32
	// Not started, so nothing drains the queue
	pool := NewPool(1, 1, 0)
	defer pool.Stop()

	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Enqueue(ctx, &testJob{executed: &executed}), context.DeadlineExceeded)
}
