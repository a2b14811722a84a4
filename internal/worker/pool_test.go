package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RavenCompanion_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, TestWorkerProcessWaitTime*time.Millisecond, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, TestWorkerProcessWaitTime*time.Millisecond, 5*time.Millisecond)
}

func TestPool_EnqueueFullOrStopped(t *testing.T) {
	pool := NewPool(1, 1)
	// not started, so the single slot stays occupied
	assert.True(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))

	pool.Stop()
	pool.Stop()
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckStopped(t, func() {
		var executed int32
		pool := NewPool(3, TestQueueSize)
		pool.Start()
		pool.Enqueue(&testJob{executed: &executed})
		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&executed) == 1
		}, TestWorkerProcessWaitTime*time.Millisecond, 5*time.Millisecond)
		pool.Stop()
	})
}
