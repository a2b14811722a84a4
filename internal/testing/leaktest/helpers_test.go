package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestCheckStopped_JoinedGoroutine(t *testing.T) {
	CheckStopped(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(5 * time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Verify(1, 50*time.Millisecond)
}

// recordingTB captures failures instead of failing the enclosing test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)
	go func() { <-done }()
	checker.Verify(0, 30*time.Millisecond)

	if !rec.failed {
		t.Error("expected the leaked goroutine to be reported")
	}
}
