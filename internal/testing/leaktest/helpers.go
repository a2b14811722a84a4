// Package leaktest checks that background workers release their goroutines
// once they are stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Verify waits for goroutines to wind down
const DefaultSettle = 500 * time.Millisecond

// GoroutineChecker records the goroutine count at creation
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Verify polls until the goroutine count is back within tolerance of the
// snapshot, failing the test when settle elapses first
func (g *GoroutineChecker) Verify(tolerance int, settle time.Duration) {
	g.t.Helper()

	deadline := time.Now().Add(settle)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckStopped runs fn, which must start and stop its workers, and fails
// the test if any goroutine it started is still running afterwards
func CheckStopped(t *testing.T, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Verify(0, DefaultSettle)
}
