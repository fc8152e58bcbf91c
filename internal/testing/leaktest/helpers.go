package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Settle timing for goroutine counts
const (
	settleInterval = 10 * time.Millisecond
	settleTimeout  = 500 * time.Millisecond
)

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check verifies that the goroutine count returns to within tolerance of the baseline.
// It polls until settleTimeout so exiting goroutines get a chance to finish.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := waitFor(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running or the timeout expires
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current := waitFor(target, timeout); current > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func waitFor(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= target || time.Now().After(deadline) {
			return current
		}
		time.Sleep(settleInterval)
	}
}
