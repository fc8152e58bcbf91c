package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf calls so failing checks can be asserted on
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	defer close(done)

	checker.Check(1)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(0)
	close(done)

	assert.True(t, rec.failed, "Blocked goroutine should be reported")
}

func TestGoroutineChecker_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(30 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestWaitForGoroutines_Success(t *testing.T) {
	before := runtime.NumGoroutine()

	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	WaitForGoroutines(t, before, time.Second)
}
