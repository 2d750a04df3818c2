package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	const items = 1000
	var total int64

	Parallelize(items, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})

	if total != items {
		t.Errorf("covered %d items, want %d", total, items)
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	if called {
		t.Error("fn should not be called for zero items")
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var calls int
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential range = (%d,%d), want (0,10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
