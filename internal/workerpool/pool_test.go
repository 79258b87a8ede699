package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewDefaultsToNumCPU(t *testing.T) {
	p := New(0)
	if p.Workers() != runtime.NumCPU() {
		t.Errorf("Workers() = %d, want %d", p.Workers(), runtime.NumCPU())
	}
}

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name       string
		workers    int
		start, end int
	}{
		{"more items than workers", 4, 0, 1000},
		{"fewer items than workers", 8, 0, 3},
		{"offset range", 3, 10, 17},
		{"single worker", 1, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.workers)
			p.Start()
			defer p.Stop()

			hits := make([]int32, tt.end)
			p.ParallelFor(tt.start, tt.end, func(i int) {
				atomic.AddInt32(&hits[i], 1)
			})

			for i := 0; i < tt.end; i++ {
				want := int32(0)
				if i >= tt.start {
					want = 1
				}
				if hits[i] != want {
					t.Fatalf("index %d visited %d times, want %d", i, hits[i], want)
				}
			}
		})
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	p := New(2)
	p.Start()
	defer p.Stop()

	called := false
	p.ParallelFor(5, 5, func(int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestSubmitAndWait(t *testing.T) {
	p := New(2)
	p.Start()
	defer p.Stop()

	var n atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Wait()
	if n.Load() != 100 {
		t.Errorf("ran %d jobs, want 100", n.Load())
	}
}

func TestStopTwice(t *testing.T) {
	p := New(1)
	p.Start()
	p.Stop()
	p.Stop()
}
