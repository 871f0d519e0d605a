package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolCreate(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPoolDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

func TestPoolRun(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		jobs    int
	}{
		{"empty", 4, 0},
		{"single", 4, 1},
		{"fewer jobs than workers", 8, 3},
		{"many small jobs", 4, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers)
			defer pool.Close()

			var counter atomic.Int64
			jobs := make([]func(), tt.jobs)
			for i := range jobs {
				jobs[i] = func() { counter.Add(1) }
			}
			pool.Run(jobs)

			if got := counter.Load(); got != int64(tt.jobs) {
				t.Errorf("counter = %d, want %d", got, tt.jobs)
			}
		})
	}
}

func TestPoolMapKeepsOrder(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	got := Map(pool, 50, func(i int) int { return i * i })
	for i, v := range got {
		if v != i*i {
			t.Fatalf("Map()[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPoolUnevenJobs(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var slow, fast atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		if i%10 == 0 {
			jobs[i] = func() {
				time.Sleep(5 * time.Millisecond)
				slow.Add(1)
			}
		} else {
			jobs[i] = func() { fast.Add(1) }
		}
	}
	pool.Run(jobs)

	if slow.Load() != 10 || fast.Load() != 90 {
		t.Errorf("slow = %d, fast = %d, want 10 and 90", slow.Load(), fast.Load())
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestPoolRunAfterCloseRunsInline(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.Run([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})
	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2", counter.Load())
	}
}

func TestPoolConcurrentRun(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]func(), 50)
			for i := range jobs {
				jobs[i] = func() { counter.Add(1) }
			}
			pool.Run(jobs)
		}()
	}
	wg.Wait()

	if got := counter.Load(); got != 400 {
		t.Errorf("counter = %d, want 400", got)
	}
}

func TestPoolNoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		pool := NewPool(4)
		jobs := make([]func(), 100)
		for i := range jobs {
			jobs[i] = func() {}
		}
		pool.Run(jobs)
		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}
