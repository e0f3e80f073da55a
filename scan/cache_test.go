package scan_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/omarluq/autobind/catalog"
	"github.com/omarluq/autobind/marker"
	"github.com/omarluq/autobind/scan"
)

func TestCache_ComputesOnce(t *testing.T) {
	t.Parallel()

	c := scan.NewCache()
	var calls atomic.Int32

	compute := func(catalog.Module) (scan.Result, error) {
		calls.Add(1)
		return scan.Result{Marked: []scan.MarkedType{{Type: marker.TypeOf[alpha]()}}}, nil
	}

	for range 3 {
		res, err := c.GetOrCompute("m", compute)
		if err != nil {
			t.Fatalf("GetOrCompute failed: %v", err)
		}
		if len(res.Marked) != 1 {
			t.Fatalf("got %d marked types, want 1", len(res.Marked))
		}
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("compute ran %d times, want 1", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_ConcurrentFirstAccessSingleFlight(t *testing.T) {
	t.Parallel()

	c := scan.NewCache()
	var calls atomic.Int32

	compute := func(catalog.Module) (scan.Result, error) {
		calls.Add(1)
		return scan.Result{Marked: []scan.MarkedType{{Type: marker.TypeOf[beta]()}}}, nil
	}

	const workers = 32

	var (
		start sync.WaitGroup
		done  sync.WaitGroup
	)
	start.Add(1)
	results := make([]scan.Result, workers)
	errs := make([]error, workers)

	for n := range workers {
		done.Add(1)
		go func() {
			defer done.Done()
			start.Wait()
			results[n], errs[n] = c.GetOrCompute("m", compute)
		}()
	}
	start.Done()
	done.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("compute ran %d times under concurrent access, want 1", got)
	}
	for n := range workers {
		if errs[n] != nil {
			t.Fatalf("worker %d got error: %v", n, errs[n])
		}
		if len(results[n].Marked) != 1 || results[n].Marked[0].Type != marker.TypeOf[beta]() {
			t.Fatalf("worker %d observed a different result: %v", n, results[n])
		}
	}
}

func TestCache_ErrorsNotMemoized(t *testing.T) {
	t.Parallel()

	c := scan.NewCache()
	var calls atomic.Int32
	boom := errors.New("enumeration failed")

	failing := func(catalog.Module) (scan.Result, error) {
		calls.Add(1)
		return scan.Result{}, boom
	}

	if _, err := c.GetOrCompute("m", failing); !errors.Is(err, boom) {
		t.Fatalf("GetOrCompute returned %v, want the compute error", err)
	}
	if c.Len() != 0 {
		t.Fatalf("failed computation must not be cached, Len() = %d", c.Len())
	}

	// A later call retries.
	if _, err := c.GetOrCompute("m", failing); !errors.Is(err, boom) {
		t.Fatalf("retry returned %v, want the compute error", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("compute ran %d times, want 2 (no error memoization)", got)
	}
}

func TestCache_IndependentKeys(t *testing.T) {
	t.Parallel()

	c := scan.NewCache()
	var calls atomic.Int32

	compute := func(catalog.Module) (scan.Result, error) {
		calls.Add(1)
		return scan.Result{}, nil
	}

	if _, err := c.GetOrCompute("a", compute); err != nil {
		t.Fatalf("GetOrCompute(a) failed: %v", err)
	}
	if _, err := c.GetOrCompute("b", compute); err != nil {
		t.Fatalf("GetOrCompute(b) failed: %v", err)
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("compute ran %d times, want once per key", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}
