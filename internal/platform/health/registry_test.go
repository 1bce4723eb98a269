package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/commitly/web/internal/platform/health"
)

// fakeChecker is a test double for ports.HealthChecker.
type fakeChecker struct {
	name  string
	check func(ctx context.Context) error
}

func (f *fakeChecker) Name() string { return f.name }

func (f *fakeChecker) HealthCheck(ctx context.Context) error {
	if f.check == nil {
		return nil
	}
	return f.check(ctx)
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(&fakeChecker{name: "session-store"})
	r.Register(&fakeChecker{name: "commitly-api"})

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["session-store"] != nil {
		t.Errorf("session-store check = %v, want nil", results["session-store"])
	}
	if results["commitly-api"] != nil {
		t.Errorf("commitly-api check = %v, want nil", results["commitly-api"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	unhealthyErr := errors.New("connection refused")

	r := health.New()
	r.Register(&fakeChecker{name: "session-store"})
	r.Register(&fakeChecker{
		name:  "commitly-api",
		check: func(context.Context) error { return unhealthyErr },
	})

	results := r.CheckAll(context.Background())

	if results["session-store"] != nil {
		t.Errorf("session-store check = %v, want nil", results["session-store"])
	}
	if results["commitly-api"] == nil {
		t.Fatal("commitly-api check = nil, want error")
	}
	if results["commitly-api"].Error() != "connection refused" {
		t.Errorf("commitly-api check = %q, want %q", results["commitly-api"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := health.New()
	r.Register(&fakeChecker{
		name: "commitly-api",
		check: func(ctx context.Context) error {
			return ctx.Err()
		},
	})

	results := r.CheckAll(ctx)

	if !errors.Is(results["commitly-api"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["commitly-api"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	secondErr := errors.New("second failure")

	r := health.New()
	r.Register(&fakeChecker{name: "session-store"})
	r.Register(&fakeChecker{
		name:  "session-store",
		check: func(context.Context) error { return secondErr },
	})

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["session-store"]
	if !ok {
		t.Fatal(`expected result for key "session-store", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("session-store check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				r.Register(&fakeChecker{name: "checker"})
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
