package epoch_test

import (
	"sync"
	"testing"

	"github.com/commitly/web/internal/app/epoch"
)

func TestRegistry_StartsAtZero(t *testing.T) {
	t.Parallel()

	r := epoch.NewRegistry()

	if got := r.Current(epoch.PageCircles); got != 0 {
		t.Errorf("Current(circles) = %d, want 0", got)
	}
}

func TestRegistry_BumpIncrements(t *testing.T) {
	t.Parallel()

	r := epoch.NewRegistry()

	r.Bump(epoch.PageCircles)
	r.Bump(epoch.PageCircles)

	if got := r.Current(epoch.PageCircles); got != 2 {
		t.Errorf("Current(circles) = %d, want 2", got)
	}
}

func TestRegistry_BumpIsPerPage(t *testing.T) {
	t.Parallel()

	r := epoch.NewRegistry()

	r.Bump(epoch.PageRivals)

	if got := r.Current(epoch.PageRivals); got != 1 {
		t.Errorf("Current(rivals) = %d, want 1", got)
	}
	if got := r.Current(epoch.PageDashboard); got != 0 {
		t.Errorf("Current(dashboard) = %d, want 0 (untouched page)", got)
	}
}

func TestRegistry_BumpMultiplePages(t *testing.T) {
	t.Parallel()

	r := epoch.NewRegistry()

	r.Bump(epoch.PageCircles, epoch.PageDashboard)

	if got := r.Current(epoch.PageCircles); got != 1 {
		t.Errorf("Current(circles) = %d, want 1", got)
	}
	if got := r.Current(epoch.PageDashboard); got != 1 {
		t.Errorf("Current(dashboard) = %d, want 1", got)
	}
}

func TestRegistry_ConcurrentBumps(t *testing.T) {
	t.Parallel()

	r := epoch.NewRegistry()

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Bump(epoch.PageNotifications)
		}()
	}
	wg.Wait()

	if got := r.Current(epoch.PageNotifications); got != goroutines {
		t.Errorf("Current(notifications) = %d, want %d", got, goroutines)
	}
}
