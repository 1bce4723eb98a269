package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/commitly/web/internal/app"
	"github.com/commitly/web/internal/domain"
)

func TestDashboardPage_DefaultsToWeekly(t *testing.T) {
	t.Parallel()

	var gotPeriod string
	backend := &fakeBackend{
		dashboard: func(_ context.Context, _ domain.Identity, period string) (*domain.Dashboard, error) {
			gotPeriod = period
			return &domain.Dashboard{Period: period}, nil
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	page, err := svc.DashboardPage(context.Background(), testIdentity, "")
	if err != nil {
		t.Fatalf("DashboardPage() error = %v", err)
	}

	if gotPeriod != domain.PeriodWeekly {
		t.Errorf("backend period = %q, want weekly default", gotPeriod)
	}
	if page.Dashboard == nil {
		t.Error("Dashboard = nil")
	}
}

func TestDashboardPage_InvalidPeriodIsValidationError(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		dashboard: func(context.Context, domain.Identity, string) (*domain.Dashboard, error) {
			t.Fatal("backend should not be called for an invalid period")
			return nil, nil
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	_, err := svc.DashboardPage(context.Background(), testIdentity, "yearly")

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As failed to extract *ValidationError")
	}
	if verr.Fields["period"] == "" {
		t.Error("want a field-level message for period")
	}
}

func TestDashboardPage_NoCirclesSkipsRecentSignals(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		listCircles: func(context.Context, domain.Identity) (*domain.CircleList, error) {
			return &domain.CircleList{}, nil
		},
		recentSignals: func(context.Context, domain.Identity) ([]domain.Signal, error) {
			t.Error("RecentSignals called with no circles, want skipped")
			return nil, nil
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	page, err := svc.DashboardPage(context.Background(), testIdentity, "weekly")
	if err != nil {
		t.Fatalf("DashboardPage() error = %v", err)
	}

	if len(page.RecentSignals) != 0 {
		t.Errorf("RecentSignals = %+v, want empty", page.RecentSignals)
	}
	if page.HasCircles {
		t.Error("HasCircles = true, want false with no circles")
	}
}

func TestDashboardPage_WithCirclesFetchesRecentSignals(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		listCircles: func(context.Context, domain.Identity) (*domain.CircleList, error) {
			return &domain.CircleList{Circles: []domain.Circle{{ID: 1}}}, nil
		},
		recentSignals: func(context.Context, domain.Identity) ([]domain.Signal, error) {
			return []domain.Signal{{Type: domain.SignalSameHour}}, nil
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	page, err := svc.DashboardPage(context.Background(), testIdentity, "monthly")
	if err != nil {
		t.Fatalf("DashboardPage() error = %v", err)
	}

	if len(page.RecentSignals) != 1 {
		t.Errorf("RecentSignals = %+v, want one signal", page.RecentSignals)
	}
	if !page.HasCircles {
		t.Error("HasCircles = false, want true")
	}
}

func TestDashboardPage_HasCirclesWithoutSignals(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		listCircles: func(context.Context, domain.Identity) (*domain.CircleList, error) {
			return &domain.CircleList{Circles: []domain.Circle{{ID: 1}}}, nil
		},
		recentSignals: func(context.Context, domain.Identity) ([]domain.Signal, error) {
			return []domain.Signal{}, nil
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	page, err := svc.DashboardPage(context.Background(), testIdentity, "weekly")
	if err != nil {
		t.Fatalf("DashboardPage() error = %v", err)
	}

	if !page.HasCircles {
		t.Error("HasCircles = false, want true even with no signals yet")
	}
	if len(page.RecentSignals) != 0 {
		t.Errorf("RecentSignals = %+v, want empty", page.RecentSignals)
	}
}

func TestDashboardPage_DashboardFailureKeepsPage(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		dashboard: func(context.Context, domain.Identity, string) (*domain.Dashboard, error) {
			return nil, &domain.BackendError{Message: "dashboard unavailable", Status: 500}
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	page, err := svc.DashboardPage(context.Background(), testIdentity, "weekly")
	if err != nil {
		t.Fatalf("DashboardPage() error = %v, want nil (failure folded into page)", err)
	}

	if page.Dashboard != nil {
		t.Errorf("Dashboard = %+v, want nil", page.Dashboard)
	}
	if page.ErrorMessage != "dashboard unavailable" {
		t.Errorf("ErrorMessage = %q", page.ErrorMessage)
	}
}

func TestDashboardPage_RecentSignalsFailureSetsMessage(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		listCircles: func(context.Context, domain.Identity) (*domain.CircleList, error) {
			return &domain.CircleList{Circles: []domain.Circle{{ID: 1}}}, nil
		},
		recentSignals: func(context.Context, domain.Identity) ([]domain.Signal, error) {
			return nil, &domain.BackendError{Message: "signals unavailable", Status: 500}
		},
	}

	svc := app.NewDashboardService(backend, testLogger())
	page, err := svc.DashboardPage(context.Background(), testIdentity, "weekly")
	if err != nil {
		t.Fatalf("DashboardPage() error = %v", err)
	}

	if page.ErrorMessage != "signals unavailable" {
		t.Errorf("ErrorMessage = %q", page.ErrorMessage)
	}
	if page.Dashboard == nil {
		t.Error("Dashboard = nil, want the successful section kept")
	}
}
