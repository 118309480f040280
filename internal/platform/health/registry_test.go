package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/api-access-service/internal/platform/health"
	"github.com/jsamuelsen11/api-access-service/mocks"
)

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

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("memory")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("sqlite")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["memory"] != nil {
		t.Errorf("memory check = %v, want nil", results["memory"])
	}
	if results["sqlite"] != nil {
		t.Errorf("sqlite check = %v, want nil", results["sqlite"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("memory")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("sqlite")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["memory"] != nil {
		t.Errorf("memory check = %v, want nil", results["memory"])
	}
	if results["sqlite"] == nil {
		t.Fatal("sqlite check = nil, want error")
	}
	if results["sqlite"].Error() != "connection refused" {
		t.Errorf("sqlite check = %q, want %q", results["sqlite"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("sqlite")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["sqlite"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["sqlite"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("memory")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("memory")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["memory"]
	if !ok {
		t.Fatal(`expected result for key "memory", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("memory check = %v, want %v (from last registered checker)", got, secondErr)
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
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
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

func TestReport_SortedAndAggregated(t *testing.T) {
	t.Parallel()

	sqliteChecker := mocks.NewMockHealthChecker(t)
	sqliteChecker.EXPECT().Name().Return("sqlite")
	sqliteChecker.EXPECT().HealthCheck(mock.Anything).Return(errors.New("database is locked"))

	memoryChecker := mocks.NewMockHealthChecker(t)
	memoryChecker.EXPECT().Name().Return("memory")
	memoryChecker.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(sqliteChecker)
	r.Register(memoryChecker)

	rep := r.Report(context.Background())

	if rep.Healthy {
		t.Error("Healthy = true, want false when one component fails")
	}
	if len(rep.Components) != 2 {
		t.Fatalf("len(Components) = %d, want 2", len(rep.Components))
	}
	if rep.Components[0].Name != "memory" || rep.Components[0].Error != "" {
		t.Errorf("Components[0] = %+v, want healthy memory", rep.Components[0])
	}
	if rep.Components[1].Name != "sqlite" || rep.Components[1].Error != "database is locked" {
		t.Errorf("Components[1] = %+v, want failing sqlite", rep.Components[1])
	}
}

func TestReport_EmptyIsHealthy(t *testing.T) {
	t.Parallel()

	rep := health.New().Report(context.Background())
	if !rep.Healthy {
		t.Error("Healthy = false, want true for empty registry")
	}
	if len(rep.Components) != 0 {
		t.Errorf("len(Components) = %d, want 0", len(rep.Components))
	}
}
