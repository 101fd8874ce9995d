//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
	"fairway/internal/infra/provider"
	"fairway/internal/pkg/clock"
	"fairway/internal/usecase/commands"
	"fairway/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	mu       sync.Mutex
	provider string
	slots    map[string][]teetime.NormalizedTeeTime // keyed by course name
	failFor  map[string]bool
	fetched  []string
}

func (a *stubAdapter) Provider() string { return a.provider }

func (a *stubAdapter) Fetch(_ context.Context, c course.Course, date string) ([]teetime.NormalizedTeeTime, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fetched = append(a.fetched, c.Name+"|"+date)
	if a.failFor[c.Name] {
		return nil, &provider.UpstreamError{Provider: a.provider, Status: 503}
	}
	var out []teetime.NormalizedTeeTime
	for _, s := range a.slots[c.Name] {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func testCatalog() course.Catalog {
	return course.Catalog{
		{Name: "Bonneville Golf Course", Provider: course.ProviderChronogolfV2},
		{Name: "Mountain Dell Golf Course", Provider: course.ProviderChronogolfV1},
	}
}

func TestRunCycle_MergesAllCoursesIntoOneBatch(t *testing.T) {
	ctx := context.Background()
	store := newFakeSlotStore()
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

	v2 := &stubAdapter{provider: course.ProviderChronogolfV2, slots: map[string][]teetime.NormalizedTeeTime{
		"Bonneville Golf Course": {
			builder.NewTeeTimeBuilder().WithDate("2026-08-31").Build(),
			builder.NewTeeTimeBuilder().WithDate("2026-09-01").Build(),
		},
	}}
	v1 := &stubAdapter{provider: course.ProviderChronogolfV1, slots: map[string][]teetime.NormalizedTeeTime{
		"Mountain Dell Golf Course": {
			builder.NewTeeTimeBuilder().WithCourse("Mountain Dell Golf Course").WithDate("2026-08-31").Build(),
		},
	}}

	uc := commands.NewScrapeUseCase(
		[]provider.Adapter{v2, v1},
		testCatalog(),
		newReconciler(store, clk),
		clk,
		slog.New(slog.DiscardHandler),
		2, 4,
	)

	result, err := uc.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.CoursesScraped)
	assert.Zero(t, result.CoursesFailed)
	assert.Equal(t, 3, result.Reconcile.Upserted)
	assert.Len(t, store.rows, 3)

	// Each course is fetched for every date in the look-ahead window.
	assert.ElementsMatch(t, []string{
		"Bonneville Golf Course|2026-08-31",
		"Bonneville Golf Course|2026-09-01",
	}, v2.fetched)
}

func TestRunCycle_FailedCourseIsSkippedNotFatal(t *testing.T) {
	ctx := context.Background()
	store := newFakeSlotStore()
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	reconciler := newReconciler(store, clk)

	cached := builder.NewTeeTimeBuilder().WithCourse("Mountain Dell Golf Course").WithDate("2026-08-31").Build()
	require.NoError(t, store.Upsert(ctx, nil, cached, clk.Now()))

	v2 := &stubAdapter{provider: course.ProviderChronogolfV2, slots: map[string][]teetime.NormalizedTeeTime{
		"Bonneville Golf Course": {builder.NewTeeTimeBuilder().WithDate("2026-08-31").Build()},
	}}
	v1 := &stubAdapter{provider: course.ProviderChronogolfV1, failFor: map[string]bool{
		"Mountain Dell Golf Course": true,
	}}

	uc := commands.NewScrapeUseCase(
		[]provider.Adapter{v2, v1},
		testCatalog(),
		reconciler,
		clk,
		slog.New(slog.DiscardHandler),
		1, 4,
	)

	result, err := uc.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CoursesScraped)
	assert.Equal(t, 1, result.CoursesFailed)

	// The failing course's cached slots must not be invalidated.
	assert.True(t, store.rows[cached.Key()].isAvail)
}

func TestRunCycle_UnknownProviderCourseIgnored(t *testing.T) {
	ctx := context.Background()
	store := newFakeSlotStore()
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

	catalog := course.Catalog{{Name: "Phantom Links", Provider: "telegraph"}}
	uc := commands.NewScrapeUseCase(
		nil,
		catalog,
		newReconciler(store, clk),
		clk,
		slog.New(slog.DiscardHandler),
		1, 4,
	)

	result, err := uc.RunCycle(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.CoursesScraped)
	assert.Zero(t, result.CoursesFailed)
	assert.Empty(t, store.rows)
}
