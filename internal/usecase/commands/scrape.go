package commands

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
	"fairway/internal/infra/provider"
	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/errs"
	"fairway/internal/pkg/metrics"
	"fairway/internal/usecase/shared"
)

var (
	ErrScrapeCycleFailed = errs.New("scrape cycle failed")
)

type ScrapeResult struct {
	CoursesScraped int
	CoursesFailed  int
	Reconcile      *ReconcileResult
}

type ScrapeCommands interface {
	// RunCycle fetches every course in the catalog over the look-ahead
	// window and folds the harvest into the availability store. One
	// failing course is skipped, never the whole cycle.
	RunCycle(ctx context.Context) (*ScrapeResult, error)
}

type scrapeUseCaseImpl struct {
	adapters    map[string]provider.Adapter
	catalog     course.Catalog
	reconcile   ReconcileCommands
	clock       clock.Clock
	logger      *slog.Logger
	daysAhead   int
	maxInFlight int
}

func NewScrapeUseCase(
	adapters []provider.Adapter,
	catalog course.Catalog,
	reconcile ReconcileCommands,
	clk clock.Clock,
	logger *slog.Logger,
	daysAhead int,
	maxInFlight int,
) ScrapeCommands {
	byProvider := make(map[string]provider.Adapter, len(adapters))
	for _, a := range adapters {
		byProvider[a.Provider()] = a
	}
	if daysAhead < 1 {
		daysAhead = 1
	}
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &scrapeUseCaseImpl{
		adapters:    byProvider,
		catalog:     catalog,
		reconcile:   reconcile,
		clock:       clk,
		logger:      logger,
		daysAhead:   daysAhead,
		maxInFlight: maxInFlight,
	}
}

type courseHarvest struct {
	course  string
	records []teetime.NormalizedTeeTime
	failed  bool
}

func (s *scrapeUseCaseImpl) RunCycle(ctx context.Context) (*ScrapeResult, error) {
	dates := s.windowDates()

	var mu sync.Mutex
	harvests := make(map[string]*courseHarvest, len(s.catalog))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)

	for _, c := range s.catalog {
		adapter, ok := s.adapters[c.Provider]
		if !ok {
			s.logger.Warn("no adapter registered for course",
				"course", c.Name,
				"provider", c.Provider)
			continue
		}
		mu.Lock()
		harvests[c.Name] = &courseHarvest{course: c.Name}
		mu.Unlock()

		for _, date := range dates {
			c, date := c, date
			g.Go(func() error {
				records, err := adapter.Fetch(gctx, c, date)

				mu.Lock()
				defer mu.Unlock()
				h := harvests[c.Name]
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					// One broken upstream must not poison the rest of the
					// cycle. Mark the course failed so its cached slots are
					// left untouched by reconciliation.
					s.logger.Error("course scrape failed",
						"course", c.Name,
						"provider", c.Provider,
						"date", date,
						"upstream", provider.IsUpstream(err),
						"error", err.Error())
					h.failed = true
					return nil
				}
				h.records = append(h.records, records...)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		metrics.ScrapeCycles.WithLabelValues("error").Inc()
		return nil, errs.Mark(err, ErrScrapeCycleFailed)
	}

	result := &ScrapeResult{}
	batch := make([]teetime.NormalizedTeeTime, 0, 256)
	for _, c := range s.catalog {
		h, ok := harvests[c.Name]
		if !ok {
			continue
		}
		if h.failed {
			// Dropping the whole course keeps its pairs out of the
			// invalidate phase entirely.
			result.CoursesFailed++
			continue
		}
		result.CoursesScraped++
		batch = append(batch, h.records...)
	}

	reconciled, err := s.reconcile.Reconcile(ctx, shared.ScrapeBatch{Records: batch})
	if err != nil {
		metrics.ScrapeCycles.WithLabelValues("error").Inc()
		return nil, err
	}
	result.Reconcile = reconciled

	metrics.ScrapeCycles.WithLabelValues("success").Inc()
	s.logger.Info("scrape cycle finished",
		"courses_scraped", result.CoursesScraped,
		"courses_failed", result.CoursesFailed,
		"dates", len(dates),
		"upserted", reconciled.Upserted,
		"invalidated", reconciled.Invalidated)
	return result, nil
}

// windowDates returns today plus the look-ahead days in the store's date
// format.
func (s *scrapeUseCaseImpl) windowDates() []string {
	now := s.clock.Now()
	dates := make([]string, 0, s.daysAhead)
	for i := 0; i < s.daysAhead; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(teetime.DateLayout))
	}
	return dates
}
