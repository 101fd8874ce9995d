package commands

import (
	"context"
	"log/slog"
	"sort"

	"fairway/internal/domain/teetime"
	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/errs"
	"fairway/internal/pkg/metrics"
	"fairway/internal/usecase/shared"
)

var (
	ErrReconcileFailed = errs.New("reconciliation failed")
)

type ReconcileResult struct {
	Pairs       int
	Invalidated int64
	Upserted    int
	Dropped     int
}

type ReconcileCommands interface {
	// Reconcile folds one scrape batch into the availability store. The
	// whole batch commits or rolls back as one unit; an empty batch is a
	// no-op, never an invalidation.
	Reconcile(ctx context.Context, batch shared.ScrapeBatch) (*ReconcileResult, error)
}

type reconcileUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewReconcileUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ReconcileCommands {
	return &reconcileUseCaseImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

type courseDate struct {
	course string
	date   string
}

func (r *reconcileUseCaseImpl) Reconcile(ctx context.Context, batch shared.ScrapeBatch) (*ReconcileResult, error) {
	result := &ReconcileResult{}

	if len(batch.Records) == 0 {
		// An empty harvest is indistinguishable from an upstream failure,
		// so nothing may be invalidated here.
		return result, nil
	}

	records := make([]teetime.NormalizedTeeTime, 0, len(batch.Records))
	for _, record := range batch.Records {
		if err := record.Validate(); err != nil {
			r.logger.Warn("dropping malformed tee time record",
				"course", record.CourseName,
				"date", record.Date,
				"start_time", record.StartTime,
				"error", err.Error())
			metrics.ReconcileRecordsDropped.Inc()
			result.Dropped++
			continue
		}
		if batch.Provider != "" {
			record.Provider = batch.Provider
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return result, nil
	}

	pairs := distinctCourseDates(records)
	result.Pairs = len(pairs)
	now := r.clock.Now().UTC()

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slots := tx.Slots()

		// Locks are taken in sorted order so overlapping batches cannot
		// deadlock each other.
		for _, pair := range pairs {
			if err := slots.LockCourseDate(ctx, tx.DB(), pair.course, pair.date); err != nil {
				return err
			}
		}

		// Invalidate phase: everything already cached for the touched pairs
		// becomes unavailable until the batch reaffirms it.
		for _, pair := range pairs {
			n, err := slots.MarkCourseDateUnavailable(ctx, tx.DB(), pair.course, pair.date, now)
			if err != nil {
				return err
			}
			result.Invalidated += n
		}

		// Reaffirm phase: batch order is preserved, so a duplicated identity
		// tuple resolves to the later record.
		for _, record := range records {
			if err := slots.Upsert(ctx, tx.DB(), record, now); err != nil {
				return err
			}
			result.Upserted++
		}
		return nil
	})
	if err != nil {
		metrics.ReconcileBatches.WithLabelValues("error").Inc()
		return nil, errs.Mark(err, ErrReconcileFailed)
	}

	metrics.ReconcileBatches.WithLabelValues("success").Inc()
	metrics.ReconcileSlotsUpserted.Add(float64(result.Upserted))
	metrics.ReconcileSlotsInvalidated.Add(float64(result.Invalidated))

	r.logger.Info("reconciled scrape batch",
		"provider", batch.Provider,
		"pairs", result.Pairs,
		"invalidated", result.Invalidated,
		"upserted", result.Upserted,
		"dropped", result.Dropped)

	return result, nil
}

func distinctCourseDates(records []teetime.NormalizedTeeTime) []courseDate {
	seen := make(map[courseDate]struct{}, len(records))
	for _, record := range records {
		seen[courseDate{course: record.CourseName, date: record.Date}] = struct{}{}
	}
	pairs := make([]courseDate, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].course != pairs[j].course {
			return pairs[i].course < pairs[j].course
		}
		return pairs[i].date < pairs[j].date
	})
	return pairs
}
