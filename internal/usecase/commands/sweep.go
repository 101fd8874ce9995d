package commands

import (
	"context"
	"log/slog"
	"time"

	"fairway/internal/infra/db"
	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/errs"
	"fairway/internal/pkg/metrics"
	"fairway/internal/usecase/shared"
)

type SweepCommands interface {
	// Sweep deletes every slot dated strictly before today minus maxAgeDays,
	// measured in the reference timezone. Safe to run while reconciliation
	// is in flight since reconciliation never writes to past dates.
	Sweep(ctx context.Context, maxAgeDays int) (int64, error)
}

type sweepUseCaseImpl struct {
	uow    shared.UnitOfWork
	slots  shared.SlotRepository
	clock  clock.Clock
	loc    *time.Location
	logger *slog.Logger
}

func NewSweepUseCase(uow shared.UnitOfWork, slots shared.SlotRepository, clk clock.Clock, timezone string, logger *slog.Logger) (SweepCommands, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownReferenceTZ)
	}
	return &sweepUseCaseImpl{
		uow:    uow,
		slots:  slots,
		clock:  clk,
		loc:    loc,
		logger: logger,
	}, nil
}

func (s *sweepUseCaseImpl) Sweep(ctx context.Context, maxAgeDays int) (int64, error) {
	if maxAgeDays < 0 {
		return 0, errs.ErrInvalidRetention
	}

	cutoff := s.clock.Now().In(s.loc).AddDate(0, 0, -maxAgeDays).Format("2006-01-02")

	var deleted int64
	err := s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		n, err := s.slots.DeleteDatedBefore(ctx, dbtx, cutoff)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.SweepDeletedSlots.Add(float64(deleted))
	s.logger.Info("swept expired slots", "cutoff", cutoff, "deleted", deleted)
	return deleted, nil
}
