package commands

import (
	"context"
	"log/slog"

	"fairway/internal/infra/db"
	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/errs"
	"fairway/internal/usecase/queries"
	"fairway/internal/usecase/shared"
)

type BookkeepingCommands interface {
	// RequestCourse records a visitor's wish to see a course tracked. The
	// same phone number may not file the same course twice.
	RequestCourse(ctx context.Context, courseName, phoneNumber string, agreeToNotify bool) (int64, error)
	ReportBug(ctx context.Context, report queries.BugReportInput) (int64, error)
}

type bookkeepingUseCaseImpl struct {
	uow    shared.UnitOfWork
	repo   shared.BookkeepingRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookkeepingUseCase(uow shared.UnitOfWork, repo shared.BookkeepingRepository, clk clock.Clock, logger *slog.Logger) BookkeepingCommands {
	return &bookkeepingUseCaseImpl{
		uow:    uow,
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

func (b *bookkeepingUseCaseImpl) RequestCourse(ctx context.Context, courseName, phoneNumber string, agreeToNotify bool) (int64, error) {
	var id int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := b.repo.CourseRequestExists(ctx, tx.DB(), courseName, phoneNumber)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrCourseRequestExists
		}
		id, err = b.repo.CreateCourseRequest(ctx, tx.DB(), courseName, phoneNumber, agreeToNotify, b.clock.Now().UTC())
		return err
	})
	if err != nil {
		return 0, err
	}
	b.logger.Info("course request filed", "course", courseName)
	return id, nil
}

func (b *bookkeepingUseCaseImpl) ReportBug(ctx context.Context, report queries.BugReportInput) (int64, error) {
	var id int64
	err := b.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		id, err = b.repo.CreateBugReport(ctx, dbtx, report, b.clock.Now().UTC())
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
