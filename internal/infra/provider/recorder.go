package provider

import (
	"context"
	"log/slog"

	"fairway/internal/infra/db"
	"fairway/internal/usecase/shared"
)

// DBRecorder writes the provider audit trail through the request log
// repository. Failures are logged and swallowed: losing an audit row must
// never fail a scrape.
type DBRecorder struct {
	uow    shared.UnitOfWork
	repo   shared.RequestLogRepository
	logger *slog.Logger
}

func NewDBRecorder(uow shared.UnitOfWork, repo shared.RequestLogRepository, logger *slog.Logger) *DBRecorder {
	return &DBRecorder{uow: uow, repo: repo, logger: logger}
}

func (r *DBRecorder) Record(ctx context.Context, entry shared.RequestLogEntry) {
	err := r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return r.repo.Record(ctx, dbtx, entry)
	})
	if err != nil {
		r.logger.Warn("failed to record provider request",
			"provider", entry.Provider,
			"endpoint", entry.Endpoint,
			"error", err.Error())
	}
}
