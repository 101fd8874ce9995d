package repository

import (
	"context"
	"log/slog"

	"fairway/internal/infra"
	"fairway/internal/infra/db"
	"fairway/internal/usecase/shared"
)

// RequestLogRepository persists one row per upstream provider call, success
// or failure, for audit and provider-health debugging.
type RequestLogRepository struct {
	logger *slog.Logger
}

func NewRequestLogRepository(logger *slog.Logger) *RequestLogRepository {
	return &RequestLogRepository{logger: logger}
}

var _ shared.RequestLogRepository = (*RequestLogRepository)(nil)

func (r *RequestLogRepository) Record(ctx context.Context, tx db.DBTX, entry shared.RequestLogEntry) error {
	const query = `
		INSERT INTO request_logs (
			datetime, course, provider, endpoint,
			response, error, is_error, status_code, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var course *string
	if entry.Course != "" {
		course = &entry.Course
	}

	_, err := tx.Exec(ctx, query,
		entry.At, course, entry.Provider, entry.Endpoint,
		entry.Response, entry.Error, entry.IsError, entry.StatusCode, entry.DurationMS,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to record provider request", err)
	}
	return nil
}
