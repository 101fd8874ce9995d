package repository

import (
	"context"
	"log/slog"
	"time"

	"fairway/internal/infra"
	"fairway/internal/infra/db"
	"fairway/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// BookkeepingRepository covers the two side tables that are not part of the
// availability cache: course requests from visitors and bug reports.
type BookkeepingRepository struct {
	logger *slog.Logger
}

func NewBookkeepingRepository(logger *slog.Logger) *BookkeepingRepository {
	return &BookkeepingRepository{logger: logger}
}

func (r *BookkeepingRepository) CreateCourseRequest(ctx context.Context, tx db.DBTX, courseName, phoneNumber string, agreeToNotify bool, now time.Time) (int64, error) {
	const query = `
		INSERT INTO course_requests (course_name, phone_number, agree_to_notify, is_added, datetime_created)
		VALUES ($1, $2, $3, FALSE, $4)
		RETURNING id`

	var id int64
	if err := tx.QueryRow(ctx, query, courseName, phoneNumber, agreeToNotify, now).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create course request", err)
	}
	return id, nil
}

func (r *BookkeepingRepository) CourseRequestExists(ctx context.Context, tx db.DBTX, courseName, phoneNumber string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM course_requests
			WHERE course_name = $1 AND phone_number = $2
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, courseName, phoneNumber).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check course request", err)
	}
	return exists, nil
}

func (r *BookkeepingRepository) CreateBugReport(ctx context.Context, tx db.DBTX, report queries.BugReportInput, now time.Time) (int64, error) {
	const query = `
		INSERT INTO bug_reports (description, timestamp, date_created, url, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		report.Description, report.Timestamp, now, report.URL, report.UserAgent, report.IPAddress,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, infra.WrapRepoErr(r.logger, infra.KindNotFound, "bug report insert returned no id", err)
		}
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create bug report", err)
	}
	return id, nil
}
