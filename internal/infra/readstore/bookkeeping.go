package readstore

import (
	"context"
	"log/slog"

	"fairway/internal/infra"
	"fairway/internal/infra/db"
	"fairway/internal/usecase/queries"
)

type BookkeepingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookkeepingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookkeepingReadStore {
	return &BookkeepingReadStore{db: dbtx, logger: logger}
}

var _ queries.CourseRequestReadStore = (*BookkeepingReadStore)(nil)

func (s *BookkeepingReadStore) ListCourseRequests(ctx context.Context) ([]*queries.CourseRequestView, error) {
	const query = `
		SELECT id, course_name, phone_number, agree_to_notify, is_added,
		       datetime_created, datetime_added_to_site, course_id
		FROM course_requests
		ORDER BY datetime_created DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list course requests", err)
	}
	defer rows.Close()

	var out []*queries.CourseRequestView
	for rows.Next() {
		var v queries.CourseRequestView
		err := rows.Scan(&v.ID, &v.CourseName, &v.PhoneNumber, &v.AgreeToNotify, &v.IsAdded,
			&v.CreatedAt, &v.AddedToSiteAt, &v.CourseID)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan course request", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate course requests", err)
	}
	return out, nil
}
