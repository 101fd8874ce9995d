package shared

import (
	"context"
	"time"

	"fairway/internal/infra/db"
	"fairway/internal/usecase/queries"
)

type BookkeepingRepository interface {
	CreateCourseRequest(ctx context.Context, tx db.DBTX, courseName, phoneNumber string, agreeToNotify bool, now time.Time) (int64, error)
	CourseRequestExists(ctx context.Context, tx db.DBTX, courseName, phoneNumber string) (bool, error)
	CreateBugReport(ctx context.Context, tx db.DBTX, report queries.BugReportInput, now time.Time) (int64, error)
}
