package shared

import (
	"context"
	"time"

	"fairway/internal/domain/teetime"
	"fairway/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	DB() db.DBTX
}

// ScrapeBatch is one adapter harvest handed to the reconciliation engine.
// Provider, when set, overrides the per-record provider tag.
type ScrapeBatch struct {
	Records  []teetime.NormalizedTeeTime
	Provider string
}

// SlotRepository owns all writes to the availability store. Reads for the
// query surface live in the read store, not here.
type SlotRepository interface {
	// LockCourseDate serializes reconciliation for one (course, date) pair
	// for the lifetime of the surrounding transaction.
	LockCourseDate(ctx context.Context, tx db.DBTX, courseName, date string) error
	// MarkCourseDateUnavailable flips every slot for the pair to unavailable,
	// bumping updated_at. Rows are kept for audit history.
	MarkCourseDateUnavailable(ctx context.Context, tx db.DBTX, courseName, date string, now time.Time) (int64, error)
	// Upsert inserts a slot by its identity tuple or refreshes the existing
	// row's mutable fields, last_seen_at and updated_at.
	Upsert(ctx context.Context, tx db.DBTX, record teetime.NormalizedTeeTime, now time.Time) error
	// DeleteDatedBefore removes every slot whose date is strictly before
	// cutoff (YYYY-MM-DD).
	DeleteDatedBefore(ctx context.Context, tx db.DBTX, cutoff string) (int64, error)
}

type RequestLogRepository interface {
	Record(ctx context.Context, tx db.DBTX, entry RequestLogEntry) error
}

type RequestLogEntry struct {
	Provider   string
	Endpoint   string
	Course     string
	StatusCode *int32
	DurationMS *int64
	Error      *string
	IsError    bool
	Response   []byte
	At         time.Time
}
