package queries

import (
	"context"
	"time"

	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/errs"
)

// Read models (DTO for read side)
type SlotView struct {
	ID               int64      `json:"id"`
	CourseName       string     `json:"course_name"`
	Date             string     `json:"date"`
	StartTime        string     `json:"start_time"`
	PlayersAvailable int32      `json:"players_available"`
	Holes            []int32    `json:"holes"`
	BookingURL       *string    `json:"booking_url"`
	Provider         *string    `json:"provider"`
	GreenFee         *float64   `json:"green_fee"`
	HalfCart         *float64   `json:"half_cart"`
	Price            *float64   `json:"price"`
	Subtotal         *float64   `json:"subtotal"`
	Restrictions     []string   `json:"restrictions"`
	SpecialOffer     bool       `json:"special_offer"`
	IsAvailable      bool       `json:"is_available"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	LastSeenAt       *time.Time `json:"last_seen_at"`
}

type CourseRequestView struct {
	ID            int64      `json:"id"`
	CourseName    string     `json:"course_name"`
	PhoneNumber   string     `json:"phone_number"`
	AgreeToNotify bool       `json:"agree_to_notify"`
	IsAdded       bool       `json:"is_added"`
	CreatedAt     time.Time  `json:"datetime_created"`
	AddedToSiteAt *time.Time `json:"datetime_added_to_site"`
	CourseID      *string    `json:"course_id"`
}

type BugReportInput struct {
	Description string
	Timestamp   *time.Time
	URL         *string
	UserAgent   *string
	IPAddress   string
}

// SlotFilter is what the read store ultimately applies. Today/NowTime carry
// the reference-timezone wall clock computed by the usecase; the store never
// consults the database clock for slot visibility.
type SlotFilter struct {
	CourseName    *string
	Date          *string
	AvailableOnly bool
	Today         string // YYYY-MM-DD in the reference timezone
	NowTime       string // HH:MM in the reference timezone
}

type SlotReadStore interface {
	Search(ctx context.Context, filter SlotFilter) ([]*SlotView, error)
	DistinctAvailableDates(ctx context.Context, fromDate string) ([]string, error)
}

type AvailabilityQueries interface {
	// Search returns cached slots ordered by date then start time. Slots on
	// today's date are cut off at the current time in the reference
	// timezone; past dates never appear.
	Search(ctx context.Context, courseName, date *string, availableOnly bool) ([]*SlotView, error)
	// DistinctAvailableDates returns the sorted dates (today or later) that
	// still have at least one available slot.
	DistinctAvailableDates(ctx context.Context) ([]string, error)
}

type availabilityQueriesImpl struct {
	store SlotReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewAvailabilityQueries(store SlotReadStore, clk clock.Clock, timezone string) (AvailabilityQueries, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownReferenceTZ)
	}
	return &availabilityQueriesImpl{store: store, clock: clk, loc: loc}, nil
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, courseName, date *string, availableOnly bool) ([]*SlotView, error) {
	now := q.clock.Now().In(q.loc)
	filter := SlotFilter{
		CourseName:    courseName,
		Date:          date,
		AvailableOnly: availableOnly,
		Today:         now.Format("2006-01-02"),
		NowTime:       now.Format("15:04"),
	}
	return q.store.Search(ctx, filter)
}

func (q *availabilityQueriesImpl) DistinctAvailableDates(ctx context.Context) ([]string, error) {
	today := q.clock.Now().In(q.loc).Format("2006-01-02")
	return q.store.DistinctAvailableDates(ctx, today)
}
