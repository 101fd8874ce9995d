package teetime

import (
	"encoding/json"
	"time"

	"fairway/internal/pkg/errs"
)

// DefaultPlayersAvailable is assumed when a provider reports neither a
// maximum party size nor remaining spots.
const DefaultPlayersAvailable = 4

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// NormalizedTeeTime is the common record shape every provider adapter
// converges on. It lives only for the duration of one scrape cycle; the
// reconciliation engine folds it into the availability store.
type NormalizedTeeTime struct {
	CourseName     string
	Date           string // YYYY-MM-DD, course-local calendar day
	StartTime      string // HH:MM, course-local wall clock, unzoned
	Holes          []int32
	BookingURL     string
	Provider       string
	IsAvailable    bool
	GreenFee       float64
	Price          float64
	HalfCart       *float64
	Subtotal       float64
	SpecialOffer   bool
	Restrictions   []string
	MinPlayers     *int32
	MaxPlayers     *int32
	AvailableSpots *int32
	Raw            json.RawMessage // upstream payload kept for audit
}

// SlotKey is the identity tuple of a persisted availability slot. Two scrapes
// of the same physical tee time must always derive the same key, otherwise
// one slot fragments into several rows.
type SlotKey struct {
	CourseName string
	Date       string
	StartTime  string
	Players    int32
}

// PlayersAvailable derives the party-size component of the identity tuple:
// the provider's max party size, else its remaining-spots count, else 4.
func (t NormalizedTeeTime) PlayersAvailable() int32 {
	if t.MaxPlayers != nil && *t.MaxPlayers > 0 {
		return *t.MaxPlayers
	}
	if t.AvailableSpots != nil && *t.AvailableSpots > 0 {
		return *t.AvailableSpots
	}
	return DefaultPlayersAvailable
}

func (t NormalizedTeeTime) Key() SlotKey {
	return SlotKey{
		CourseName: t.CourseName,
		Date:       t.Date,
		StartTime:  t.StartTime,
		Players:    t.PlayersAvailable(),
	}
}

// Validate rejects records that cannot form a stable identity tuple.
func (t NormalizedTeeTime) Validate() error {
	if t.CourseName == "" {
		return errs.Wrap(errs.ErrInvalidRecord, "missing course name")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return errs.Mark(errs.Wrap(err, "bad date"), errs.ErrInvalidRecord)
	}
	if _, err := time.Parse(TimeLayout, t.StartTime); err != nil {
		return errs.Mark(errs.Wrap(err, "bad start time"), errs.ErrInvalidRecord)
	}
	return nil
}
