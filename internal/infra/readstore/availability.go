package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"fairway/internal/infra"
	"fairway/internal/infra/db"
	"fairway/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAvailabilityReadStore(dbtx db.DBTX, logger *slog.Logger) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx, logger: logger}
}

var _ queries.SlotReadStore = (*AvailabilityReadStore)(nil)

// Search applies the time-relative visibility rule in SQL: future dates pass
// unconditionally, today's slots only at or after the reference wall clock
// and only while still available, past dates never.
func (s *AvailabilityReadStore) Search(ctx context.Context, filter queries.SlotFilter) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, course_name, date, start_time, players_available,
		       holes, booking_url, provider,
		       green_fee, half_cart, price, subtotal,
		       restrictions, special_offer, is_available,
		       created_at, updated_at, last_seen_at
		FROM tee_time_cache
		WHERE ($1::text IS NULL OR course_name = $1)
		  AND ($2::text IS NULL OR date = $2)
		  AND (date > $3 OR (date = $3 AND start_time >= $4 AND is_available))
		  AND (NOT $5::boolean OR is_available)
		ORDER BY date ASC, start_time ASC, id ASC`

	rows, err := s.db.Query(ctx, query,
		filter.CourseName, filter.Date, filter.Today, filter.NowTime, filter.AvailableOnly)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to search availability slots", err)
	}
	defer rows.Close()

	var out []*queries.SlotView
	for rows.Next() {
		var (
			v                queries.SlotView
			holesJSON        []byte
			restrictionsJSON []byte
		)
		err := rows.Scan(
			&v.ID, &v.CourseName, &v.Date, &v.StartTime, &v.PlayersAvailable,
			&holesJSON, &v.BookingURL, &v.Provider,
			&v.GreenFee, &v.HalfCart, &v.Price, &v.Subtotal,
			&restrictionsJSON, &v.SpecialOffer, &v.IsAvailable,
			&v.CreatedAt, &v.UpdatedAt, &v.LastSeenAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan availability slot", err)
		}
		if len(holesJSON) > 0 {
			if err := json.Unmarshal(holesJSON, &v.Holes); err != nil {
				return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to decode holes", err)
			}
		}
		if len(restrictionsJSON) > 0 {
			if err := json.Unmarshal(restrictionsJSON, &v.Restrictions); err != nil {
				return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to decode restrictions", err)
			}
		}
		if v.Restrictions == nil {
			v.Restrictions = []string{}
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate availability slots", err)
	}
	return out, nil
}

func (s *AvailabilityReadStore) DistinctAvailableDates(ctx context.Context, fromDate string) ([]string, error) {
	const query = `
		SELECT DISTINCT date
		FROM tee_time_cache
		WHERE is_available AND date >= $1
		ORDER BY date ASC`

	rows, err := s.db.Query(ctx, query, fromDate)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query distinct dates", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan date", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate distinct dates", err)
	}
	return dates, nil
}
