package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fairway/internal/domain/teetime"
	"fairway/internal/infra"
	"fairway/internal/infra/db"
	"fairway/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

type SlotRepository struct {
	logger *slog.Logger
}

func NewSlotRepository(logger *slog.Logger) *SlotRepository {
	return &SlotRepository{logger: logger}
}

var _ shared.SlotRepository = (*SlotRepository)(nil)

// LockCourseDate takes a transaction-scoped advisory lock keyed on the
// (course, date) pair. Two reconciliations for the same pair queue behind
// each other; different pairs proceed independently.
func (r *SlotRepository) LockCourseDate(ctx context.Context, tx db.DBTX, courseName, date string) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

	if _, err := tx.Exec(ctx, query, courseName+"|"+date); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to lock course/date for reconciliation", err)
	}
	return nil
}

func (r *SlotRepository) MarkCourseDateUnavailable(ctx context.Context, tx db.DBTX, courseName, date string, now time.Time) (int64, error) {
	const query = `
		UPDATE tee_time_cache
		SET is_available = FALSE, updated_at = $3
		WHERE course_name = $1 AND date = $2`

	tag, err := tx.Exec(ctx, query, courseName, date, now)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to invalidate course/date slots", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) Upsert(ctx context.Context, tx db.DBTX, record teetime.NormalizedTeeTime, now time.Time) error {
	const query = `
		INSERT INTO tee_time_cache (
			course_name, date, start_time, players_available,
			holes, booking_url, provider,
			green_fee, half_cart, price, subtotal,
			restrictions, special_offer, is_available,
			created_at, updated_at, last_seen_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14,
			$15, $15, $15
		)
		ON CONFLICT ON CONSTRAINT unique_tee_time_slot DO UPDATE SET
			holes         = EXCLUDED.holes,
			booking_url   = EXCLUDED.booking_url,
			provider      = EXCLUDED.provider,
			green_fee     = EXCLUDED.green_fee,
			half_cart     = EXCLUDED.half_cart,
			price         = EXCLUDED.price,
			subtotal      = EXCLUDED.subtotal,
			restrictions  = EXCLUDED.restrictions,
			special_offer = EXCLUDED.special_offer,
			is_available  = EXCLUDED.is_available,
			updated_at    = EXCLUDED.updated_at,
			last_seen_at  = EXCLUDED.last_seen_at`

	holes, err := json.Marshal(record.Holes)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode holes", err)
	}
	restrictions := record.Restrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	restrictionsJSON, err := json.Marshal(restrictions)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode restrictions", err)
	}

	_, err = tx.Exec(ctx, query,
		record.CourseName, record.Date, record.StartTime, record.PlayersAvailable(),
		holes, record.BookingURL, record.Provider,
		record.GreenFee, record.HalfCart, record.Price, record.Subtotal,
		restrictionsJSON, record.SpecialOffer, record.IsAvailable,
		now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "slot upsert hit an unexpected unique violation", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to upsert availability slot", err)
	}
	return nil
}

func (r *SlotRepository) DeleteDatedBefore(ctx context.Context, tx db.DBTX, cutoff string) (int64, error) {
	const query = `DELETE FROM tee_time_cache WHERE date < $1`

	tag, err := tx.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete expired slots", err)
	}
	return tag.RowsAffected(), nil
}
