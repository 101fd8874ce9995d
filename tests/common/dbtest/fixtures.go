//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SlotFixture describes one tee_time_cache row for direct seeding. Tests
// that exercise the reconcile path should go through the use case instead;
// direct inserts are for shaping state the public API cannot produce
// (past dates, stale availability).
type SlotFixture struct {
	CourseName  string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	Players     int32
	Provider    string
	GreenFee    float64
	IsAvailable bool
}

func InsertSlot(t *testing.T, db DBLike, f SlotFixture) int64 {
	t.Helper()

	if f.Players == 0 {
		f.Players = 4
	}
	if f.Provider == "" {
		f.Provider = "chronogolf_v2"
	}

	now := time.Now().UTC()
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO tee_time_cache
			(course_name, date, start_time, players_available, provider,
			 green_fee, is_available, created_at, updated_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $8)
		RETURNING id`,
		f.CourseName, f.Date, f.StartTime, f.Players, f.Provider,
		f.GreenFee, f.IsAvailable, now,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountSlots(t *testing.T, db DBLike, courseName, date string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM tee_time_cache WHERE course_name = $1 AND date = $2",
		courseName, date,
	).Scan(&count)
	require.NoError(t, err)

	return count
}

func SlotAvailable(t *testing.T, db DBLike, courseName, date, startTime string, players int32) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(), `
		SELECT is_available FROM tee_time_cache
		WHERE course_name = $1 AND date = $2 AND start_time = $3 AND players_available = $4`,
		courseName, date, startTime, players,
	).Scan(&available)
	require.NoError(t, err)

	return available
}

func SlotCreatedAt(t *testing.T, db DBLike, courseName, date, startTime string, players int32) time.Time {
	t.Helper()

	var createdAt time.Time
	err := db.QueryRow(context.Background(), `
		SELECT created_at FROM tee_time_cache
		WHERE course_name = $1 AND date = $2 AND start_time = $3 AND players_available = $4`,
		courseName, date, startTime, players,
	).Scan(&createdAt)
	require.NoError(t, err)

	return createdAt
}

func CountRequestLogs(t *testing.T, db DBLike, provider string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM request_logs WHERE provider = $1", provider,
	).Scan(&count)
	require.NoError(t, err)

	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
