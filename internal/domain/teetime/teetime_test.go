//go:build unit

package teetime_test

import (
	"testing"

	"fairway/internal/domain/teetime"
	"fairway/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func i32(v int32) *int32 { return &v }

func TestPlayersAvailable(t *testing.T) {
	testCases := []struct {
		name     string
		record   teetime.NormalizedTeeTime
		expected int32
	}{
		{
			name:     "max players wins when present",
			record:   teetime.NormalizedTeeTime{MaxPlayers: i32(3), AvailableSpots: i32(2)},
			expected: 3,
		},
		{
			name:     "falls back to available spots",
			record:   teetime.NormalizedTeeTime{AvailableSpots: i32(2)},
			expected: 2,
		},
		{
			name:     "defaults to 4 when neither is present",
			record:   teetime.NormalizedTeeTime{},
			expected: 4,
		},
		{
			name:     "zero max players is treated as absent",
			record:   teetime.NormalizedTeeTime{MaxPlayers: i32(0), AvailableSpots: i32(1)},
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.PlayersAvailable())
		})
	}
}

func TestKeyStableAcrossScrapes(t *testing.T) {
	first := teetime.NormalizedTeeTime{
		CourseName: "Bonneville",
		Date:       "2025-09-01",
		StartTime:  "07:00",
		MaxPlayers: i32(4),
		Price:      65,
	}
	// Same physical slot seen later with a different price
	second := first
	second.Price = 80

	assert.Equal(t, first.Key(), second.Key())
	assert.Equal(t, teetime.SlotKey{
		CourseName: "Bonneville",
		Date:       "2025-09-01",
		StartTime:  "07:00",
		Players:    4,
	}, first.Key())
}

func TestValidate(t *testing.T) {
	valid := teetime.NormalizedTeeTime{
		CourseName: "Bonneville",
		Date:       "2025-09-01",
		StartTime:  "07:00",
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(*teetime.NormalizedTeeTime)
	}{
		{name: "missing course name", mutate: func(r *teetime.NormalizedTeeTime) { r.CourseName = "" }},
		{name: "missing date", mutate: func(r *teetime.NormalizedTeeTime) { r.Date = "" }},
		{name: "non-ISO date", mutate: func(r *teetime.NormalizedTeeTime) { r.Date = "09-01-2025" }},
		{name: "missing start time", mutate: func(r *teetime.NormalizedTeeTime) { r.StartTime = "" }},
		{name: "start time with seconds", mutate: func(r *teetime.NormalizedTeeTime) { r.StartTime = "07:00:00" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := valid
			tc.mutate(&record)
			err := record.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidRecord))
		})
	}
}
