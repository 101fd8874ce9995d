//go:build unit || e2e

package builder

import (
	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
)

func intPtr(n int32) *int32 { return &n }

type TeeTimeBuilder struct {
	CourseName  string
	Date        string
	StartTime   string
	Provider    string
	Holes       []int32
	BookingURL  string
	IsAvailable bool
	GreenFee    float64
	MaxPlayers  *int32
	Spots       *int32
}

func NewTeeTimeBuilder() *TeeTimeBuilder {
	return &TeeTimeBuilder{
		CourseName:  "Bonneville Golf Course",
		Date:        "2026-09-01",
		StartTime:   "08:30",
		Provider:    course.ProviderChronogolfV2,
		Holes:       []int32{18},
		BookingURL:  "https://example.com/book",
		IsAvailable: true,
		GreenFee:    42,
		MaxPlayers:  intPtr(4),
	}
}

func (b *TeeTimeBuilder) WithCourse(name string) *TeeTimeBuilder {
	b.CourseName = name
	return b
}

func (b *TeeTimeBuilder) WithDate(date string) *TeeTimeBuilder {
	b.Date = date
	return b
}

func (b *TeeTimeBuilder) WithStartTime(startTime string) *TeeTimeBuilder {
	b.StartTime = startTime
	return b
}

func (b *TeeTimeBuilder) WithProvider(provider string) *TeeTimeBuilder {
	b.Provider = provider
	return b
}

func (b *TeeTimeBuilder) WithGreenFee(fee float64) *TeeTimeBuilder {
	b.GreenFee = fee
	return b
}

func (b *TeeTimeBuilder) WithMaxPlayers(n int32) *TeeTimeBuilder {
	b.MaxPlayers = intPtr(n)
	return b
}

func (b *TeeTimeBuilder) WithAvailableSpots(n int32) *TeeTimeBuilder {
	b.Spots = intPtr(n)
	return b
}

func (b *TeeTimeBuilder) Unavailable() *TeeTimeBuilder {
	b.IsAvailable = false
	return b
}

func (b *TeeTimeBuilder) Build() teetime.NormalizedTeeTime {
	return teetime.NormalizedTeeTime{
		CourseName:     b.CourseName,
		Date:           b.Date,
		StartTime:      b.StartTime,
		Provider:       b.Provider,
		Holes:          b.Holes,
		BookingURL:     b.BookingURL,
		IsAvailable:    b.IsAvailable,
		GreenFee:       b.GreenFee,
		MaxPlayers:     b.MaxPlayers,
		AvailableSpots: b.Spots,
	}
}
