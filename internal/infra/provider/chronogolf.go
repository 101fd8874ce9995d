package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
)

// Chronogolf marketplace V1: flat records with a green_fees array per slot.
type ChronogolfV1Adapter struct {
	client   baseClient
	endpoint string
}

func NewChronogolfV1Adapter(endpoint string, httpClient *http.Client, policy Policy, recorder Recorder) *ChronogolfV1Adapter {
	return &ChronogolfV1Adapter{
		client:   newBaseClient(httpClient, course.ProviderChronogolfV1, policy, recorder),
		endpoint: endpoint,
	}
}

func (a *ChronogolfV1Adapter) Provider() string { return course.ProviderChronogolfV1 }

type chronogolfV1Slot struct {
	StartTime    string   `json:"start_time"`
	Date         string   `json:"date"`
	Restrictions []string `json:"restrictions"`
	GreenFees    []struct {
		GreenFee      float64 `json:"green_fee"`
		Price         float64 `json:"price"`
		HalfCartPrice float64 `json:"half_cart_price"`
		Subtotal      float64 `json:"subtotal"`
	} `json:"green_fees"`
}

func (a *ChronogolfV1Adapter) Fetch(ctx context.Context, c course.Course, date string) ([]teetime.NormalizedTeeTime, error) {
	endpoint := a.endpoint + "?" + v1Query(c, date).Encode()

	var slots []chronogolfV1Slot
	raw, err := a.client.getJSON(ctx, endpoint, c.Name, nil, &slots)
	if err != nil {
		return nil, err
	}

	out := make([]teetime.NormalizedTeeTime, 0, len(slots))
	for _, slot := range slots {
		record := teetime.NormalizedTeeTime{
			CourseName:   c.Name,
			Date:         slot.Date,
			StartTime:    normalizeClock(slot.StartTime),
			Holes:        []int32{18},
			BookingURL:   c.BookingURL,
			Provider:     a.Provider(),
			Restrictions: slot.Restrictions,
			Raw:          raw,
		}
		// A slot without fee options is listed but not bookable.
		if len(slot.GreenFees) > 0 {
			fee := slot.GreenFees[0]
			record.IsAvailable = true
			record.GreenFee = fee.GreenFee
			record.Price = fee.Price
			halfCart := fee.HalfCartPrice
			record.HalfCart = &halfCart
			record.Subtotal = fee.Subtotal
		}
		out = append(out, record)
	}
	return out, nil
}

func v1Query(c course.Course, date string) url.Values {
	params := url.Values{}
	params.Set("date", date)
	params.Set("club_id", c.ClubID)
	for _, id := range c.CourseIDs {
		params.Add("course_ids[]", fmt.Sprint(id))
	}
	return params
}

// Chronogolf marketplace V2: nested course/default_price objects and player
// size bounds.
type ChronogolfV2Adapter struct {
	client   baseClient
	endpoint string
}

func NewChronogolfV2Adapter(endpoint string, httpClient *http.Client, policy Policy, recorder Recorder) *ChronogolfV2Adapter {
	return &ChronogolfV2Adapter{
		client:   newBaseClient(httpClient, course.ProviderChronogolfV2, policy, recorder),
		endpoint: endpoint,
	}
}

func (a *ChronogolfV2Adapter) Provider() string { return course.ProviderChronogolfV2 }

type chronogolfV2Envelope struct {
	Data []chronogolfV2Slot `json:"data"`
}

type chronogolfV2Slot struct {
	StartTime     string `json:"start_time"`
	Date          string `json:"date"`
	HasDeal       bool   `json:"has_deal"`
	MinPlayerSize int32  `json:"min_player_size"`
	MaxPlayerSize int32  `json:"max_player_size"`
	Course        struct {
		Holes int32 `json:"holes"`
	} `json:"course"`
	DefaultPrice struct {
		GreenFee      float64 `json:"green_fee"`
		Subtotal      float64 `json:"subtotal"`
		HalfCart      float64 `json:"half_cart"`
		BookableHoles int32   `json:"bookable_holes"`
	} `json:"default_price"`
}

func (a *ChronogolfV2Adapter) Fetch(ctx context.Context, c course.Course, date string) ([]teetime.NormalizedTeeTime, error) {
	params := url.Values{}
	params.Set("date", date)
	params.Set("club_id", c.ClubID)

	var envelope chronogolfV2Envelope
	raw, err := a.client.getJSON(ctx, a.endpoint+"?"+params.Encode(), c.Name, nil, &envelope)
	if err != nil {
		return nil, err
	}

	out := make([]teetime.NormalizedTeeTime, 0, len(envelope.Data))
	for _, slot := range envelope.Data {
		holes := slot.DefaultPrice.BookableHoles
		if holes == 0 {
			holes = slot.Course.Holes
		}
		if holes == 0 {
			holes = 18
		}
		minPlayers := slot.MinPlayerSize
		maxPlayers := slot.MaxPlayerSize
		halfCart := slot.DefaultPrice.HalfCart

		out = append(out, teetime.NormalizedTeeTime{
			CourseName:   c.Name,
			Date:         slot.Date,
			StartTime:    normalizeClock(slot.StartTime),
			Holes:        []int32{holes},
			BookingURL:   c.BookingURL,
			Provider:     a.Provider(),
			IsAvailable:  slot.MaxPlayerSize > 0,
			GreenFee:     slot.DefaultPrice.GreenFee,
			Price:        slot.DefaultPrice.Subtotal,
			HalfCart:     &halfCart,
			Subtotal:     slot.DefaultPrice.Subtotal,
			SpecialOffer: slot.HasDeal,
			MinPlayers:   &minPlayers,
			MaxPlayers:   &maxPlayers,
			Raw:          raw,
		})
	}
	return out, nil
}

// normalizeClock maps wire clocks onto the cache's zero-padded "HH:MM":
// seconds are trimmed and single-digit hours like "7:30" are padded, since
// the cache orders start times lexically.
func normalizeClock(clock string) string {
	if strings.Count(clock, ":") == 2 {
		clock = clock[:strings.LastIndex(clock, ":")]
	}
	if t, err := time.Parse("15:04", clock); err == nil {
		return t.Format("15:04")
	}
	return clock
}
