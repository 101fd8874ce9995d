package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
)

// ForeUp publishes tee sheets per schedule id and dates in MM-DD-YYYY.
type ForeUpAdapter struct {
	client   baseClient
	endpoint string
}

func NewForeUpAdapter(endpoint string, httpClient *http.Client, policy Policy, recorder Recorder) *ForeUpAdapter {
	return &ForeUpAdapter{
		client:   newBaseClient(httpClient, course.ProviderForeUp, policy, recorder),
		endpoint: endpoint,
	}
}

func (a *ForeUpAdapter) Provider() string { return course.ProviderForeUp }

type foreUpSlot struct {
	Time             string  `json:"time"` // "2025-08-29 07:39"
	AvailableSpots   int32   `json:"available_spots"`
	AvailableSpots9  int32   `json:"available_spots_9"`
	AvailableSpots18 int32   `json:"available_spots_18"`
	MinimumPlayers   int32   `json:"minimum_players"`
	GreenFee18       float64 `json:"green_fee_18"`
	CartFee          float64 `json:"cart_fee"`
	IsBackNine       bool    `json:"isBackNine"`
}

func (a *ForeUpAdapter) Fetch(ctx context.Context, c course.Course, date string) ([]teetime.NormalizedTeeTime, error) {
	day, err := time.Parse(teetime.DateLayout, date)
	if err != nil {
		return nil, &UpstreamError{Provider: a.Provider(), Endpoint: a.endpoint, Err: err}
	}

	params := url.Values{}
	params.Set("time", "all")
	params.Set("date", day.Format("01-02-2006"))
	params.Set("holes", "all")
	params.Set("players", "0")
	params.Set("booking_class", fmt.Sprint(c.BookingClass))
	params.Set("schedule_id", fmt.Sprint(c.ScheduleID))
	params.Add("schedule_ids[]", fmt.Sprint(c.ScheduleID))
	params.Set("specials_only", "0")
	params.Set("api_key", "no_limits")

	headers := map[string]string{
		"User-Agent": "Mozilla/5.0 (compatible; Golf Tee Time Scraper)",
		"Referer":    "https://app.foreupsoftware.com/",
	}

	var slots []foreUpSlot
	raw, err := a.client.getJSON(ctx, a.endpoint+"?"+params.Encode(), c.Name, headers, &slots)
	if err != nil {
		return nil, err
	}

	out := make([]teetime.NormalizedTeeTime, 0, len(slots))
	for _, slot := range slots {
		// "YYYY-MM-DD HH:MM"
		if len(slot.Time) < 16 {
			continue
		}
		spots := slot.AvailableSpots
		minPlayers := slot.MinimumPlayers
		cartFee := slot.CartFee

		var holes []int32
		if slot.AvailableSpots9 > 0 {
			holes = append(holes, 9)
		}
		if slot.AvailableSpots18 > 0 {
			holes = append(holes, 18)
		}

		out = append(out, teetime.NormalizedTeeTime{
			CourseName:  c.Name,
			Date:        slot.Time[:10],
			StartTime:   slot.Time[len(slot.Time)-5:],
			Holes:       holes,
			BookingURL:  c.BookingURL,
			Provider:    a.Provider(),
			IsAvailable: spots > 0,
			GreenFee:    slot.GreenFee18,
			Price:       slot.GreenFee18,
			HalfCart:    &cartFee,
			Subtotal:    slot.GreenFee18,
			MinPlayers:  &minPlayers,
			MaxPlayers:  &spots,
			Raw:         raw,
		})
	}
	return out, nil
}
