package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"fairway/internal/domain/course"
	"fairway/internal/domain/teetime"
)

// MemberPortalAdapter talks to the bespoke member-portal teesheet API
// (CPS-style portals). Each fetch performs a stateless login; the session
// cookie lives in the adapter's jar for the duration of the call.
type MemberPortalAdapter struct {
	client   baseClient
	endpoint string
	username string
	password string
}

func NewMemberPortalAdapter(endpoint, username, password string, policy Policy, recorder Recorder) *MemberPortalAdapter {
	jar, _ := cookiejar.New(nil)
	httpClient := &http.Client{
		Timeout: 20 * time.Second,
		Jar:     jar,
	}
	return &MemberPortalAdapter{
		client:   newBaseClient(httpClient, course.ProviderMemberPortal, policy, recorder),
		endpoint: endpoint,
		username: username,
		password: password,
	}
}

func (a *MemberPortalAdapter) Provider() string { return course.ProviderMemberPortal }

type portalLoginResponse struct {
	Success bool `json:"success"`
}

type portalTeeSlot struct {
	TeeTime int32           `json:"teeTime"` // minutes past midnight
	Items   []portalTeeItem `json:"items"`
}

type portalTeeItem struct {
	Name                    string  `json:"name"`
	AvailableCount          int32   `json:"availableCount"`
	PlayerCount             int32   `json:"playerCount"`
	Price                   float64 `json:"price"`
	GolfCourseNumberOfHoles int32   `json:"golfCourseNumberOfHoles"`
	MinimumNumberOfPlayers  int32   `json:"minimumNumberOfPlayers"`
	BookingNotAllowed       bool    `json:"bookingNotAllowed"`
	PremiumCharge           float64 `json:"premiumCharge"`
}

func (a *MemberPortalAdapter) Fetch(ctx context.Context, c course.Course, date string) ([]teetime.NormalizedTeeTime, error) {
	if err := a.login(ctx, c); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"searchDate": date,
		"golfClubId": c.GolfClubID,
		"holes":      0,
		"players":    0,
	}

	var slots []portalTeeSlot
	raw, err := a.client.postJSON(ctx, a.endpoint+"/api/v1/teetimes/search", c.Name, nil, payload, &slots)
	if err != nil {
		return nil, err
	}

	var out []teetime.NormalizedTeeTime
	for _, slot := range slots {
		startTime := minutesToClock(slot.TeeTime)
		for _, item := range slot.Items {
			available := item.AvailableCount
			minPlayers := item.MinimumNumberOfPlayers

			out = append(out, teetime.NormalizedTeeTime{
				CourseName:     c.Name,
				Date:           date,
				StartTime:      startTime,
				Holes:          []int32{item.GolfCourseNumberOfHoles},
				BookingURL:     c.BookingURL,
				Provider:       a.Provider(),
				IsAvailable:    item.AvailableCount > 0 && !item.BookingNotAllowed,
				GreenFee:       item.Price,
				Price:          item.Price + item.PremiumCharge,
				Subtotal:       item.Price + item.PremiumCharge,
				MinPlayers:     &minPlayers,
				AvailableSpots: &available,
				Raw:            raw,
			})
		}
	}
	return out, nil
}

func (a *MemberPortalAdapter) login(ctx context.Context, c course.Course) error {
	payload := map[string]string{
		"username": a.username,
		"password": a.password,
	}

	var resp portalLoginResponse
	if _, err := a.client.postJSON(ctx, a.endpoint+"/api/v1/session", c.Name, nil, payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &UpstreamError{
			Provider: a.Provider(),
			Endpoint: a.endpoint + "/api/v1/session",
			Err:      fmt.Errorf("portal login rejected"),
		}
	}
	return nil
}

func minutesToClock(minutes int32) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
