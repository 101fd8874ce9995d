//go:build unit

package provider_test

import (
	"context"
	"net/http"
	"testing"

	"fairway/internal/domain/course"
	"fairway/internal/infra/provider"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalBase = "https://portal.test"

func portalCourse() course.Course {
	return course.Course{
		Name:       "Eaglewood Golf Course",
		Provider:   course.ProviderMemberPortal,
		BookingURL: "https://eaglewood.cps.golf",
		GolfClubID: 2,
	}
}

func TestMemberPortalFetch_LoginThenSearch(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, portalBase+"/api/v1/session",
		httpmock.NewStringResponder(200, `{"success":true}`))
	httpmock.RegisterResponder(http.MethodPost, portalBase+"/api/v1/teetimes/search",
		httpmock.NewStringResponder(200, `[
			{"teeTime":465,"items":[
				{"name":"18 Holes","availableCount":3,"playerCount":1,"price":40,"golfCourseNumberOfHoles":18,"minimumNumberOfPlayers":1,"bookingNotAllowed":false,"premiumCharge":2.5}
			]},
			{"teeTime":480,"items":[
				{"name":"18 Holes","availableCount":2,"playerCount":2,"price":40,"golfCourseNumberOfHoles":18,"minimumNumberOfPlayers":1,"bookingNotAllowed":true,"premiumCharge":0}
			]}
		]`))

	adapter := provider.NewMemberPortalAdapter(portalBase, "scraper", "secret", provider.Policy{MaxAttempts: 1}, nil)
	records, err := adapter.Fetch(context.Background(), portalCourse(), "2026-09-01")
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "07:45", first.StartTime)
	assert.Equal(t, "2026-09-01", first.Date)
	assert.True(t, first.IsAvailable)
	assert.Equal(t, float64(40), first.GreenFee)
	assert.Equal(t, 42.5, first.Price)
	assert.Equal(t, int32(3), first.PlayersAvailable())

	// Slots flagged bookingNotAllowed stay visible but unavailable.
	second := records[1]
	assert.Equal(t, "08:00", second.StartTime)
	assert.False(t, second.IsAvailable)
}

func TestMemberPortalFetch_RejectedLoginAbortsFetch(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, portalBase+"/api/v1/session",
		httpmock.NewStringResponder(200, `{"success":false}`))

	adapter := provider.NewMemberPortalAdapter(portalBase, "scraper", "wrong", provider.Policy{MaxAttempts: 1}, nil)
	_, err := adapter.Fetch(context.Background(), portalCourse(), "2026-09-01")
	require.Error(t, err)
	assert.True(t, provider.IsUpstream(err))
	assert.Zero(t, httpmock.GetCallCountInfo()["POST "+portalBase+"/api/v1/teetimes/search"])
}
