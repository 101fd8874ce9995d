//go:build e2e

package scrape_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fairway/internal/domain/course"
	"fairway/internal/handler/dto/response"
	"fairway/tests/common/dbtest"
	"fairway/tests/common/httptest"
	"fairway/tests/e2e"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const scrapeURL = "/api/scrape"

type ScrapeSuite struct {
	e2e.SharedSuite
}

func (s *ScrapeSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestScrapeSuite(t *testing.T) {
	suite.Run(t, new(ScrapeSuite))
}

// registerUpstreams stubs every provider endpoint the default catalog talks
// to. Only the Chronogolf V2 upstream (Bonneville) returns tee times; the
// rest answer with valid empty sheets.
func (s *ScrapeSuite) registerUpstreams() {
	cfg := s.Config.Provider

	httpmock.RegisterResponder(http.MethodGet, cfg.ChronogolfV2Endpoint,
		func(req *http.Request) (*http.Response, error) {
			date := req.URL.Query().Get("date")
			body := fmt.Sprintf(`{"data":[
				{"start_time":"07:30:00","date":%q,"min_player_size":1,"max_player_size":4,
				 "course":{"holes":18},
				 "default_price":{"green_fee":42,"subtotal":47,"half_cart":5,"bookable_holes":18}},
				{"start_time":"08:15:00","date":%q,"min_player_size":1,"max_player_size":4,
				 "course":{"holes":18},
				 "default_price":{"green_fee":42,"subtotal":47,"half_cart":5,"bookable_holes":18}}
			]}`, date, date)
			return httpmock.NewStringResponse(http.StatusOK, body), nil
		})

	httpmock.RegisterResponder(http.MethodGet, cfg.ChronogolfV1Endpoint,
		httpmock.NewStringResponder(http.StatusOK, `[]`))
	httpmock.RegisterResponder(http.MethodGet, cfg.ForeUpEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `[]`))
	httpmock.RegisterResponder(http.MethodPost, cfg.MemberPortalEndpoint+"/api/v1/session",
		httpmock.NewStringResponder(http.StatusOK, `{"success":true}`))
	httpmock.RegisterResponder(http.MethodPost, cfg.MemberPortalEndpoint+"/api/v1/teetimes/search",
		httpmock.NewStringResponder(http.StatusOK, `[]`))
}

// windowDate mirrors how the scrape cycle derives its look-ahead dates.
func windowDate(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

func (s *ScrapeSuite) TestScrapeCycle() {
	s.Run("Normal case: full cycle lands upstream tee sheets in the cache", func() {
		t := s.T()
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s.registerUpstreams()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scrapeURL, nil)
		require.Equal(t, http.StatusOK, w.Code, "Response: %s", w.Body.String())

		var res response.ScrapeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, 4, res.CoursesScraped)
		require.Zero(t, res.CoursesFailed)
		// 2 slots per look-ahead day, only Bonneville publishes any
		require.Equal(t, 2*s.Config.Scrape.DaysAhead, res.SlotsUpserted)
		require.Zero(t, res.RecordsDropped)

		for i := 0; i < s.Config.Scrape.DaysAhead; i++ {
			require.Equal(t, 2, dbtest.CountSlots(t, s.DB, "Bonneville Golf Course", windowDate(i)))
		}

		// every upstream call leaves an audit row
		require.Positive(t, dbtest.CountRequestLogs(t, s.DB, course.ProviderChronogolfV2))
		require.Positive(t, dbtest.CountRequestLogs(t, s.DB, course.ProviderMemberPortal))
	})

	s.Run("Normal case: a failing upstream skips its course but not the cycle", func() {
		t := s.T()
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		s.registerUpstreams()
		httpmock.RegisterResponder(http.MethodGet, s.Config.Provider.ForeUpEndpoint,
			httpmock.NewStringResponder(http.StatusForbidden, `{"error":"blocked"}`))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scrapeURL, nil)
		require.Equal(t, http.StatusOK, w.Code, "Response: %s", w.Body.String())

		var res response.ScrapeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, 3, res.CoursesScraped)
		require.Equal(t, 1, res.CoursesFailed)
		require.Equal(t, 2*s.Config.Scrape.DaysAhead, res.SlotsUpserted)
	})
}
