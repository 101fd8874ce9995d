//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"fairway/internal/handler/api"
	resdto "fairway/internal/handler/dto/response"
	"fairway/internal/usecase/commands"
	"fairway/internal/usecase/queries"
	"fairway/tests/common/httptest"
	commandsmock "fairway/tests/mock/commands"
	queriesmock "fairway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TeeTimeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	mockScrape  *commandsmock.MockScrapeCommands
	handler     *api.TeeTimeHandler
}

func (s *TeeTimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockScrape = commandsmock.NewMockScrapeCommands(s.mockCtrl)
	s.handler = api.NewTeeTimeHandler(s.mockQueries, s.mockScrape)

	s.router.GET("/api/teetimes", s.handler.Search)
	s.router.GET("/api/teetimes/dates", s.handler.Dates)
	s.router.POST("/api/scrape", s.handler.TriggerScrape)
}

func (s *TeeTimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTeeTimeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeeTimeHandlerTestSuite))
}

func (s *TeeTimeHandlerTestSuite) TestSearch() {
	s.Run("success: returns slots", func() {
		s.SetupTest()
		views := []*queries.SlotView{
			{ID: 1, CourseName: "Bonneville Golf Course", Date: "2026-09-01", StartTime: "08:30", PlayersAvailable: 4, IsAvailable: true},
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Nil(), gomock.Nil(), false).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teetimes", nil)

		s.Equal(http.StatusOK, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		var resp []*resdto.SlotResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Len(resp, 1)
		s.Equal("Bonneville Golf Course", resp[0].CourseName)
		s.Equal("08:30", resp[0].StartTime)
	})

	s.Run("success: forwards filters", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ any, courseName, date *string, _ bool) ([]*queries.SlotView, error) {
				s.Require().NotNil(courseName)
				s.Equal("Bonneville Golf Course", *courseName)
				s.Require().NotNil(date)
				s.Equal("2026-09-01", *date)
				return nil, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/teetimes?course_name=Bonneville+Golf+Course&date=2026-09-01&available_only=true", nil)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("error: malformed date rejected", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teetimes?date=09-01-2026", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: query failure maps to 500", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Nil(), gomock.Nil(), false).
			Return(nil, errors.New("db down"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teetimes", nil)
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *TeeTimeHandlerTestSuite) TestDates() {
	s.Run("success: wraps dates", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().DistinctAvailableDates(gomock.Any()).
			Return([]string{"2026-09-01", "2026-09-02"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teetimes/dates", nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.AvailableDatesResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal([]string{"2026-09-01", "2026-09-02"}, resp.Dates)
	})

	s.Run("success: empty result is an empty array", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().DistinctAvailableDates(gomock.Any()).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teetimes/dates", nil)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"dates":[]}`, w.Body.String())
	})
}

func (s *TeeTimeHandlerTestSuite) TestTriggerScrape() {
	s.Run("success: returns cycle summary", func() {
		s.SetupTest()
		s.mockScrape.EXPECT().RunCycle(gomock.Any()).Return(&commands.ScrapeResult{
			CoursesScraped: 4,
			CoursesFailed:  1,
			Reconcile:      &commands.ReconcileResult{Upserted: 120, Invalidated: 115, Dropped: 2},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scrape", nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.ScrapeResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(4, resp.CoursesScraped)
		s.Equal(120, resp.SlotsUpserted)
		s.Equal(int64(115), resp.SlotsInvalidated)
	})

	s.Run("error: cycle failure maps to 500", func() {
		s.SetupTest()
		s.mockScrape.EXPECT().RunCycle(gomock.Any()).Return(nil, errors.New("every course failed"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scrape", nil)
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
