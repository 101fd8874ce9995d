//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fairway/internal/handler/api"
	reqdto "fairway/internal/handler/dto/request"
	resdto "fairway/internal/handler/dto/response"
	"fairway/internal/pkg/errs"
	"fairway/internal/usecase/queries"
	"fairway/tests/common/httptest"
	"fairway/tests/common/testutil"
	commandsmock "fairway/tests/mock/commands"
	queriesmock "fairway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookkeepingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookkeepingCommands
	mockQueries  *queriesmock.MockBookkeepingQueries
	handler      *api.BookkeepingHandler
}

func (s *BookkeepingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookkeepingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookkeepingQueries(s.mockCtrl)
	s.handler = api.NewBookkeepingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/course-requests", s.handler.CreateCourseRequest)
	s.router.GET("/api/course-requests", s.handler.ListCourseRequests)
	s.router.POST("/api/bug-reports", s.handler.CreateBugReport)
}

func TestBookkeepingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookkeepingHandlerTestSuite))
}

func (s *BookkeepingHandlerTestSuite) TestCreateCourseRequest() {
	s.Run("success: request filed", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			RequestCourse(gomock.Any(), "Forest Dale Golf Course", "801-555-0000", true).
			Return(int64(7), nil)

		body := reqdto.CreateCourseRequestRequest{
			CourseName:    "Forest Dale Golf Course",
			PhoneNumber:   "801-555-0000",
			AgreeToNotify: true,
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/course-requests", body)

		var resp resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(7), resp.ID)
	})

	s.Run("error: duplicate request maps to 409", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			RequestCourse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errs.ErrCourseRequestExists)

		body := reqdto.CreateCourseRequestRequest{CourseName: "Forest Dale Golf Course", PhoneNumber: "801-555-0000"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/course-requests", body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Course already requested")
	})

	s.Run("error: missing fields rejected", func() {
		s.SetupTest()
		body := testutil.DtoMap(s.T(), reqdto.CreateCourseRequestRequest{
			CourseName:  "No Phone Golf Club",
			PhoneNumber: "801-555-0000",
		}, testutil.Field("phone_number", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/course-requests", body)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookkeepingHandlerTestSuite) TestListCourseRequests() {
	s.Run("success: returns requests", func() {
		s.SetupTest()
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListCourseRequests(gomock.Any()).Return([]*queries.CourseRequestView{
			{ID: 1, CourseName: "Forest Dale Golf Course", PhoneNumber: "801-555-0000", CreatedAt: now},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/course-requests", nil)

		s.Equal(http.StatusOK, w.Code)
		var resp []*resdto.CourseRequestResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Len(resp, 1)
		s.Equal("Forest Dale Golf Course", resp[0].CourseName)
	})
}

func (s *BookkeepingHandlerTestSuite) TestCreateBugReport() {
	s.Run("success: report filed with client ip", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			ReportBug(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input queries.BugReportInput) (int64, error) {
				s.Equal("the dates endpoint shows yesterday", input.Description)
				s.NotEmpty(input.IPAddress)
				return 3, nil
			})

		body := reqdto.CreateBugReportRequest{Description: "the dates endpoint shows yesterday"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bug-reports", body)

		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("error: missing description rejected", func() {
		s.SetupTest()
		body := testutil.DtoMap(s.T(), reqdto.CreateBugReportRequest{Description: "x"},
			testutil.Field("description", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bug-reports", body)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("error: write failure maps to 500", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().ReportBug(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("insert failed"))

		body := reqdto.CreateBugReportRequest{Description: "broken"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bug-reports", body)
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
