//go:build e2e

package bookkeeping_test

import (
	"context"
	"net/http"
	"testing"

	"fairway/internal/handler/dto/response"
	"fairway/tests/common/httptest"
	"fairway/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	courseRequestsURL = "/api/course-requests"
	bugReportsURL     = "/api/bug-reports"
)

type BookkeepingSuite struct {
	e2e.SharedSuite
}

func (s *BookkeepingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookkeepingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookkeepingSuite))
}

func (s *BookkeepingSuite) TestCourseRequests() {
	s.Run("Normal case: visitor can request a missing course", func() {
		t := s.T()

		body := map[string]any{
			"course_name":     "Wasatch Mountain State Park",
			"phone_number":    "801-555-0142",
			"agree_to_notify": true,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, courseRequestsURL, body)
		require.Equal(t, http.StatusCreated, w.Code, "Response: %s", w.Body.String())

		var created response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Positive(t, created.ID)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, courseRequestsURL, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []*response.CourseRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))

		expected := []*response.CourseRequestResponse{{
			CourseName:    "Wasatch Mountain State Park",
			PhoneNumber:   "801-555-0142",
			AgreeToNotify: true,
		}}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.CourseRequestResponse{}, "ID", "CreatedAt", "AddedToSiteAt"),
		}
		if diff := cmp.Diff(expected, listed, opts...); diff != "" {
			t.Errorf("Course request list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: repeating the same course and phone is rejected", func() {
		t := s.T()

		body := map[string]any{
			"course_name":  "Glendale Golf Course",
			"phone_number": "801-555-0188",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, courseRequestsURL, body)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, courseRequestsURL, body)
		require.Equal(t, http.StatusConflict, w.Code, "Response: %s", w.Body.String())
	})

	s.Run("Error case: missing phone number fails validation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, courseRequestsURL,
			map[string]any{"course_name": "Glendale Golf Course"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *BookkeepingSuite) TestBugReports() {
	s.Run("Normal case: bug report is stored with the caller address", func() {
		t := s.T()

		body := map[string]any{
			"description": "Dates endpoint shows a day with no tee times",
			"url":         "https://example.com/?date=2026-09-02",
			"user_agent":  "Mozilla/5.0",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bugReportsURL, body)
		require.Equal(t, http.StatusCreated, w.Code, "Response: %s", w.Body.String())

		var created response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Positive(t, created.ID)

		var description, ipAddress string
		err := s.DB.QueryRow(context.Background(),
			"SELECT description, ip_address FROM bug_reports WHERE id = $1", created.ID,
		).Scan(&description, &ipAddress)
		require.NoError(t, err)
		require.Equal(t, "Dates endpoint shows a day with no tee times", description)
		require.NotEmpty(t, ipAddress)
	})

	s.Run("Error case: empty description fails validation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bugReportsURL, map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
