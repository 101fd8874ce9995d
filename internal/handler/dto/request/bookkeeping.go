package request

import (
	"time"

	"fairway/internal/usecase/queries"
)

type CreateCourseRequestRequest struct {
	CourseName    string `json:"course_name" binding:"required,max=120"`
	PhoneNumber   string `json:"phone_number" binding:"required,max=20"`
	AgreeToNotify bool   `json:"agree_to_notify"`
}

type CreateBugReportRequest struct {
	Description string     `json:"description" binding:"required,max=5000"`
	Timestamp   *time.Time `json:"timestamp"`
	URL         *string    `json:"url" binding:"omitempty,max=500"`
	UserAgent   *string    `json:"user_agent" binding:"omitempty,max=500"`
}

func (r *CreateBugReportRequest) ToInput(clientIP string) queries.BugReportInput {
	return queries.BugReportInput{
		Description: r.Description,
		Timestamp:   r.Timestamp,
		URL:         r.URL,
		UserAgent:   r.UserAgent,
		IPAddress:   clientIP,
	}
}
