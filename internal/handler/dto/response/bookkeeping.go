package response

import (
	"time"

	"fairway/internal/usecase/queries"
)

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type CourseRequestResponse struct {
	ID            int64      `json:"id"`
	CourseName    string     `json:"course_name"`
	PhoneNumber   string     `json:"phone_number"`
	AgreeToNotify bool       `json:"agree_to_notify"`
	IsAdded       bool       `json:"is_added"`
	CreatedAt     time.Time  `json:"datetime_created"`
	AddedToSiteAt *time.Time `json:"datetime_added_to_site"`
}

func FromCourseRequestList(views []*queries.CourseRequestView) []*CourseRequestResponse {
	res := make([]*CourseRequestResponse, len(views))
	for i, v := range views {
		res[i] = &CourseRequestResponse{
			ID:            v.ID,
			CourseName:    v.CourseName,
			PhoneNumber:   v.PhoneNumber,
			AgreeToNotify: v.AgreeToNotify,
			IsAdded:       v.IsAdded,
			CreatedAt:     v.CreatedAt,
			AddedToSiteAt: v.AddedToSiteAt,
		}
	}
	return res
}
