package request

// TeeTimeSearchQuery filters the cached tee sheet. Date is the course-local
// calendar day.
type TeeTimeSearchQuery struct {
	CourseName    *string `form:"course_name"`
	Date          *string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	AvailableOnly bool    `form:"available_only"`
}
