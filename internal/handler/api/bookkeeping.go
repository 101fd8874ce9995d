package api

import (
	"errors"
	"net/http"

	reqdto "fairway/internal/handler/dto/request"
	resdto "fairway/internal/handler/dto/response"
	"fairway/internal/handler/httperr"
	"fairway/internal/pkg/errs"
	"fairway/internal/usecase/commands"
	"fairway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookkeepingHandler struct {
	cmds commands.BookkeepingCommands
	q    queries.BookkeepingQueries
}

func NewBookkeepingHandler(cmds commands.BookkeepingCommands, q queries.BookkeepingQueries) *BookkeepingHandler {
	return &BookkeepingHandler{cmds: cmds, q: q}
}

// @Summary Request a course
// @Description Ask for a new course to be tracked
// @Tags bookkeeping
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCourseRequestRequest true "Course request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /course-requests [post]
func (h *BookkeepingHandler) CreateCourseRequest(c *gin.Context) {
	var req reqdto.CreateCourseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.RequestCourse(c.Request.Context(), req.CourseName, req.PhoneNumber, req.AgreeToNotify)
	if err != nil {
		if errors.Is(err, errs.ErrCourseRequestExists) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Course already requested", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to file course request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List course requests
// @Tags bookkeeping
// @Produce json
// @Success 200 {array} resdto.CourseRequestResponse
// @Router /course-requests [get]
func (h *BookkeepingHandler) ListCourseRequests(c *gin.Context) {
	views, err := h.q.ListCourseRequests(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list course requests", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourseRequestList(views))
}

// @Summary Report a bug
// @Tags bookkeeping
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBugReportRequest true "Bug report"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /bug-reports [post]
func (h *BookkeepingHandler) CreateBugReport(c *gin.Context) {
	var req reqdto.CreateBugReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.ReportBug(c.Request.Context(), req.ToInput(c.ClientIP()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to file bug report", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
