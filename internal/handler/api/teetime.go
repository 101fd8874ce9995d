package api

import (
	"net/http"

	reqdto "fairway/internal/handler/dto/request"
	resdto "fairway/internal/handler/dto/response"
	"fairway/internal/handler/httperr"
	"fairway/internal/usecase/commands"
	"fairway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TeeTimeHandler struct {
	q      queries.AvailabilityQueries
	scrape commands.ScrapeCommands
}

func NewTeeTimeHandler(q queries.AvailabilityQueries, scrape commands.ScrapeCommands) *TeeTimeHandler {
	return &TeeTimeHandler{q: q, scrape: scrape}
}

// @Summary Search tee times
// @Description List cached tee times, newest availability first by date and start time. Slots earlier than now in the courses' timezone are hidden.
// @Tags teetimes
// @Produce json
// @Param course_name query string false "Course name"
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Param available_only query bool false "Only bookable slots"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /teetimes [get]
func (h *TeeTimeHandler) Search(c *gin.Context) {
	var q reqdto.TeeTimeSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.CourseName, q.Date, q.AvailableOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search tee times", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(views))
}

// @Summary Available dates
// @Description List the upcoming dates that still have at least one bookable slot
// @Tags teetimes
// @Produce json
// @Success 200 {object} resdto.AvailableDatesResponse
// @Router /teetimes/dates [get]
func (h *TeeTimeHandler) Dates(c *gin.Context) {
	dates, err := h.q.DistinctAvailableDates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list dates", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDates(dates))
}

// @Summary Trigger a scrape cycle
// @Description Fetch every tracked course and fold the harvest into the cache
// @Tags teetimes
// @Produce json
// @Success 200 {object} resdto.ScrapeResponse
// @Failure 500 {object} map[string]string
// @Router /scrape [post]
func (h *TeeTimeHandler) TriggerScrape(c *gin.Context) {
	result, err := h.scrape.RunCycle(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Scrape cycle failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScrapeResult(result))
}
