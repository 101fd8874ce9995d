package response

import (
	"github.com/jinzhu/copier"

	"fairway/internal/usecase/commands"
	"fairway/internal/usecase/queries"
)

type SlotResponse struct {
	ID               int64    `json:"id"`
	CourseName       string   `json:"course_name"`
	Date             string   `json:"date"`
	StartTime        string   `json:"start_time"`
	PlayersAvailable int32    `json:"players_available"`
	Holes            []int32  `json:"holes"`
	BookingURL       *string  `json:"booking_url"`
	Provider         *string  `json:"provider"`
	GreenFee         *float64 `json:"green_fee"`
	HalfCart         *float64 `json:"half_cart"`
	Price            *float64 `json:"price"`
	Subtotal         *float64 `json:"subtotal"`
	Restrictions     []string `json:"restrictions"`
	SpecialOffer     bool     `json:"special_offer"`
	IsAvailable      bool     `json:"is_available"`
	UpdatedAt        int64    `json:"updated_at"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, v)
	resp.UpdatedAt = v.UpdatedAt.Unix()
	return &resp
}

func FromSlotList(views []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(views))
	for i, v := range views {
		res[i] = FromSlotView(v)
	}
	return res
}

type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

func FromDates(dates []string) *AvailableDatesResponse {
	if dates == nil {
		dates = []string{}
	}
	return &AvailableDatesResponse{Dates: dates}
}

type ScrapeResponse struct {
	CoursesScraped   int   `json:"courses_scraped"`
	CoursesFailed    int   `json:"courses_failed"`
	SlotsUpserted    int   `json:"slots_upserted"`
	SlotsInvalidated int64 `json:"slots_invalidated"`
	RecordsDropped   int   `json:"records_dropped"`
}

func FromScrapeResult(r *commands.ScrapeResult) *ScrapeResponse {
	resp := &ScrapeResponse{
		CoursesScraped: r.CoursesScraped,
		CoursesFailed:  r.CoursesFailed,
	}
	if r.Reconcile != nil {
		resp.SlotsUpserted = r.Reconcile.Upserted
		resp.SlotsInvalidated = r.Reconcile.Invalidated
		resp.RecordsDropped = r.Reconcile.Dropped
	}
	return resp
}
