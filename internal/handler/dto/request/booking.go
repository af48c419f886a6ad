package request

import (
	"time"
)

type CreateBookingRequest struct {
	CategoryKey           string   `json:"category_key" binding:"required"`
	TourDate              string   `json:"tour_date" binding:"required"`
	DurationHours         int32    `json:"duration_hours" binding:"required,min=1"`
	PartySize             int32    `json:"party_size" binding:"required,min=1"`
	CustomDiscountPercent *float64 `json:"custom_discount_percent,omitempty"`
}

func (r CreateBookingRequest) ParseTourDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.TourDate)
}
