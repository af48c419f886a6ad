package request

import (
	"time"
)

// QuoteRequest carries the pricing inputs. Date is the local calendar day of
// the tour, formatted YYYY-MM-DD.
type QuoteRequest struct {
	CategoryKey           string   `json:"category_key" binding:"required"`
	Date                  string   `json:"date" binding:"required"`
	DurationHours         int32    `json:"duration_hours" binding:"required,min=1"`
	PartySize             int32    `json:"party_size" binding:"required,min=1"`
	CustomDiscountPercent *float64 `json:"custom_discount_percent,omitempty"`
}

func (r QuoteRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
