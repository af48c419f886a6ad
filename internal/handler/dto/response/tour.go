package response

import (
	"time"

	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourResponse struct {
	ID             uuid.UUID `json:"id"`
	OperatorID     uuid.UUID `json:"operator_id"`
	Title          string    `json:"title"`
	CategoryKey    string    `json:"category_key"`
	DepartsAt      time.Time `json:"departs_at"`
	Capacity       int32     `json:"capacity"`
	SeatPriceCents int64     `json:"seat_price_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	TourID    uuid.UUID `json:"tour_id"`
	Available bool      `json:"available"`
	Remaining int32     `json:"remaining"`
	Reason    *string   `json:"reason,omitempty"`
}

type TicketResponse struct {
	TicketID       uuid.UUID `json:"ticket_id"`
	TourID         uuid.UUID `json:"tour_id"`
	Quantity       int32     `json:"quantity"`
	AmountCents    int64     `json:"amount_cents"`
	SeatsRemaining int32     `json:"seats_remaining"`
}

func FromTourView(v *queries.TourView) *TourResponse {
	return &TourResponse{
		ID:             v.ID,
		OperatorID:     v.OperatorID,
		Title:          v.Title,
		CategoryKey:    v.CategoryKey,
		DepartsAt:      v.DepartsAt,
		Capacity:       v.Capacity,
		SeatPriceCents: v.SeatPriceCents,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
	}
}

func FromTourViews(views []*queries.TourView) []*TourResponse {
	out := make([]*TourResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromTourView(v))
	}
	return out
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		TourID:    v.TourID,
		Available: v.Available,
		Remaining: v.Remaining,
		Reason:    v.Reason,
	}
}
