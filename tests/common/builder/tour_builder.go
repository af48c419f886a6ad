//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourBuilder struct {
	OperatorID     uuid.UUID
	Title          string
	CategoryKey    string
	DepartsAt      time.Time
	Capacity       int32
	SeatPriceCents int64
	Status         string
}

func NewTourBuilder() *TourBuilder {
	return &TourBuilder{
		OperatorID:     uuid.New(),
		Title:          "Sunset Vineyard Walk",
		CategoryKey:    "wine_tours",
		DepartsAt:      time.Date(2026, 10, 3, 17, 0, 0, 0, time.UTC),
		Capacity:       20,
		SeatPriceCents: 8500,
		Status:         "open",
	}
}

func (t *TourBuilder) With(mutate func(*TourBuilder)) *TourBuilder {
	mutate(t)
	return t
}

// Build methods
func (t *TourBuilder) BuildView() *queries.TourView {
	now := time.Now()
	return &queries.TourView{
		ID:             uuid.New(),
		OperatorID:     t.OperatorID,
		Title:          t.Title,
		CategoryKey:    t.CategoryKey,
		DepartsAt:      t.DepartsAt,
		Capacity:       t.Capacity,
		SeatPriceCents: t.SeatPriceCents,
		Status:         t.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (t *TourBuilder) BuildAvailabilityView(tourID uuid.UUID, remaining int32) *queries.AvailabilityView {
	return &queries.AvailabilityView{
		TourID:    tourID,
		Available: remaining > 0,
		Remaining: remaining,
	}
}

func (t *TourBuilder) BuildPurchaseRequestDTO(quantity int32) reqdto.PurchaseTicketRequest {
	return reqdto.PurchaseTicketRequest{Quantity: quantity}
}

// Fluent builder methods
func (t *TourBuilder) WithTitle(title string) *TourBuilder {
	t.Title = title
	return t
}

func (t *TourBuilder) WithCategoryKey(key string) *TourBuilder {
	t.CategoryKey = key
	return t
}

func (t *TourBuilder) WithCapacity(capacity int32) *TourBuilder {
	t.Capacity = capacity
	return t
}

func (t *TourBuilder) WithSeatPriceCents(cents int64) *TourBuilder {
	t.SeatPriceCents = cents
	return t
}

func (t *TourBuilder) AsClosed() *TourBuilder {
	t.Status = "closed"
	return t
}
