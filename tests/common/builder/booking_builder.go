//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking-api/internal/domain/booking"
	reqdto "tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID                uuid.UUID
	UserEmail             string
	CategoryKey           string
	TourDate              time.Time
	DurationHours         int32
	PartySize             int32
	CustomDiscountPercent *float64
	Status                string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:        uuid.New(),
		UserEmail:     "customer@example.com",
		CategoryKey:   "wine_tours",
		TourDate:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), // Saturday
		DurationHours: 4,
		PartySize:     4,
		Status:        "pending",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateParams() booking.CreateParams {
	return booking.CreateParams{
		UserID:                b.UserID,
		TourDate:              b.TourDate,
		DurationHours:         b.DurationHours,
		PartySize:             b.PartySize,
		CustomDiscountPercent: b.CustomDiscountPercent,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CategoryKey:           b.CategoryKey,
		TourDate:              b.TourDate.Format("2006-01-02"),
		DurationHours:         b.DurationHours,
		PartySize:             b.PartySize,
		CustomDiscountPercent: b.CustomDiscountPercent,
	}
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		CategoryKey:           b.CategoryKey,
		Date:                  b.TourDate.Format("2006-01-02"),
		DurationHours:         b.DurationHours,
		PartySize:             b.PartySize,
		CustomDiscountPercent: b.CustomDiscountPercent,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:              uuid.New(),
		UserID:          b.UserID,
		UserEmail:       b.UserEmail,
		CategoryKey:     b.CategoryKey,
		TourDate:        b.TourDate,
		RequestedHours:  b.DurationHours,
		PartySize:       b.PartySize,
		Status:          b.Status,
		Currency:        "USD",
		DayType:         "weekend",
		RateTier:        "standard",
		BillableHours:   b.DurationHours,
		MinimumApplied:  false,
		HoursLabel:      "4hr",
		HourlyRateCents: 25000,
		SubtotalCents:   100000,
		ModifierCents:   0,
		DiscountCents:   0,
		TaxCents:        10000,
		TotalCents:      110000,
		DepositCents:    22000,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          uuid.New(),
		CategoryKey: b.CategoryKey,
		TourDate:    b.TourDate,
		PartySize:   b.PartySize,
		Status:      b.Status,
		TotalCents:  110000,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCategoryKey(key string) *BookingBuilder {
	b.CategoryKey = key
	return b
}

func (b *BookingBuilder) WithTourDate(date time.Time) *BookingBuilder {
	b.TourDate = date
	return b
}

func (b *BookingBuilder) WithDurationHours(hours int32) *BookingBuilder {
	b.DurationHours = hours
	return b
}

func (b *BookingBuilder) WithPartySize(size int32) *BookingBuilder {
	b.PartySize = size
	return b
}

func (b *BookingBuilder) WithCustomDiscountPercent(pct float64) *BookingBuilder {
	b.CustomDiscountPercent = &pct
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}
