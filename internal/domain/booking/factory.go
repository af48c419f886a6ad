package booking

import (
	"time"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

type CreateParams struct {
	UserID                uuid.UUID
	TourDate              time.Time
	DurationHours         int32
	PartySize             int32
	CustomDiscountPercent *float64
}

// CreateBooking prices the request against the supplied card and modifiers and
// returns a pending booking carrying the full breakdown. The quote is computed
// here and nowhere else so that persistence stores exactly what was priced.
func (f *Factory) CreateBooking(card *pricing.RateCard, modifiers []pricing.Modifier, p CreateParams) (*Booking, error) {
	now := f.Clock.Now()
	if p.TourDate.Before(startOfDay(now)) {
		return nil, ErrDateInPast
	}

	quote, err := pricing.Calculate(card, modifiers, pricing.QuoteInput{
		Date:                  p.TourDate,
		DurationHours:         p.DurationHours,
		PartySize:             p.PartySize,
		CustomDiscountPercent: p.CustomDiscountPercent,
		BookedAt:              now,
	})
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:             uuid.New(),
		userID:         p.UserID,
		categoryKey:    card.Category,
		tourDate:       p.TourDate,
		requestedHours: p.DurationHours,
		partySize:      p.PartySize,
		status:         StatusPending,
		quote:          *quote,
	}, nil
}

// Reprice recomputes a booking's quote from current configuration, keeping the
// original request parameters. Used by the explicit recalculation action.
func (f *Factory) Reprice(b *Booking, card *pricing.RateCard, modifiers []pricing.Modifier, customDiscount *float64) (*pricing.Quote, error) {
	return pricing.Calculate(card, modifiers, pricing.QuoteInput{
		Date:                  b.TourDate(),
		DurationHours:         b.RequestedHours(),
		PartySize:             b.PartySize(),
		CustomDiscountPercent: customDiscount,
		BookedAt:              f.Clock.Now(),
	})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
