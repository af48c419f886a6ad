//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(bookedAt))
}

func card(t *testing.T) *pricing.RateCard {
	t.Helper()
	c, err := builder.NewRateCardBuilder().BuildCard()
	require.NoError(t, err)
	return c
}

func TestCreateBooking(t *testing.T) {
	t.Run("pending booking carries the computed quote", func(t *testing.T) {
		params := builder.NewBookingBuilder().BuildCreateParams()

		created, err := newFactory().CreateBooking(card(t), nil, params)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, created.ID())
		assert.Equal(t, params.UserID, created.UserID())
		assert.Equal(t, "wine_tours", created.CategoryKey())
		assert.Equal(t, booking.StatusPending, created.Status())

		quote := created.Quote()
		assert.Equal(t, int64(100000), quote.SubtotalCents)
		assert.Equal(t, int64(110000), quote.TotalCents)
	})

	t.Run("date in the past", func(t *testing.T) {
		params := builder.NewBookingBuilder().
			WithTourDate(bookedAt.AddDate(0, 0, -1)).
			BuildCreateParams()

		_, err := newFactory().CreateBooking(card(t), nil, params)
		require.ErrorIs(t, err, booking.ErrDateInPast)
	})

	t.Run("same-day booking is allowed", func(t *testing.T) {
		params := builder.NewBookingBuilder().
			WithTourDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)).
			BuildCreateParams()

		_, err := newFactory().CreateBooking(card(t), nil, params)
		require.NoError(t, err)
	})

	t.Run("pricing failures propagate", func(t *testing.T) {
		params := builder.NewBookingBuilder().WithPartySize(20).BuildCreateParams()

		_, err := newFactory().CreateBooking(card(t), nil, params)
		require.ErrorIs(t, err, pricing.ErrNoMatchingTier)
	})
}

func TestReprice(t *testing.T) {
	factory := newFactory()

	t.Run("keeps the original request parameters", func(t *testing.T) {
		params := builder.NewBookingBuilder().BuildCreateParams()
		created, err := factory.CreateBooking(card(t), nil, params)
		require.NoError(t, err)

		raised, err := builder.NewRateCardBuilder().
			WithTiers(builder.RateTierSpec{
				Name:            "standard",
				MinParty:        1,
				MaxParty:        6,
				HourlyRateCents: map[string]int64{"weekday": 30000, "weekend": 50000, "holiday": 60000},
				MinimumHours:    map[string]int32{"weekday": 2, "weekend": 4, "holiday": 4},
			}).
			BuildCard()
		require.NoError(t, err)

		quote, err := factory.Reprice(created, raised, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, created.RequestedHours(), quote.RequestedHours)
		assert.Equal(t, int64(200000), quote.SubtotalCents)
	})

	t.Run("cancelled bookings reject a new quote", func(t *testing.T) {
		params := builder.NewBookingBuilder().BuildCreateParams()
		created, err := factory.CreateBooking(card(t), nil, params)
		require.NoError(t, err)

		cancelled := booking.ReconstructBooking(
			created.ID(), created.UserID(), created.CategoryKey(), created.TourDate(),
			created.RequestedHours(), created.PartySize(),
			booking.StatusCancelled, created.Quote(), nil, bookedAt, bookedAt,
		)

		err = cancelled.Recalculate(created.Quote())
		require.ErrorIs(t, err, booking.ErrBookingCancelled)
	})
}
