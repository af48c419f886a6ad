//go:build unit

package tour_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/tour"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailability(t *testing.T) {
	cases := []struct {
		name          string
		capacity      int32
		bookedSeats   int32
		requested     int32
		wantAvailable bool
		wantRemaining int32
		wantReason    string
		errIs         error
	}{
		{
			name:     "empty tour has full capacity",
			capacity: 20, bookedSeats: 0, requested: 2,
			wantAvailable: true, wantRemaining: 20,
		},
		{
			name:     "request exactly fills the tour",
			capacity: 20, bookedSeats: 18, requested: 2,
			wantAvailable: true, wantRemaining: 2,
		},
		{
			name:     "last seat",
			capacity: 20, bookedSeats: 19, requested: 1,
			wantAvailable: true, wantRemaining: 1,
		},
		{
			name:     "sold out",
			capacity: 20, bookedSeats: 20, requested: 1,
			wantAvailable: false, wantRemaining: 0, wantReason: tour.ReasonSoldOut,
		},
		{
			name:     "request exceeds remaining seats",
			capacity: 20, bookedSeats: 18, requested: 3,
			wantAvailable: false, wantRemaining: 2, wantReason: tour.ReasonInsufficientCapacity,
		},
		{
			name:     "overbooked counts as sold out",
			capacity: 20, bookedSeats: 25, requested: 1,
			wantAvailable: false, wantRemaining: 0, wantReason: tour.ReasonSoldOut,
		},
		{
			name:     "zero requested seats",
			capacity: 20, bookedSeats: 0, requested: 0,
			errIs: tour.ErrInvalidTicketCount,
		},
		{
			name:     "negative requested seats",
			capacity: 20, bookedSeats: 0, requested: -1,
			errIs: tour.ErrInvalidTicketCount,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := tour.CheckAvailability(c.capacity, c.bookedSeats, c.requested)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.wantAvailable, got.Available)
			assert.Equal(t, c.wantRemaining, got.Remaining)
			assert.Equal(t, c.wantReason, got.Reason)
		})
	}
}

func TestNewTour(t *testing.T) {
	operatorID := uuid.New()
	departsAt := time.Date(2026, 10, 3, 17, 0, 0, 0, time.UTC)

	t.Run("new tours start as drafts", func(t *testing.T) {
		created, err := tour.NewTour(operatorID, "Sunset Vineyard Walk", "wine_tours", departsAt, 20, 8500)
		require.NoError(t, err)
		assert.Equal(t, tour.StatusDraft, created.Status())
		assert.Equal(t, int32(20), created.Capacity())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			title    string
			capacity int32
			price    int64
			errIs    error
		}{
			{name: "empty title", title: "", capacity: 20, price: 8500, errIs: tour.ErrEmptyTitle},
			{name: "zero capacity", title: "Walk", capacity: 0, price: 8500, errIs: tour.ErrInvalidCapacity},
			{name: "zero seat price", title: "Walk", capacity: 20, price: 0, errIs: tour.ErrInvalidSeatPrice},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := tour.NewTour(operatorID, c.title, "wine_tours", departsAt, c.capacity, c.price)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}
