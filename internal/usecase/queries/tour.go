package queries

import (
	"context"

	"tour-booking-api/internal/domain/tour"

	"github.com/google/uuid"
)

type TourReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TourView, error)
	FindOpen(ctx context.Context, limit int32) ([]*TourView, error)
	// CountBookedSeats sums active ticket quantities without locking; the
	// advisory availability endpoint is best-effort by design.
	CountBookedSeats(ctx context.Context, tourID uuid.UUID) (int32, error)
}

type TourQueries interface {
	ListOpen(ctx context.Context, limit int) ([]*TourView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TourView, error)
	// CheckAvailability is the advisory read; the result may be stale by the
	// time of purchase and the purchase path re-checks under lock.
	CheckAvailability(ctx context.Context, tourID uuid.UUID, requested int32) (*AvailabilityView, error)
}

type tourQueriesImpl struct {
	store TourReadStore
}

func NewTourQueries(store TourReadStore) TourQueries {
	return &tourQueriesImpl{store: store}
}

func (q *tourQueriesImpl) ListOpen(ctx context.Context, limit int) ([]*TourView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindOpen(ctx, int32(limit))
}

func (q *tourQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TourView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *tourQueriesImpl) CheckAvailability(ctx context.Context, tourID uuid.UUID, requested int32) (*AvailabilityView, error) {
	tourView, err := q.store.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	booked, err := q.store.CountBookedSeats(ctx, tourID)
	if err != nil {
		return nil, err
	}

	availability, err := tour.CheckAvailability(tourView.Capacity, booked, requested)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		TourID:    tourID,
		Available: availability.Available,
		Remaining: availability.Remaining,
	}
	if availability.Reason != "" {
		reason := availability.Reason
		view.Reason = &reason
	}
	return view, nil
}
