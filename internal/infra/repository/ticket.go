package repository

import (
	"context"
	"time"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type TicketRepository struct{}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

// The tour row lock serializes concurrent purchases for the same tour; the
// booked-seat sum runs in the same transaction so the count it returns cannot
// be invalidated before the insert commits.
const lockTourSeatsSQL = `
SELECT t.id, t.capacity, t.seat_price_cents, t.status, t.departs_at,
       COALESCE((SELECT SUM(tk.quantity) FROM tickets tk
                 WHERE tk.tour_id = t.id AND tk.status = 'active'), 0)::int AS booked_seats
FROM tours t
WHERE t.id = $1
FOR UPDATE OF t`

func (r *TicketRepository) LockTourSeats(ctx context.Context, dbtx db.DBTX, tourID uuid.UUID) (*shared.TourSeatState, error) {
	var (
		id             uuid.UUID
		capacity       int32
		seatPriceCents int64
		status         string
		departsAt      time.Time
		bookedSeats    int32
	)

	err := dbtx.QueryRow(ctx, lockTourSeatsSQL, tourID).Scan(
		&id, &capacity, &seatPriceCents, &status, &departsAt, &bookedSeats,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tour not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock tour seats", err)
	}

	return &shared.TourSeatState{
		TourID:         id,
		Capacity:       capacity,
		BookedSeats:    bookedSeats,
		SeatPriceCents: seatPriceCents,
		Status:         status,
		DepartsAt:      departsAt,
	}, nil
}

const insertTicketSQL = `
INSERT INTO tickets (id, tour_id, user_id, quantity, amount_cents, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *TicketRepository) Insert(ctx context.Context, dbtx db.DBTX, t shared.TicketInsert) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertTicketSQL,
		uuid.New(), t.TourID, t.UserID, t.Quantity, t.AmountCents, t.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert ticket", err)
	}
	return id, nil
}
