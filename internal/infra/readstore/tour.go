package readstore

import (
	"context"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourReadStore struct {
	db db.DBTX
}

func NewTourReadStore(dbtx db.DBTX) *TourReadStore {
	return &TourReadStore{db: dbtx}
}

const findTourByIDSQL = `
SELECT id, operator_id, title, category_key, departs_at, capacity,
       seat_price_cents, status, created_at, updated_at
FROM tours
WHERE id = $1`

func (s *TourReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TourView, error) {
	var v queries.TourView
	err := s.db.QueryRow(ctx, findTourByIDSQL, id).Scan(
		&v.ID, &v.OperatorID, &v.Title, &v.CategoryKey, &v.DepartsAt, &v.Capacity,
		&v.SeatPriceCents, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tour not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tour", err)
	}
	return &v, nil
}

const findOpenToursSQL = `
SELECT id, operator_id, title, category_key, departs_at, capacity,
       seat_price_cents, status, created_at, updated_at
FROM tours
WHERE status = 'open'
ORDER BY departs_at
LIMIT $1`

func (s *TourReadStore) FindOpen(ctx context.Context, limit int32) ([]*queries.TourView, error) {
	rows, err := s.db.Query(ctx, findOpenToursSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open tours", err)
	}
	defer rows.Close()

	var views []*queries.TourView
	for rows.Next() {
		var v queries.TourView
		if err := rows.Scan(
			&v.ID, &v.OperatorID, &v.Title, &v.CategoryKey, &v.DepartsAt, &v.Capacity,
			&v.SeatPriceCents, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tour row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tour rows", err)
	}

	return views, nil
}

const countBookedSeatsSQL = `
SELECT COALESCE(SUM(quantity), 0)::int
FROM tickets
WHERE tour_id = $1 AND status = 'active'`

func (s *TourReadStore) CountBookedSeats(ctx context.Context, tourID uuid.UUID) (int32, error) {
	var booked int32
	if err := s.db.QueryRow(ctx, countBookedSeatsSQL, tourID).Scan(&booked); err != nil {
		return 0, infra.WrapRepoErr("failed to count booked seats", err)
	}
	return booked, nil
}
