package readstore

import (
	"context"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingByIDSQL = `
SELECT b.id, b.user_id, u.email, b.category_key, b.tour_date, b.requested_hours,
       b.party_size, b.status, b.currency, b.day_type, b.rate_tier,
       b.billable_hours, b.minimum_applied, b.hours_label, b.hourly_rate_cents,
       b.subtotal_cents, b.modifier_cents, b.discount_cents, b.tax_cents,
       b.total_cents, b.deposit_cents, b.payment_intent_id, b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.CategoryKey, &v.TourDate, &v.RequestedHours,
		&v.PartySize, &v.Status, &v.Currency, &v.DayType, &v.RateTier,
		&v.BillableHours, &v.MinimumApplied, &v.HoursLabel, &v.HourlyRateCents,
		&v.SubtotalCents, &v.ModifierCents, &v.DiscountCents, &v.TaxCents,
		&v.TotalCents, &v.DepositCents, &v.PaymentIntentID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

const findBookingsByUserSQL = `
SELECT id, category_key, tour_date, party_size, status, total_cents, created_at
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, findBookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.CategoryKey, &item.TourDate, &item.PartySize,
			&item.Status, &item.TotalCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}
