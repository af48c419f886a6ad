package repository

import (
	"context"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, user_id, category_key, tour_date, requested_hours, party_size, status,
    currency, day_type, rate_tier, billable_hours, minimum_applied, hours_label,
    hourly_rate_cents, subtotal_cents, modifier_cents, discount_cents,
    tax_cents, total_cents, deposit_cents
) VALUES (
    $1, $2, $3, $4, $5, $6, $7,
    $8, $9, $10, $11, $12, $13,
    $14, $15, $16, $17, $18, $19, $20
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	q := b.Quote()

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(), b.UserID(), b.CategoryKey(), b.TourDate(), b.RequestedHours(), b.PartySize(), string(b.Status()),
		q.Currency, string(q.DayType), q.RateTier, q.BillableHours, q.MinimumApplied, q.HoursLabel,
		q.HourlyRateCents, q.SubtotalCents, q.ModifierAdjustCents, q.DiscountCents,
		q.TaxCents, q.TotalCents, q.DepositCents,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const findBookingSQL = `
SELECT id, user_id, category_key, tour_date, requested_hours, party_size, status,
       currency, day_type, rate_tier, billable_hours, minimum_applied, hours_label,
       hourly_rate_cents, subtotal_cents, modifier_cents, discount_cents,
       tax_cents, total_cents, deposit_cents, payment_intent_id, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, userID                 uuid.UUID
		categoryKey, status               string
		tourDate, createdAt, updatedAt    time.Time
		requestedHours, partySize         int32
		billableHours                     int32
		minimumApplied                    bool
		currency, dayType, tier, hoursLbl string
		hourlyRate, subtotal, modifierAdj int64
		discount, tax, total, deposit     int64
		paymentIntentID                   *string
	)

	err := dbtx.QueryRow(ctx, findBookingSQL, id).Scan(
		&bookingID, &userID, &categoryKey, &tourDate, &requestedHours, &partySize, &status,
		&currency, &dayType, &tier, &billableHours, &minimumApplied, &hoursLbl,
		&hourlyRate, &subtotal, &modifierAdj, &discount,
		&tax, &total, &deposit, &paymentIntentID, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	bookingStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in store", err)
	}

	quote := pricing.Quote{
		Category:            categoryKey,
		Currency:            currency,
		DayType:             pricing.DayType(dayType),
		RateTier:            tier,
		RequestedHours:      requestedHours,
		BillableHours:       billableHours,
		MinimumApplied:      minimumApplied,
		HoursLabel:          hoursLbl,
		HourlyRateCents:     hourlyRate,
		SubtotalCents:       subtotal,
		ModifierAdjustCents: modifierAdj,
		DiscountCents:       discount,
		TaxCents:            tax,
		TotalCents:          total,
		DepositCents:        deposit,
	}

	return booking.ReconstructBooking(
		bookingID, userID, categoryKey, tourDate, requestedHours, partySize,
		bookingStatus, quote, paymentIntentID, createdAt, updatedAt,
	), nil
}

const updateBookingQuoteSQL = `
UPDATE bookings SET
    day_type = $2, rate_tier = $3, billable_hours = $4, minimum_applied = $5,
    hours_label = $6, hourly_rate_cents = $7, subtotal_cents = $8,
    modifier_cents = $9, discount_cents = $10, tax_cents = $11,
    total_cents = $12, deposit_cents = $13, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateQuote(ctx context.Context, dbtx db.DBTX, id uuid.UUID, q pricing.Quote) error {
	tag, err := dbtx.Exec(ctx, updateBookingQuoteSQL,
		id, string(q.DayType), q.RateTier, q.BillableHours, q.MinimumApplied,
		q.HoursLabel, q.HourlyRateCents, q.SubtotalCents,
		q.ModifierAdjustCents, q.DiscountCents, q.TaxCents,
		q.TotalCents, q.DepositCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const attachPaymentIntentSQL = `
UPDATE bookings SET payment_intent_id = $2, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) AttachPaymentIntent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string) error {
	tag, err := dbtx.Exec(ctx, attachPaymentIntentSQL, id, intentID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
