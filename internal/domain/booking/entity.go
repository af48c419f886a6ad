package booking

import (
	"errors"
	"time"

	"tour-booking-api/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrDateInPast       = errors.New("tour date cannot be in the past")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Booking is a private charter priced by the engine. The attached quote is
// immutable once the booking is confirmed, except through the explicit
// recalculation action.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	categoryKey     string
	tourDate        time.Time
	requestedHours  int32
	partySize       int32
	status          Status
	quote           pricing.Quote
	paymentIntentID *string
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructBooking(
	id, userID uuid.UUID,
	categoryKey string,
	tourDate time.Time,
	requestedHours, partySize int32,
	status Status,
	quote pricing.Quote,
	paymentIntentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		categoryKey:     categoryKey,
		tourDate:        tourDate,
		requestedHours:  requestedHours,
		partySize:       partySize,
		status:          status,
		quote:           quote,
		paymentIntentID: paymentIntentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Recalculate replaces the attached quote from current configuration.
// Cancelled bookings stay frozen.
func (b *Booking) Recalculate(quote pricing.Quote) error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	b.quote = quote
	return nil
}

func (b *Booking) AttachPaymentIntent(intentID string) error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	b.paymentIntentID = &intentID
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) CategoryKey() string      { return b.categoryKey }
func (b *Booking) TourDate() time.Time      { return b.tourDate }
func (b *Booking) RequestedHours() int32    { return b.requestedHours }
func (b *Booking) PartySize() int32         { return b.partySize }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Quote() pricing.Quote     { return b.quote }
func (b *Booking) PaymentIntentID() *string { return b.paymentIntentID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
