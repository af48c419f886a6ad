package shared

import (
	"context"
	"encoding/json"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Tickets() TicketRepository
	RateConfigs() RateConfigRepository
	Modifiers() ModifierRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RateConfigByKey(ctx context.Context, key string) (*RateConfigSnapshot, error)
	ActiveModifiers(ctx context.Context) ([]pricing.Modifier, error)
	ModifierByID(ctx context.Context, id uuid.UUID) (*pricing.Modifier, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// RateConfigSnapshot is the raw rate_configs row; callers parse and validate
// the value through pricing.ParseRateCard before use.
type RateConfigSnapshot struct {
	Key         string
	Value       json.RawMessage
	Description *string
	UpdatedBy   *uuid.UUID
	UpdatedAt   time.Time
}

// TourSeatState is the locked view of a tour's capacity during a purchase:
// capacity plus the sum of active ticket quantities, read under FOR UPDATE.
type TourSeatState struct {
	TourID         uuid.UUID
	Capacity       int32
	BookedSeats    int32
	SeatPriceCents int64
	Status         string
	DepartsAt      time.Time
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultEntityID  *uuid.UUID
	ExpiresAt       time.Time
}

type TicketInsert struct {
	TourID      uuid.UUID
	UserID      uuid.UUID
	Quantity    int32
	AmountCents int64
	Status      string
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateQuote(ctx context.Context, dbtx db.DBTX, id uuid.UUID, q pricing.Quote) error
	AttachPaymentIntent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string) error
}

type TicketRepository interface {
	// LockTourSeats reads the tour row FOR UPDATE and sums active ticket
	// quantities in the same transaction. The lock closes the check-then-act
	// race between concurrent purchases.
	LockTourSeats(ctx context.Context, dbtx db.DBTX, tourID uuid.UUID) (*TourSeatState, error)
	Insert(ctx context.Context, dbtx db.DBTX, t TicketInsert) (uuid.UUID, error)
}

type RateConfigRepository interface {
	Update(ctx context.Context, dbtx db.DBTX, key string, value json.RawMessage, actor uuid.UUID) error
	AppendChange(ctx context.Context, dbtx db.DBTX, key string, oldValue, newValue json.RawMessage, actor uuid.UUID, reason string) error
}

type ModifierRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, m pricing.Modifier) (uuid.UUID, error)
	SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key with ON CONFLICT DO NOTHING and reports whether
	// this call took ownership.
	TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultHash string, resultEntityID uuid.UUID) error
	ClaimExpiredKey(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
