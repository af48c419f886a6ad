package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TourView struct {
	ID             uuid.UUID `json:"id"`
	OperatorID     uuid.UUID `json:"operator_id"`
	Title          string    `json:"title"`
	CategoryKey    string    `json:"category_key"`
	DepartsAt      time.Time `json:"departs_at"`
	Capacity       int32     `json:"capacity"`
	SeatPriceCents int64     `json:"seat_price_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AvailabilityView struct {
	TourID    uuid.UUID `json:"tour_id"`
	Available bool      `json:"available"`
	Remaining int32     `json:"remaining"`
	Reason    *string   `json:"reason,omitempty"`
}

type TicketView struct {
	ID          uuid.UUID `json:"id"`
	TourID      uuid.UUID `json:"tour_id"`
	TourTitle   string    `json:"tour_title"`
	UserID      uuid.UUID `json:"user_id"`
	Quantity    int32     `json:"quantity"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	CategoryKey     string    `json:"category_key"`
	TourDate        time.Time `json:"tour_date"`
	RequestedHours  int32     `json:"requested_hours"`
	PartySize       int32     `json:"party_size"`
	Status          string    `json:"status"`
	Currency        string    `json:"currency"`
	DayType         string    `json:"day_type"`
	RateTier        string    `json:"rate_tier"`
	BillableHours   int32     `json:"billable_hours"`
	MinimumApplied  bool      `json:"minimum_applied"`
	HoursLabel      string    `json:"hours_label"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	SubtotalCents   int64     `json:"subtotal_cents"`
	ModifierCents   int64     `json:"modifier_cents"`
	DiscountCents   int64     `json:"discount_cents"`
	TaxCents        int64     `json:"tax_cents"`
	TotalCents      int64     `json:"total_cents"`
	DepositCents    int64     `json:"deposit_cents"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	CategoryKey string    `json:"category_key"`
	TourDate    time.Time `json:"tour_date"`
	PartySize   int32     `json:"party_size"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type RateConfigView struct {
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description,omitempty"`
	UpdatedBy   *uuid.UUID      `json:"updated_by,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RateConfigChangeView struct {
	ID        uuid.UUID       `json:"id"`
	ConfigKey string          `json:"config_key"`
	OldValue  json.RawMessage `json:"old_value"`
	NewValue  json.RawMessage `json:"new_value"`
	Actor     uuid.UUID       `json:"actor"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
}

type ModifierView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Kind           string     `json:"kind"`
	PercentBps     *int64     `json:"percent_bps,omitempty"`
	FlatCents      *int64     `json:"flat_cents,omitempty"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidTo        *time.Time `json:"valid_to,omitempty"`
	MinAdvanceDays *int32     `json:"min_advance_days,omitempty"`
	MaxAdvanceDays *int32     `json:"max_advance_days,omitempty"`
	MinPartySize   *int32     `json:"min_party_size,omitempty"`
	Exclusive      bool       `json:"exclusive"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	OperatorID *uuid.UUID `json:"operator_id,omitempty"`
	IsActive   bool       `json:"is_active"`
}
