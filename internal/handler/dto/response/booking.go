package response

import (
	"time"

	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	CategoryKey     string    `json:"category_key"`
	TourDate        string    `json:"tour_date"`
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

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryKey string    `json:"category_key"`
	TourDate    string    `json:"tour_date"`
	PartySize   int32     `json:"party_size"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type DepositIntentResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	AmountCents     int64  `json:"amount_cents"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		UserEmail:       v.UserEmail,
		CategoryKey:     v.CategoryKey,
		TourDate:        v.TourDate.Format("2006-01-02"),
		RequestedHours:  v.RequestedHours,
		PartySize:       v.PartySize,
		Status:          v.Status,
		Currency:        v.Currency,
		DayType:         v.DayType,
		RateTier:        v.RateTier,
		BillableHours:   v.BillableHours,
		MinimumApplied:  v.MinimumApplied,
		HoursLabel:      v.HoursLabel,
		HourlyRateCents: v.HourlyRateCents,
		SubtotalCents:   v.SubtotalCents,
		ModifierCents:   v.ModifierCents,
		DiscountCents:   v.DiscountCents,
		TaxCents:        v.TaxCents,
		TotalCents:      v.TotalCents,
		DepositCents:    v.DepositCents,
		PaymentIntentID: v.PaymentIntentID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &BookingListResponse{
			ID:          item.ID,
			CategoryKey: item.CategoryKey,
			TourDate:    item.TourDate.Format("2006-01-02"),
			PartySize:   item.PartySize,
			Status:      item.Status,
			TotalCents:  item.TotalCents,
			CreatedAt:   item.CreatedAt,
		})
	}
	return out
}
