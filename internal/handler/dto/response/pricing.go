package response

import (
	"tour-booking-api/internal/domain/pricing"
)

type AppliedModifierResponse struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	AmountCents int64  `json:"amount_cents"`
}

type QuoteResponse struct {
	Category            string                    `json:"category"`
	Currency            string                    `json:"currency"`
	DayType             string                    `json:"day_type"`
	RateTier            string                    `json:"rate_tier"`
	RequestedHours      int32                     `json:"requested_hours"`
	BillableHours       int32                     `json:"billable_hours"`
	MinimumApplied      bool                      `json:"minimum_applied"`
	HoursLabel          string                    `json:"hours_label"`
	HourlyRateCents     int64                     `json:"hourly_rate_cents"`
	SubtotalCents       int64                     `json:"subtotal_cents"`
	ModifierAdjustCents int64                     `json:"modifier_adjust_cents"`
	AppliedModifiers    []AppliedModifierResponse `json:"applied_modifiers"`
	DiscountCents       int64                     `json:"discount_cents"`
	TaxCents            int64                     `json:"tax_cents"`
	TotalCents          int64                     `json:"total_cents"`
	DepositCents        int64                     `json:"deposit_cents"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	applied := make([]AppliedModifierResponse, 0, len(q.AppliedModifiers))
	for _, m := range q.AppliedModifiers {
		applied = append(applied, AppliedModifierResponse{
			Name:        m.Name,
			Kind:        string(m.Kind),
			AmountCents: m.AmountCents,
		})
	}

	return &QuoteResponse{
		Category:            q.Category,
		Currency:            q.Currency,
		DayType:             string(q.DayType),
		RateTier:            q.RateTier,
		RequestedHours:      q.RequestedHours,
		BillableHours:       q.BillableHours,
		MinimumApplied:      q.MinimumApplied,
		HoursLabel:          q.HoursLabel,
		HourlyRateCents:     q.HourlyRateCents,
		SubtotalCents:       q.SubtotalCents,
		ModifierAdjustCents: q.ModifierAdjustCents,
		AppliedModifiers:    applied,
		DiscountCents:       q.DiscountCents,
		TaxCents:            q.TaxCents,
		TotalCents:          q.TotalCents,
		DepositCents:        q.DepositCents,
	}
}
