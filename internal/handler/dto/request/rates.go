package request

import (
	"encoding/json"
	"time"

	"tour-booking-api/internal/domain/pricing"
)

type UpdateRateConfigRequest struct {
	Value  json.RawMessage `json:"value" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}

type CreateModifierRequest struct {
	Name           string     `json:"name" binding:"required"`
	Kind           string     `json:"kind" binding:"required,oneof=discount surcharge"`
	PercentBps     *int64     `json:"percent_bps,omitempty"`
	FlatCents      *int64     `json:"flat_cents,omitempty"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidTo        *time.Time `json:"valid_to,omitempty"`
	MinAdvanceDays *int32     `json:"min_advance_days,omitempty"`
	MaxAdvanceDays *int32     `json:"max_advance_days,omitempty"`
	MinPartySize   *int32     `json:"min_party_size,omitempty"`
	Exclusive      bool       `json:"exclusive"`
	Active         bool       `json:"active"`
}

func (r CreateModifierRequest) ToDomain() pricing.Modifier {
	return pricing.Modifier{
		Name:           r.Name,
		Kind:           pricing.ModifierKind(r.Kind),
		PercentBps:     r.PercentBps,
		FlatCents:      r.FlatCents,
		ValidFrom:      r.ValidFrom,
		ValidTo:        r.ValidTo,
		MinAdvanceDays: r.MinAdvanceDays,
		MaxAdvanceDays: r.MaxAdvanceDays,
		MinPartySize:   r.MinPartySize,
		Exclusive:      r.Exclusive,
		Active:         r.Active,
	}
}

type SetModifierActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
