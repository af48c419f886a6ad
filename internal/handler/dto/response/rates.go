package response

import (
	"encoding/json"
	"time"

	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RateConfigResponse struct {
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description,omitempty"`
	UpdatedBy   *uuid.UUID      `json:"updated_by,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RateConfigChangeResponse struct {
	ID        uuid.UUID       `json:"id"`
	ConfigKey string          `json:"config_key"`
	OldValue  json.RawMessage `json:"old_value"`
	NewValue  json.RawMessage `json:"new_value"`
	Actor     uuid.UUID       `json:"actor"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
}

type ModifierResponse struct {
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

func FromRateConfigView(v *queries.RateConfigView) *RateConfigResponse {
	return &RateConfigResponse{
		Key:         v.Key,
		Value:       v.Value,
		Description: v.Description,
		UpdatedBy:   v.UpdatedBy,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromRateConfigChangeViews(views []*queries.RateConfigChangeView) []*RateConfigChangeResponse {
	out := make([]*RateConfigChangeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &RateConfigChangeResponse{
			ID:        v.ID,
			ConfigKey: v.ConfigKey,
			OldValue:  v.OldValue,
			NewValue:  v.NewValue,
			Actor:     v.Actor,
			Reason:    v.Reason,
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}

func FromModifierView(v *queries.ModifierView) *ModifierResponse {
	return &ModifierResponse{
		ID:             v.ID,
		Name:           v.Name,
		Kind:           v.Kind,
		PercentBps:     v.PercentBps,
		FlatCents:      v.FlatCents,
		ValidFrom:      v.ValidFrom,
		ValidTo:        v.ValidTo,
		MinAdvanceDays: v.MinAdvanceDays,
		MaxAdvanceDays: v.MaxAdvanceDays,
		MinPartySize:   v.MinPartySize,
		Exclusive:      v.Exclusive,
		Active:         v.Active,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromModifierViews(views []*queries.ModifierView) []*ModifierResponse {
	out := make([]*ModifierResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromModifierView(v))
	}
	return out
}
