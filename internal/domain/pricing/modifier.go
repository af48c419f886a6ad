package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMalformedModifier = errors.New("malformed pricing modifier")

type ModifierKind string

const (
	ModifierKindDiscount  ModifierKind = "discount"
	ModifierKindSurcharge ModifierKind = "surcharge"
)

// Modifier is a conditionally applied discount or surcharge row. Exactly one
// of PercentBps/FlatCents is set. Trigger conditions that are nil always match.
type Modifier struct {
	ID             uuid.UUID
	Name           string
	Kind           ModifierKind
	PercentBps     *int64
	FlatCents      *int64
	ValidFrom      *time.Time
	ValidTo        *time.Time
	MinAdvanceDays *int32
	MaxAdvanceDays *int32
	MinPartySize   *int32
	Exclusive      bool
	Active         bool
}

func (m Modifier) Validate() error {
	if m.Kind != ModifierKindDiscount && m.Kind != ModifierKindSurcharge {
		return ErrMalformedModifier
	}
	if (m.PercentBps == nil) == (m.FlatCents == nil) {
		return ErrMalformedModifier
	}
	if m.PercentBps != nil && (*m.PercentBps < 0 || *m.PercentBps > 10000) {
		return ErrMalformedModifier
	}
	if m.FlatCents != nil && *m.FlatCents < 0 {
		return ErrMalformedModifier
	}
	return nil
}

// Matches reports whether the modifier's trigger conditions hold for a tour on
// date, booked at bookedAt, for partySize guests.
func (m Modifier) Matches(date, bookedAt time.Time, partySize int32) bool {
	if !m.Active {
		return false
	}
	if m.ValidFrom != nil && date.Before(*m.ValidFrom) {
		return false
	}
	if m.ValidTo != nil && date.After(*m.ValidTo) {
		return false
	}
	if m.MinAdvanceDays != nil || m.MaxAdvanceDays != nil {
		advance := advanceDays(date, bookedAt)
		if m.MinAdvanceDays != nil && advance < *m.MinAdvanceDays {
			return false
		}
		if m.MaxAdvanceDays != nil && advance > *m.MaxAdvanceDays {
			return false
		}
	}
	if m.MinPartySize != nil && partySize < *m.MinPartySize {
		return false
	}
	return true
}

// amount returns the signed adjustment in cents against base; discounts are
// negative, surcharges positive.
func (m Modifier) amount(base int64) int64 {
	var v int64
	switch {
	case m.PercentBps != nil:
		v = base * *m.PercentBps / 10000
	case m.FlatCents != nil:
		v = *m.FlatCents
	}
	if m.Kind == ModifierKindDiscount {
		return -v
	}
	return v
}

type AppliedModifier struct {
	ID          uuid.UUID
	Name        string
	Kind        ModifierKind
	AmountCents int64
}

// applyModifiers combines matching modifiers additively. The first matching
// exclusive modifier (in the order they were supplied, i.e. creation order)
// overrides all others; the combination policy lives in the rows, not here.
func applyModifiers(modifiers []Modifier, base int64, date, bookedAt time.Time, partySize int32) (int64, []AppliedModifier) {
	var matched []Modifier
	for _, m := range modifiers {
		if !m.Matches(date, bookedAt, partySize) {
			continue
		}
		if m.Exclusive {
			matched = []Modifier{m}
			break
		}
		matched = append(matched, m)
	}

	var total int64
	applied := make([]AppliedModifier, 0, len(matched))
	for _, m := range matched {
		amount := m.amount(base)
		total += amount
		applied = append(applied, AppliedModifier{
			ID:          m.ID,
			Name:        m.Name,
			Kind:        m.Kind,
			AmountCents: amount,
		})
	}

	// Combined discounts never push the pre-tax amount below zero.
	if base+total < 0 {
		total = -base
	}

	return total, applied
}

func advanceDays(date, bookedAt time.Time) int32 {
	d := date.Truncate(24 * time.Hour).Sub(bookedAt.Truncate(24 * time.Hour))
	if d < 0 {
		return 0
	}
	return int32(d / (24 * time.Hour))
}
