package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	MaxDurationHours = 24
	MaxPartySize     = 64
)

var (
	ErrInvalidDuration        = errors.New("duration hours out of range")
	ErrInvalidPartySize       = errors.New("party size out of range")
	ErrInvalidDiscountPercent = errors.New("custom discount percent must be between 0 and 100")
)

type QuoteInput struct {
	Date          time.Time
	DurationHours int32
	PartySize     int32
	// CustomDiscountPercent is an optional percentage in [0,100] subtracted
	// before tax.
	CustomDiscountPercent *float64
	// BookedAt anchors advance-booking-window modifier triggers.
	BookedAt time.Time
}

func (in QuoteInput) Validate() error {
	if in.DurationHours < 1 || in.DurationHours > MaxDurationHours {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, in.DurationHours)
	}
	if in.PartySize < 1 || in.PartySize > MaxPartySize {
		return fmt.Errorf("%w: %d", ErrInvalidPartySize, in.PartySize)
	}
	if in.CustomDiscountPercent != nil {
		if p := *in.CustomDiscountPercent; p < 0 || p > 100 {
			return fmt.Errorf("%w: %v", ErrInvalidDiscountPercent, p)
		}
	}
	return nil
}

// Quote is the full price breakdown. All monetary fields are integer cents so
// SubtotalCents == HourlyRateCents * BillableHours holds exactly.
type Quote struct {
	Category string
	Currency string

	DayType  DayType
	RateTier string

	RequestedHours int32
	BillableHours  int32
	MinimumHours   int32
	MinimumApplied bool
	HoursLabel     string

	HourlyRateCents     int64
	SubtotalCents       int64
	ModifierAdjustCents int64
	AppliedModifiers    []AppliedModifier
	DiscountCents       int64
	TaxCents            int64
	TotalCents          int64
	DepositCents        int64
}

// Calculate prices one request against a rate card and the currently active
// modifiers. It is a pure function of its arguments: identical inputs with an
// unchanged card yield an identical quote.
//
// Order of operations: hourly subtotal, modifier adjustments, custom discount,
// tax on the post-discount amount, deposit on the post-tax total.
func Calculate(card *RateCard, modifiers []Modifier, in QuoteInput) (*Quote, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	dayType := card.DayTypeFor(in.Date)
	tier, err := card.TierFor(in.PartySize)
	if err != nil {
		return nil, err
	}

	hourlyRate := tier.HourlyRateCents[dayType]
	minimumHours := tier.MinimumHours[dayType]

	billable := in.DurationHours
	minimumApplied := false
	if billable < minimumHours {
		billable = minimumHours
		minimumApplied = true
	}

	label := fmt.Sprintf("%dhr", in.DurationHours)
	if minimumApplied {
		label = fmt.Sprintf("%dhr requested, %dhr min", in.DurationHours, minimumHours)
	}

	subtotal := hourlyRate * int64(billable)

	adjust, applied := applyModifiers(modifiers, subtotal, in.Date, in.BookedAt, in.PartySize)
	adjusted := subtotal + adjust

	var discount int64
	if in.CustomDiscountPercent != nil {
		pctBps := int64(math.Round(*in.CustomDiscountPercent * 100))
		discount = adjusted * pctBps / 10000
	}
	if discount > adjusted {
		discount = adjusted
	}

	taxable := adjusted - discount
	tax := taxable * card.TaxRateBps / 10000
	total := taxable + tax
	deposit := total * card.DepositRateBps / 10000

	return &Quote{
		Category:            card.Category,
		Currency:            card.Currency,
		DayType:             dayType,
		RateTier:            tier.Name,
		RequestedHours:      in.DurationHours,
		BillableHours:       billable,
		MinimumHours:        minimumHours,
		MinimumApplied:      minimumApplied,
		HoursLabel:          label,
		HourlyRateCents:     hourlyRate,
		SubtotalCents:       subtotal,
		ModifierAdjustCents: adjust,
		AppliedModifiers:    applied,
		DiscountCents:       discount,
		TaxCents:            tax,
		TotalCents:          total,
		DepositCents:        deposit,
	}, nil
}
