package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedRateCard = errors.New("malformed rate card")
	ErrNoMatchingTier    = errors.New("no rate tier matches party size")
)

type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
)

const holidayDateLayout = "2006-01-02"

// RateCard is the parsed, validated form of a rate_configs row. Rates are
// hourly amounts in cents keyed by day type; tiers bracket party sizes.
// Calendar rules (weekend days, holiday dates) belong to the card, not code.
type RateCard struct {
	Category       string
	Currency       string
	TaxRateBps     int64
	DepositRateBps int64
	weekendDays    map[time.Weekday]struct{}
	holidays       map[string]struct{}
	Tiers          []RateTier
}

type RateTier struct {
	Name            string
	MinParty        int32
	MaxParty        int32
	HourlyRateCents map[DayType]int64
	MinimumHours    map[DayType]int32
}

type rateCardJSON struct {
	Currency       string         `json:"currency"`
	TaxRateBps     int64          `json:"tax_rate_bps"`
	DepositRateBps int64          `json:"deposit_rate_bps"`
	WeekendDays    []int          `json:"weekend_days"`
	Holidays       []string       `json:"holidays"`
	Tiers          []rateTierJSON `json:"tiers"`
}

type rateTierJSON struct {
	Name            string           `json:"name"`
	MinParty        int32            `json:"min_party"`
	MaxParty        int32            `json:"max_party"`
	HourlyRateCents map[string]int64 `json:"hourly_rate_cents"`
	MinimumHours    map[string]int32 `json:"minimum_hours"`
}

// ParseRateCard validates the stored JSON shape before any calculation uses
// it. A card that fails here is a configuration-integrity failure for the
// request, never a retryable condition.
func ParseRateCard(category string, raw []byte) (*RateCard, error) {
	var doc rateCardJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRateCard, err)
	}

	if doc.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrMalformedRateCard)
	}
	if doc.TaxRateBps < 0 || doc.TaxRateBps > 10000 {
		return nil, fmt.Errorf("%w: tax_rate_bps out of range", ErrMalformedRateCard)
	}
	if doc.DepositRateBps < 0 || doc.DepositRateBps > 10000 {
		return nil, fmt.Errorf("%w: deposit_rate_bps out of range", ErrMalformedRateCard)
	}
	if len(doc.Tiers) == 0 {
		return nil, fmt.Errorf("%w: at least one tier is required", ErrMalformedRateCard)
	}

	card := &RateCard{
		Category:       category,
		Currency:       doc.Currency,
		TaxRateBps:     doc.TaxRateBps,
		DepositRateBps: doc.DepositRateBps,
		weekendDays:    make(map[time.Weekday]struct{}, len(doc.WeekendDays)),
		holidays:       make(map[string]struct{}, len(doc.Holidays)),
	}

	if len(doc.WeekendDays) == 0 {
		// Saturday/Sunday unless the card says otherwise
		card.weekendDays[time.Saturday] = struct{}{}
		card.weekendDays[time.Sunday] = struct{}{}
	}
	for _, d := range doc.WeekendDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: weekend day %d out of range", ErrMalformedRateCard, d)
		}
		card.weekendDays[time.Weekday(d)] = struct{}{}
	}

	for _, h := range doc.Holidays {
		if _, err := time.Parse(holidayDateLayout, h); err != nil {
			return nil, fmt.Errorf("%w: holiday %q is not a date", ErrMalformedRateCard, h)
		}
		card.holidays[h] = struct{}{}
	}

	for i, t := range doc.Tiers {
		tier, err := parseTier(t)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d (%s): %v", ErrMalformedRateCard, i, t.Name, err)
		}
		card.Tiers = append(card.Tiers, tier)
	}

	return card, nil
}

func parseTier(t rateTierJSON) (RateTier, error) {
	if t.Name == "" {
		return RateTier{}, errors.New("name is required")
	}
	if t.MinParty < 1 || t.MaxParty < t.MinParty {
		return RateTier{}, errors.New("invalid party size bracket")
	}

	tier := RateTier{
		Name:            t.Name,
		MinParty:        t.MinParty,
		MaxParty:        t.MaxParty,
		HourlyRateCents: make(map[DayType]int64, 3),
		MinimumHours:    make(map[DayType]int32, 3),
	}

	for _, dt := range []DayType{DayTypeWeekday, DayTypeWeekend, DayTypeHoliday} {
		rate, ok := t.HourlyRateCents[string(dt)]
		if !ok || rate <= 0 {
			return RateTier{}, fmt.Errorf("missing or non-positive %s hourly rate", dt)
		}
		tier.HourlyRateCents[dt] = rate

		minHours, ok := t.MinimumHours[string(dt)]
		if !ok || minHours < 1 {
			return RateTier{}, fmt.Errorf("missing or non-positive %s minimum hours", dt)
		}
		tier.MinimumHours[dt] = minHours
	}

	return tier, nil
}

// DayTypeFor classifies a tour date. Holidays win over weekend membership.
func (c *RateCard) DayTypeFor(date time.Time) DayType {
	if _, ok := c.holidays[date.Format(holidayDateLayout)]; ok {
		return DayTypeHoliday
	}
	if _, ok := c.weekendDays[date.Weekday()]; ok {
		return DayTypeWeekend
	}
	return DayTypeWeekday
}

// TierFor resolves the party-size bracket. A gap between tiers is a
// configuration defect surfaced as ErrNoMatchingTier.
func (c *RateCard) TierFor(partySize int32) (RateTier, error) {
	for _, t := range c.Tiers {
		if partySize >= t.MinParty && partySize <= t.MaxParty {
			return t, nil
		}
	}
	return RateTier{}, fmt.Errorf("%w: party size %d in category %s", ErrNoMatchingTier, partySize, c.Category)
}
