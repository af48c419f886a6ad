//go:build unit || e2e

package builder

import (
	"encoding/json"

	"tour-booking-api/internal/domain/pricing"
)

type RateTierSpec struct {
	Name            string           `json:"name"`
	MinParty        int32            `json:"min_party"`
	MaxParty        int32            `json:"max_party"`
	HourlyRateCents map[string]int64 `json:"hourly_rate_cents"`
	MinimumHours    map[string]int32 `json:"minimum_hours"`
}

type RateCardBuilder struct {
	Category       string
	Currency       string         `json:"currency"`
	TaxRateBps     int64          `json:"tax_rate_bps"`
	DepositRateBps int64          `json:"deposit_rate_bps"`
	WeekendDays    []int          `json:"weekend_days"`
	Holidays       []string       `json:"holidays"`
	Tiers          []RateTierSpec `json:"tiers"`
}

// NewRateCardBuilder yields a card with round rates so expected quote figures
// stay obvious: 4 weekend billable hours at 25000c is exactly 100000c.
func NewRateCardBuilder() *RateCardBuilder {
	return &RateCardBuilder{
		Category:       "wine_tours",
		Currency:       "USD",
		TaxRateBps:     1000,
		DepositRateBps: 2000,
		WeekendDays:    []int{0, 6},
		Holidays:       []string{"2026-12-25"},
		Tiers: []RateTierSpec{
			{
				Name:            "standard",
				MinParty:        1,
				MaxParty:        6,
				HourlyRateCents: map[string]int64{"weekday": 20000, "weekend": 25000, "holiday": 30000},
				MinimumHours:    map[string]int32{"weekday": 2, "weekend": 4, "holiday": 4},
			},
			{
				Name:            "group",
				MinParty:        7,
				MaxParty:        14,
				HourlyRateCents: map[string]int64{"weekday": 35000, "weekend": 40000, "holiday": 50000},
				MinimumHours:    map[string]int32{"weekday": 3, "weekend": 4, "holiday": 5},
			},
		},
	}
}

func (b *RateCardBuilder) With(mutate func(*RateCardBuilder)) *RateCardBuilder {
	mutate(b)
	return b
}

func (b *RateCardBuilder) BuildJSON() []byte {
	raw, err := json.Marshal(b)
	if err != nil {
		panic(err)
	}
	return raw
}

func (b *RateCardBuilder) BuildCard() (*pricing.RateCard, error) {
	return pricing.ParseRateCard(b.Category, b.BuildJSON())
}

// Fluent builder methods
func (b *RateCardBuilder) WithCategory(category string) *RateCardBuilder {
	b.Category = category
	return b
}

func (b *RateCardBuilder) WithCurrency(currency string) *RateCardBuilder {
	b.Currency = currency
	return b
}

func (b *RateCardBuilder) WithTaxRateBps(bps int64) *RateCardBuilder {
	b.TaxRateBps = bps
	return b
}

func (b *RateCardBuilder) WithDepositRateBps(bps int64) *RateCardBuilder {
	b.DepositRateBps = bps
	return b
}

func (b *RateCardBuilder) WithWeekendDays(days ...int) *RateCardBuilder {
	b.WeekendDays = days
	return b
}

func (b *RateCardBuilder) WithHolidays(dates ...string) *RateCardBuilder {
	b.Holidays = dates
	return b
}

func (b *RateCardBuilder) WithTiers(tiers ...RateTierSpec) *RateCardBuilder {
	b.Tiers = tiers
	return b
}
