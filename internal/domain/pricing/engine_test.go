//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saturday  = time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC)
	christmas = time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	bookedAt  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func mustCard(t *testing.T, b *builder.RateCardBuilder) *pricing.RateCard {
	t.Helper()
	card, err := b.BuildCard()
	require.NoError(t, err)
	return card
}

func TestCalculate(t *testing.T) {
	t.Run("basic weekend quote", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())

		quote, err := pricing.Calculate(card, nil, pricing.QuoteInput{
			Date:          saturday,
			DurationHours: 4,
			PartySize:     4,
			BookedAt:      bookedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, pricing.DayTypeWeekend, quote.DayType)
		assert.Equal(t, "standard", quote.RateTier)
		assert.Equal(t, int32(4), quote.BillableHours)
		assert.False(t, quote.MinimumApplied)
		assert.Equal(t, "4hr", quote.HoursLabel)
		assert.Equal(t, int64(25000), quote.HourlyRateCents)
		assert.Equal(t, int64(100000), quote.SubtotalCents)
		assert.Equal(t, int64(10000), quote.TaxCents)
		assert.Equal(t, int64(110000), quote.TotalCents)
		assert.Equal(t, int64(22000), quote.DepositCents)
	})

	t.Run("minimum hours lift the billable duration", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())

		quote, err := pricing.Calculate(card, nil, pricing.QuoteInput{
			Date:          saturday,
			DurationHours: 2,
			PartySize:     4,
			BookedAt:      bookedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, int32(2), quote.RequestedHours)
		assert.Equal(t, int32(4), quote.BillableHours)
		assert.True(t, quote.MinimumApplied)
		assert.Equal(t, "2hr requested, 4hr min", quote.HoursLabel)
		assert.Equal(t, int64(100000), quote.SubtotalCents)
	})

	t.Run("day type resolution", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())

		cases := []struct {
			name     string
			date     time.Time
			dayType  pricing.DayType
			rateCent int64
		}{
			{name: "weekday rate", date: wednesday, dayType: pricing.DayTypeWeekday, rateCent: 20000},
			{name: "weekend rate", date: saturday, dayType: pricing.DayTypeWeekend, rateCent: 25000},
			{name: "holiday beats weekend membership", date: christmas, dayType: pricing.DayTypeHoliday, rateCent: 30000},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				quote, err := pricing.Calculate(card, nil, pricing.QuoteInput{
					Date:          c.date,
					DurationHours: 4,
					PartySize:     4,
					BookedAt:      bookedAt,
				})
				require.NoError(t, err)
				assert.Equal(t, c.dayType, quote.DayType)
				assert.Equal(t, c.rateCent, quote.HourlyRateCents)
			})
		}
	})

	t.Run("party size selects the tier", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())

		quote, err := pricing.Calculate(card, nil, pricing.QuoteInput{
			Date:          saturday,
			DurationHours: 4,
			PartySize:     8,
			BookedAt:      bookedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, "group", quote.RateTier)
		assert.Equal(t, int64(40000), quote.HourlyRateCents)
	})

	t.Run("party size outside every tier", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())

		_, err := pricing.Calculate(card, nil, pricing.QuoteInput{
			Date:          saturday,
			DurationHours: 4,
			PartySize:     20,
			BookedAt:      bookedAt,
		})
		require.ErrorIs(t, err, pricing.ErrNoMatchingTier)
	})

	t.Run("custom discount applies before tax", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())
		pct := 10.0

		quote, err := pricing.Calculate(card, nil, pricing.QuoteInput{
			Date:                  saturday,
			DurationHours:         4,
			PartySize:             4,
			CustomDiscountPercent: &pct,
			BookedAt:              bookedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(100000), quote.SubtotalCents)
		assert.Equal(t, int64(10000), quote.DiscountCents)
		assert.Equal(t, int64(9000), quote.TaxCents)
		assert.Equal(t, int64(99000), quote.TotalCents)
		assert.Equal(t, int64(19800), quote.DepositCents)
	})

	t.Run("full discount floors the total at zero", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())
		pct := 100.0

		quote, err := pricing.Calculate(card, nil, pricing.QuoteInput{
			Date:                  saturday,
			DurationHours:         4,
			PartySize:             4,
			CustomDiscountPercent: &pct,
			BookedAt:              bookedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(100000), quote.DiscountCents)
		assert.Equal(t, int64(0), quote.TaxCents)
		assert.Equal(t, int64(0), quote.TotalCents)
		assert.Equal(t, int64(0), quote.DepositCents)
	})

	t.Run("input validation", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())
		negative := -1.0
		over := 101.0

		cases := []struct {
			name  string
			in    pricing.QuoteInput
			errIs error
		}{
			{
				name:  "zero duration",
				in:    pricing.QuoteInput{Date: saturday, DurationHours: 0, PartySize: 4, BookedAt: bookedAt},
				errIs: pricing.ErrInvalidDuration,
			},
			{
				name:  "duration above the ceiling",
				in:    pricing.QuoteInput{Date: saturday, DurationHours: pricing.MaxDurationHours + 1, PartySize: 4, BookedAt: bookedAt},
				errIs: pricing.ErrInvalidDuration,
			},
			{
				name:  "zero party size",
				in:    pricing.QuoteInput{Date: saturday, DurationHours: 4, PartySize: 0, BookedAt: bookedAt},
				errIs: pricing.ErrInvalidPartySize,
			},
			{
				name:  "party size above the ceiling",
				in:    pricing.QuoteInput{Date: saturday, DurationHours: 4, PartySize: pricing.MaxPartySize + 1, BookedAt: bookedAt},
				errIs: pricing.ErrInvalidPartySize,
			},
			{
				name:  "negative discount percent",
				in:    pricing.QuoteInput{Date: saturday, DurationHours: 4, PartySize: 4, CustomDiscountPercent: &negative, BookedAt: bookedAt},
				errIs: pricing.ErrInvalidDiscountPercent,
			},
			{
				name:  "discount percent above 100",
				in:    pricing.QuoteInput{Date: saturday, DurationHours: 4, PartySize: 4, CustomDiscountPercent: &over, BookedAt: bookedAt},
				errIs: pricing.ErrInvalidDiscountPercent,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := pricing.Calculate(card, nil, c.in)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("identical inputs yield identical quotes", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder())
		in := pricing.QuoteInput{
			Date:          saturday,
			DurationHours: 5,
			PartySize:     9,
			BookedAt:      bookedAt,
		}

		first, err := pricing.Calculate(card, nil, in)
		require.NoError(t, err)
		second, err := pricing.Calculate(card, nil, in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestParseRateCard(t *testing.T) {
	t.Run("valid card", func(t *testing.T) {
		card, err := builder.NewRateCardBuilder().BuildCard()
		require.NoError(t, err)
		assert.Equal(t, "wine_tours", card.Category)
		assert.Equal(t, "USD", card.Currency)
		assert.Len(t, card.Tiers, 2)
	})

	t.Run("malformed cards", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.RateCardBuilder)
		}{
			{name: "missing currency", mutate: func(b *builder.RateCardBuilder) { b.Currency = "" }},
			{name: "tax rate above 100%", mutate: func(b *builder.RateCardBuilder) { b.TaxRateBps = 10001 }},
			{name: "negative deposit rate", mutate: func(b *builder.RateCardBuilder) { b.DepositRateBps = -1 }},
			{name: "no tiers", mutate: func(b *builder.RateCardBuilder) { b.Tiers = nil }},
			{name: "weekend day out of range", mutate: func(b *builder.RateCardBuilder) { b.WeekendDays = []int{7} }},
			{name: "holiday is not a date", mutate: func(b *builder.RateCardBuilder) { b.Holidays = []string{"december 25"} }},
			{
				name: "tier missing a day type rate",
				mutate: func(b *builder.RateCardBuilder) {
					b.Tiers = []builder.RateTierSpec{{
						Name:            "standard",
						MinParty:        1,
						MaxParty:        6,
						HourlyRateCents: map[string]int64{"weekday": 20000},
						MinimumHours:    map[string]int32{"weekday": 2, "weekend": 2, "holiday": 2},
					}}
				},
			},
			{
				name: "tier with inverted party bracket",
				mutate: func(b *builder.RateCardBuilder) {
					b.Tiers[0].MinParty = 6
					b.Tiers[0].MaxParty = 1
				},
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := builder.NewRateCardBuilder().With(c.mutate).BuildCard()
				require.ErrorIs(t, err, pricing.ErrMalformedRateCard)
			})
		}
	})

	t.Run("not JSON at all", func(t *testing.T) {
		_, err := pricing.ParseRateCard("wine_tours", []byte("not json"))
		require.ErrorIs(t, err, pricing.ErrMalformedRateCard)
	})

	t.Run("weekend defaults to Saturday and Sunday", func(t *testing.T) {
		card := mustCard(t, builder.NewRateCardBuilder().With(func(b *builder.RateCardBuilder) {
			b.WeekendDays = nil
		}))

		assert.Equal(t, pricing.DayTypeWeekend, card.DayTypeFor(saturday))
		assert.Equal(t, pricing.DayTypeWeekday, card.DayTypeFor(wednesday))
	})
}
