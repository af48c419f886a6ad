package queries

import (
	"context"
	"log/slog"
	"time"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/pkg/errs"
)

// RateConfigReadStore loads current configuration by key; every calculation
// re-reads it so there is no staleness window (no in-process cache).
type RateConfigReadStore interface {
	FindByKey(ctx context.Context, key string) (*RateConfigView, error)
	FindActiveModifiers(ctx context.Context) ([]pricing.Modifier, error)
}

type QuoteRequest struct {
	CategoryKey           string
	Date                  time.Time
	DurationHours         int32
	PartySize             int32
	CustomDiscountPercent *float64
}

type PricingQueries interface {
	CalculateQuote(ctx context.Context, req QuoteRequest) (*pricing.Quote, error)
}

type pricingQueriesImpl struct {
	rateStore RateConfigReadStore
	clock     clock.Clock
}

func NewPricingQueries(rateStore RateConfigReadStore, clock clock.Clock) PricingQueries {
	return &pricingQueriesImpl{rateStore: rateStore, clock: clock}
}

func (q *pricingQueriesImpl) CalculateQuote(ctx context.Context, req QuoteRequest) (*pricing.Quote, error) {
	configView, err := q.rateStore.FindByKey(ctx, req.CategoryKey)
	if err != nil {
		return nil, err
	}

	card, err := pricing.ParseRateCard(configView.Key, configView.Value)
	if err != nil {
		slog.Error("rate configuration failed validation",
			"category", req.CategoryKey,
			"error", err.Error())
		return nil, errs.Mark(err, errs.ErrRateConfigMalformed)
	}

	modifiers, err := q.rateStore.FindActiveModifiers(ctx)
	if err != nil {
		return nil, err
	}

	return pricing.Calculate(card, modifiers, pricing.QuoteInput{
		Date:                  req.Date,
		DurationHours:         req.DurationHours,
		PartySize:             req.PartySize,
		CustomDiscountPercent: req.CustomDiscountPercent,
		BookedAt:              q.clock.Now(),
	})
}
