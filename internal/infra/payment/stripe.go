package payment

import (
	"context"

	"tour-booking-api/internal/pkg/config"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeGateway creates deposit payment intents through Stripe. Amounts are
// already in the smallest currency unit, matching what Stripe expects.
type StripeGateway struct{}

func NewStripeGateway(cfg config.StripeConfig) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, errs.New("stripe secret key is required")
	}

	stripe.Key = cfg.SecretKey

	return &StripeGateway{}, nil
}

func (g *StripeGateway) CreateDepositIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: metadata,
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create stripe payment intent")
	}

	return &commands.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}
