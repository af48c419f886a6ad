package commands

import "context"

// PaymentIntent is the gateway-neutral result of creating a deposit intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       string
}

// PaymentGateway creates payment intents for booking deposits. The pricing
// engine supplies the amount, nothing more; confirmation flows back through
// the provider's own channels.
type PaymentGateway interface {
	CreateDepositIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}
