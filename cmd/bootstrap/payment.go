package bootstrap

import (
	"tour-booking-api/internal/infra/payment"
	"tour-booking-api/internal/pkg/config"
	"tour-booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) (*payment.StripeGateway, error) {
	return payment.NewStripeGateway(cfg.Stripe)
}
