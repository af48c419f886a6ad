package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/queries"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRequest = errs.New("duplicate request with different parameters")
)

const bookingIdempotencyTTL = 24 * time.Hour

type CreateBookingParams struct {
	CategoryKey           string
	TourDate              time.Time
	DurationHours         int32
	PartySize             int32
	CustomDiscountPercent *float64
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	RecalculateBooking(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error)
	CreateDepositIntent(ctx context.Context, bookingID, actor uuid.UUID, actorIsStaff bool) (*PaymentIntent, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	gateway        PaymentGateway
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	gateway PaymentGateway,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		factory:        factory,
		gateway:        gateway,
		clock:          clock,
	}
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := hashRequest(params)
	expiresAt := b.clock.Now().Add(bookingIdempotencyTTL)

	replayed, err := b.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	card, modifiers, err := b.loadPricingConfig(ctx, params.CategoryKey)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := b.factory.CreateBooking(card, modifiers, booking.CreateParams{
		UserID:                userID,
		TourDate:              params.TourDate,
		DurationHours:         params.DurationHours,
		PartySize:             params.PartySize,
		CustomDiscountPercent: params.CustomDiscountPercent,
	})
	if err != nil {
		return nil, markPricingError(err)
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Bookings().Create(ctx, tx.DB(), bookingEntity)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		bookingID = id

		if notifyErr := enqueueBookingNotification(ctx, tx, b.clock.Now(), id, "booking_created"); notifyErr != nil {
			return errs.Mark(notifyErr, errs.ErrDatabaseOperationFailed)
		}

		resultHash := hashID(id)
		if idemErr := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, resultHash, id); idemErr != nil {
			return errs.Mark(idemErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

// RecalculateBooking re-prices a booking from current configuration. This is
// the only mutation allowed on a confirmed booking's breakdown.
func (b *bookingCommandsImpl) RecalculateBooking(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingEntity, findErr := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}

		card, modifiers, loadErr := b.loadPricingConfigTx(ctx, tx, bookingEntity.CategoryKey())
		if loadErr != nil {
			return loadErr
		}

		// Custom discounts do not survive recalculation; the action re-prices
		// from configuration alone.
		quote, calcErr := b.factory.Reprice(bookingEntity, card, modifiers, nil)
		if calcErr != nil {
			return markPricingError(calcErr)
		}

		if applyErr := bookingEntity.Recalculate(*quote); applyErr != nil {
			return errs.Mark(applyErr, errs.ErrDomainValidation)
		}

		if updateErr := tx.Bookings().UpdateQuote(ctx, tx.DB(), bookingID, *quote); updateErr != nil {
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}

		return enqueueBookingNotification(ctx, tx, b.clock.Now(), bookingID, "booking_repriced")
	})
	if err != nil {
		return nil, err
	}

	return b.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (b *bookingCommandsImpl) CreateDepositIntent(ctx context.Context, bookingID, actor uuid.UUID, actorIsStaff bool) (*PaymentIntent, error) {
	view, err := b.bookingQueries.GetByID(ctx, actor, actorIsStaff, bookingID)
	if err != nil {
		return nil, err
	}

	intent, err := b.gateway.CreateDepositIntent(ctx, view.DepositCents, view.Currency, map[string]string{
		"booking_id": bookingID.String(),
		"category":   view.CategoryKey,
	})
	if err != nil {
		return nil, errs.Wrap(err, "payment gateway rejected deposit intent")
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().AttachPaymentIntent(ctx, tx.DB(), bookingID, intent.ID)
	})
	if err != nil {
		// Intent exists at the provider but the reference write failed; log
		// with enough context to reconcile manually.
		slog.Error("failed to persist payment intent reference",
			"booking_id", bookingID,
			"payment_intent_id", intent.ID,
			"error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return intent, nil
}

func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	var claimed bool
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, insertErr := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, "POST /bookings", requestHash, expiresAt)
		if insertErr != nil {
			return insertErr
		}
		if inserted {
			claimed = true
			return nil
		}
		// The key exists. If a previous holder expired without completing,
		// take the claim over.
		reclaimed, claimErr := tx.Idempotency().ClaimExpiredKey(ctx, tx.DB(), idempotencyKey, userID, requestHash, expiresAt)
		if claimErr != nil {
			return claimErr
		}
		claimed = reclaimed > 0
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := b.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		if existing.ResultEntityID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		return b.bookingQueries.GetByIDSystem(ctx, *existing.ResultEntityID)

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) loadPricingConfig(ctx context.Context, categoryKey string) (*pricing.RateCard, []pricing.Modifier, error) {
	snapshot, err := b.uow.CommandReads().RateConfigByKey(ctx, categoryKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrRateConfigNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	card, err := pricing.ParseRateCard(snapshot.Key, snapshot.Value)
	if err != nil {
		slog.Error("rate configuration failed validation",
			"category", categoryKey,
			"error", err.Error())
		return nil, nil, errs.Mark(err, errs.ErrRateConfigMalformed)
	}

	modifiers, err := b.uow.CommandReads().ActiveModifiers(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return card, modifiers, nil
}

func (b *bookingCommandsImpl) loadPricingConfigTx(ctx context.Context, tx shared.Tx, categoryKey string) (*pricing.RateCard, []pricing.Modifier, error) {
	snapshot, err := tx.Reads().RateConfigByKey(ctx, categoryKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrRateConfigNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	card, err := pricing.ParseRateCard(snapshot.Key, snapshot.Value)
	if err != nil {
		slog.Error("rate configuration failed validation",
			"category", categoryKey,
			"error", err.Error())
		return nil, nil, errs.Mark(err, errs.ErrRateConfigMalformed)
	}

	modifiers, err := tx.Reads().ActiveModifiers(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return card, modifiers, nil
}

func enqueueBookingNotification(ctx context.Context, tx shared.Tx, runAt time.Time, bookingID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, runAt)
}

// markPricingError maps engine failures onto the shared taxonomy: missing
// tiers are configuration-integrity failures, everything else is user input.
func markPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrNoMatchingTier):
		return errs.Mark(err, errs.ErrNoMatchingTier)
	case errors.Is(err, pricing.ErrMalformedRateCard):
		return errs.Mark(err, errs.ErrRateConfigMalformed)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func hashRequest(params CreateBookingParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func hashID(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
