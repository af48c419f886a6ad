package commands

import (
	"context"
	"encoding/json"

	"tour-booking-api/internal/domain/tour"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTourNotOpen = errs.New("tour is not open for booking")
)

type PurchaseTicketParams struct {
	TourID   uuid.UUID
	Quantity int32
}

type PurchaseTicketResult struct {
	TicketID       uuid.UUID
	TourID         uuid.UUID
	Quantity       int32
	AmountCents    int64
	SeatsRemaining int32
}

type TicketCommands interface {
	PurchaseTicket(ctx context.Context, params PurchaseTicketParams, userID uuid.UUID) (*PurchaseTicketResult, error)
}

type ticketCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTicketCommands(uow shared.UnitOfWork, clock clock.Clock) TicketCommands {
	return &ticketCommandsImpl{uow: uow, clock: clock}
}

// PurchaseTicket reserves seats on a shared tour. The tour row is locked for
// the duration of the transaction so two concurrent purchases cannot both pass
// the capacity check.
func (t *ticketCommandsImpl) PurchaseTicket(
	ctx context.Context,
	params PurchaseTicketParams,
	userID uuid.UUID,
) (*PurchaseTicketResult, error) {
	var result PurchaseTicketResult

	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seats, lockErr := tx.Tickets().LockTourSeats(ctx, tx.DB(), params.TourID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return errs.ErrTourNotFound
			}
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		if seats.Status != string(tour.StatusOpen) {
			return ErrTourNotOpen
		}

		availability, checkErr := tour.CheckAvailability(seats.Capacity, seats.BookedSeats, params.Quantity)
		if checkErr != nil {
			return errs.Mark(checkErr, errs.ErrDomainValidation)
		}
		if !availability.Available {
			if availability.Reason == tour.ReasonSoldOut {
				return errs.ErrTourSoldOut
			}
			return errs.ErrInsufficientCapacity
		}

		amount := seats.SeatPriceCents * int64(params.Quantity)
		ticketID, insertErr := tx.Tickets().Insert(ctx, tx.DB(), shared.TicketInsert{
			TourID:      params.TourID,
			UserID:      userID,
			Quantity:    params.Quantity,
			AmountCents: amount,
			Status:      "active",
		})
		if insertErr != nil {
			return errs.Mark(insertErr, errs.ErrDatabaseOperationFailed)
		}

		payload, marshalErr := json.Marshal(map[string]any{
			"ticket_id": ticketID,
			"tour_id":   params.TourID,
			"type":      "ticket_purchased",
		})
		if marshalErr != nil {
			return marshalErr
		}
		if notifyErr := tx.Notifications().CreateJob(ctx, tx.DB(), "email", "ticket_purchased", payload, t.clock.Now()); notifyErr != nil {
			return errs.Mark(notifyErr, errs.ErrDatabaseOperationFailed)
		}

		result = PurchaseTicketResult{
			TicketID:       ticketID,
			TourID:         params.TourID,
			Quantity:       params.Quantity,
			AmountCents:    amount,
			SeatsRemaining: availability.Remaining - params.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
