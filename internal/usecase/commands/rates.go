package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/queries"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateRateConfigParams struct {
	Key    string
	Value  json.RawMessage
	Reason string
	Actor  uuid.UUID
}

type RateCommands interface {
	UpdateRateConfig(ctx context.Context, params UpdateRateConfigParams) (*queries.RateConfigView, error)
	CreateModifier(ctx context.Context, m pricing.Modifier, actor uuid.UUID) (uuid.UUID, error)
	SetModifierActive(ctx context.Context, id uuid.UUID, active bool) error
}

type rateCommandsImpl struct {
	uow         shared.UnitOfWork
	rateQueries queries.RateQueries
}

func NewRateCommands(uow shared.UnitOfWork, rateQueries queries.RateQueries) RateCommands {
	return &rateCommandsImpl{uow: uow, rateQueries: rateQueries}
}

// UpdateRateConfig replaces a category's rate card after full structural
// validation. The previous value is recorded in the change log in the same
// transaction, so the audit trail can never miss a write.
func (r *rateCommandsImpl) UpdateRateConfig(ctx context.Context, params UpdateRateConfigParams) (*queries.RateConfigView, error) {
	if _, err := pricing.ParseRateCard(params.Key, params.Value); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, findErr := tx.Reads().RateConfigByKey(ctx, params.Key)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.ErrRateConfigNotFound
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}

		if updateErr := tx.RateConfigs().Update(ctx, tx.DB(), params.Key, params.Value, params.Actor); updateErr != nil {
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}

		if logErr := tx.RateConfigs().AppendChange(ctx, tx.DB(), params.Key, current.Value, params.Value, params.Actor, params.Reason); logErr != nil {
			return errs.Mark(logErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("rate configuration updated",
		"category", params.Key,
		"actor", params.Actor)

	return r.rateQueries.GetConfig(ctx, params.Key)
}

func (r *rateCommandsImpl) CreateModifier(ctx context.Context, m pricing.Modifier, actor uuid.UUID) (uuid.UUID, error) {
	if err := m.Validate(); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Modifiers().Create(ctx, tx.DB(), m)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("pricing modifier created",
		"modifier_id", id,
		"name", m.Name,
		"actor", actor)
	return id, nil
}

func (r *rateCommandsImpl) SetModifierActive(ctx context.Context, id uuid.UUID, active bool) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, findErr := tx.Reads().ModifierByID(ctx, id); findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.ErrModifierNotFound
			}
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}
		if setErr := tx.Modifiers().SetActive(ctx, tx.DB(), id, active); setErr != nil {
			return errs.Mark(setErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	return err
}
