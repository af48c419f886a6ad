package repository

import (
	"context"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type ModifierRepository struct{}

func NewModifierRepository() *ModifierRepository {
	return &ModifierRepository{}
}

const createModifierSQL = `
INSERT INTO pricing_modifiers (
    id, name, kind, percent_bps, flat_cents, valid_from, valid_to,
    min_advance_days, max_advance_days, min_party_size, exclusive, active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *ModifierRepository) Create(ctx context.Context, dbtx db.DBTX, m pricing.Modifier) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createModifierSQL,
		uuid.New(), m.Name, string(m.Kind), m.PercentBps, m.FlatCents, m.ValidFrom, m.ValidTo,
		m.MinAdvanceDays, m.MaxAdvanceDays, m.MinPartySize, m.Exclusive, m.Active,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pricing modifier", err)
	}
	return id, nil
}

const setModifierActiveSQL = `
UPDATE pricing_modifiers SET active = $2, updated_at = now()
WHERE id = $1`

func (r *ModifierRepository) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx, setModifierActiveSQL, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to set modifier active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing modifier not found", nil, infra.KindNotFound)
	}
	return nil
}
