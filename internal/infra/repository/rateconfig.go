package repository

import (
	"context"
	"encoding/json"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type RateConfigRepository struct{}

func NewRateConfigRepository() *RateConfigRepository {
	return &RateConfigRepository{}
}

const updateRateConfigSQL = `
UPDATE rate_configs SET value = $2, updated_by = $3, updated_at = now()
WHERE key = $1`

func (r *RateConfigRepository) Update(ctx context.Context, dbtx db.DBTX, key string, value json.RawMessage, actor uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, updateRateConfigSQL, key, value, actor)
	if err != nil {
		return infra.WrapRepoErr("failed to update rate config", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate config not found", nil, infra.KindNotFound)
	}
	return nil
}

const appendRateConfigChangeSQL = `
INSERT INTO rate_config_changes (id, config_key, old_value, new_value, actor, reason)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *RateConfigRepository) AppendChange(ctx context.Context, dbtx db.DBTX, key string, oldValue, newValue json.RawMessage, actor uuid.UUID, reason string) error {
	_, err := dbtx.Exec(ctx, appendRateConfigChangeSQL,
		uuid.New(), key, oldValue, newValue, actor, reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append rate config change", err)
	}
	return nil
}
