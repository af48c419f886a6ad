package readstore

import (
	"context"
	"encoding/json"
	"time"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RateConfigReadStore struct {
	db db.DBTX
}

func NewRateConfigReadStore(dbtx db.DBTX) *RateConfigReadStore {
	return &RateConfigReadStore{db: dbtx}
}

const findRateConfigSQL = `
SELECT key, value, description, updated_by, updated_at
FROM rate_configs
WHERE key = $1`

func (s *RateConfigReadStore) FindByKey(ctx context.Context, key string) (*queries.RateConfigView, error) {
	var (
		view        queries.RateConfigView
		value       []byte
		description *string
		updatedBy   *uuid.UUID
	)

	err := s.db.QueryRow(ctx, findRateConfigSQL, key).Scan(
		&view.Key, &value, &description, &updatedBy, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rate config not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rate config", err)
	}

	view.Value = json.RawMessage(value)
	view.Description = description
	view.UpdatedBy = updatedBy
	return &view, nil
}

const findActiveModifiersSQL = `
SELECT id, name, kind, percent_bps, flat_cents, valid_from, valid_to,
       min_advance_days, max_advance_days, min_party_size, exclusive, active
FROM pricing_modifiers
WHERE active = true
ORDER BY created_at`

func (s *RateConfigReadStore) FindActiveModifiers(ctx context.Context) ([]pricing.Modifier, error) {
	rows, err := s.db.Query(ctx, findActiveModifiersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active modifiers", err)
	}
	defer rows.Close()

	var modifiers []pricing.Modifier
	for rows.Next() {
		var (
			m    pricing.Modifier
			kind string
		)
		if err := rows.Scan(
			&m.ID, &m.Name, &kind, &m.PercentBps, &m.FlatCents, &m.ValidFrom, &m.ValidTo,
			&m.MinAdvanceDays, &m.MaxAdvanceDays, &m.MinPartySize, &m.Exclusive, &m.Active,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan modifier row", err)
		}
		m.Kind = pricing.ModifierKind(kind)
		modifiers = append(modifiers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate modifier rows", err)
	}

	return modifiers, nil
}

type RateAdminReadStore struct {
	db db.DBTX
}

func NewRateAdminReadStore(dbtx db.DBTX) *RateAdminReadStore {
	return &RateAdminReadStore{db: dbtx}
}

const findRateConfigChangesSQL = `
SELECT id, config_key, old_value, new_value, actor, reason, created_at
FROM rate_config_changes
WHERE config_key = $1
ORDER BY created_at DESC
LIMIT $2`

func (s *RateAdminReadStore) FindChangesByKey(ctx context.Context, key string, limit int32) ([]*queries.RateConfigChangeView, error) {
	rows, err := s.db.Query(ctx, findRateConfigChangesSQL, key, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate config changes", err)
	}
	defer rows.Close()

	var changes []*queries.RateConfigChangeView
	for rows.Next() {
		var (
			c        queries.RateConfigChangeView
			oldValue []byte
			newValue []byte
		)
		if err := rows.Scan(&c.ID, &c.ConfigKey, &oldValue, &newValue, &c.Actor, &c.Reason, &c.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate config change row", err)
		}
		c.OldValue = json.RawMessage(oldValue)
		c.NewValue = json.RawMessage(newValue)
		changes = append(changes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate config change rows", err)
	}

	return changes, nil
}

const findModifiersSQL = `
SELECT id, name, kind, percent_bps, flat_cents, valid_from, valid_to,
       min_advance_days, max_advance_days, min_party_size, exclusive, active,
       created_at, updated_at
FROM pricing_modifiers
ORDER BY created_at DESC`

func (s *RateAdminReadStore) FindModifiers(ctx context.Context) ([]*queries.ModifierView, error) {
	rows, err := s.db.Query(ctx, findModifiersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list modifiers", err)
	}
	defer rows.Close()

	var views []*queries.ModifierView
	for rows.Next() {
		view, err := scanModifierView(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan modifier row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate modifier rows", err)
	}

	return views, nil
}

const findModifierByIDSQL = `
SELECT id, name, kind, percent_bps, flat_cents, valid_from, valid_to,
       min_advance_days, max_advance_days, min_party_size, exclusive, active,
       created_at, updated_at
FROM pricing_modifiers
WHERE id = $1`

func (s *RateAdminReadStore) FindModifierByID(ctx context.Context, id uuid.UUID) (*queries.ModifierView, error) {
	row := s.db.QueryRow(ctx, findModifierByIDSQL, id)
	view, err := scanModifierView(row.Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing modifier not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find modifier", err)
	}
	return view, nil
}

func scanModifierView(scan func(dest ...any) error) (*queries.ModifierView, error) {
	var (
		v         queries.ModifierView
		validFrom *time.Time
		validTo   *time.Time
	)
	if err := scan(
		&v.ID, &v.Name, &v.Kind, &v.PercentBps, &v.FlatCents, &validFrom, &validTo,
		&v.MinAdvanceDays, &v.MaxAdvanceDays, &v.MinPartySize, &v.Exclusive, &v.Active,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.ValidFrom = validFrom
	v.ValidTo = validTo
	return &v, nil
}
