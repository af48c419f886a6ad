package readstore

import (
	"context"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(dbtx db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx}
}

const getIdempotencyKeySQL = `
SELECT key, user_id, endpoint, request_hash, status, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (s *IdempotencyReadStore) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var record shared.IdempotencyRecord
	err := s.db.QueryRow(ctx, getIdempotencyKeySQL, key, userID).Scan(
		&record.Key, &record.UserID, &record.Endpoint, &record.RequestHash,
		&record.Status, &record.ResultEntityID, &record.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &record, nil
}
