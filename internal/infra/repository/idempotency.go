package repository

import (
	"context"
	"time"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

const tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING`

func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, tryInsertIdempotencyKeySQL, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

const updateIdempotencyCompletedSQL = `
UPDATE idempotency_keys
SET status = 'completed', response_hash = $3, result_booking_id = $4
WHERE key = $1 AND user_id = $2`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultHash string, resultEntityID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateIdempotencyCompletedSQL, key, userID, resultHash, resultEntityID)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

// ClaimExpiredKey takes over a key whose previous holder never completed
// within its expiry window. The WHERE clause makes the takeover atomic.
const claimExpiredKeySQL = `
UPDATE idempotency_keys
SET request_hash = $3, status = 'processing', result_booking_id = NULL,
    response_hash = NULL, expires_at = $4
WHERE key = $1 AND user_id = $2 AND status = 'processing' AND expires_at < now()`

func (r *IdempotencyRepository) ClaimExpiredKey(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	tag, err := dbtx.Exec(ctx, claimExpiredKeySQL, key, userID, requestHash, expiresAt)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}
