package queries

import (
	"context"

	"github.com/google/uuid"
)

type RateAdminReadStore interface {
	FindChangesByKey(ctx context.Context, key string, limit int32) ([]*RateConfigChangeView, error)
	FindModifiers(ctx context.Context) ([]*ModifierView, error)
	FindModifierByID(ctx context.Context, id uuid.UUID) (*ModifierView, error)
}

type RateQueries interface {
	GetConfig(ctx context.Context, key string) (*RateConfigView, error)
	ListChanges(ctx context.Context, key string, limit int) ([]*RateConfigChangeView, error)
	ListModifiers(ctx context.Context) ([]*ModifierView, error)
}

type rateQueriesImpl struct {
	rateStore  RateConfigReadStore
	adminStore RateAdminReadStore
}

func NewRateQueries(rateStore RateConfigReadStore, adminStore RateAdminReadStore) RateQueries {
	return &rateQueriesImpl{rateStore: rateStore, adminStore: adminStore}
}

func (q *rateQueriesImpl) GetConfig(ctx context.Context, key string) (*RateConfigView, error) {
	return q.rateStore.FindByKey(ctx, key)
}

func (q *rateQueriesImpl) ListChanges(ctx context.Context, key string, limit int) ([]*RateConfigChangeView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.adminStore.FindChangesByKey(ctx, key, int32(limit))
}

func (q *rateQueriesImpl) ListModifiers(ctx context.Context) ([]*ModifierView, error) {
	return q.adminStore.FindModifiers(ctx)
}
