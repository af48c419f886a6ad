//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal connection surface fixtures need, satisfied by both
// *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	var operatorID *uuid.UUID
	if role == "operator" {
		id := uuid.New()
		operatorID = &id
	}

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, operator_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, operatorID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestTour(t *testing.T, db DBLike, operatorID uuid.UUID, title string, capacity int32, seatPriceCents int64) uuid.UUID {
	t.Helper()

	tourID := uuid.New()
	ctx := context.Background()

	departsAt := time.Now().Add(14 * 24 * time.Hour).Truncate(time.Hour)
	_, err := db.Exec(ctx, "INSERT INTO tours (id, operator_id, title, category_key, departs_at, capacity, seat_price_cents, status) VALUES ($1, $2, $3, 'wine_tours', $4, $5, $6, 'open')",
		tourID, operatorID, title, departsAt, capacity, seatPriceCents)
	require.NoError(t, err)

	return tourID
}

func CreateTestModifier(t *testing.T, db DBLike, name, kind string, percentBps int64) uuid.UUID {
	t.Helper()

	modifierID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO pricing_modifiers (id, name, kind, percent_bps, exclusive, active) VALUES ($1, $2, $3, $4, false, true)",
		modifierID, name, kind, percentBps)
	require.NoError(t, err)

	return modifierID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Insert the default rate card the booking and pricing endpoints depend on
	_, err := pool.Exec(ctx, `
		INSERT INTO rate_configs (key, value, description) VALUES (
		    'wine_tours',
		    '{
		        "currency": "USD",
		        "tax_rate_bps": 875,
		        "deposit_rate_bps": 2000,
		        "weekend_days": [0, 6],
		        "holidays": ["2026-12-25", "2027-01-01"],
		        "tiers": [
		            {
		                "name": "standard",
		                "min_party": 1,
		                "max_party": 6,
		                "hourly_rate_cents": {"weekday": 15000, "weekend": 18000, "holiday": 22000},
		                "minimum_hours": {"weekday": 3, "weekend": 4, "holiday": 4}
		            },
		            {
		                "name": "group",
		                "min_party": 7,
		                "max_party": 14,
		                "hourly_rate_cents": {"weekday": 25000, "weekend": 30000, "holiday": 36000},
		                "minimum_hours": {"weekday": 4, "weekend": 4, "holiday": 5}
		            }
		        ]
		    }',
		    'Hourly wine tour rates'
		)
		ON CONFLICT (key) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
