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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, name, passwordHash string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		name, strings.ToLower(email), passwordHash).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestCoupon inserts an active coupon. A nil usageLimit means unlimited.
func CreateTestCoupon(t *testing.T, db DBLike, code, kind, value string, usageLimit *int32) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO coupons (code, discount_type, discount_value, usage_limit)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id`,
		strings.ToUpper(code), kind, value, usageLimit).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestProduct(t *testing.T, db DBLike, name, price string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (name, price, image, extra_images)
		VALUES ($1, $2::numeric, 'cover.jpg', '["side.jpg"]'::jsonb)
		RETURNING id`,
		name, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func CouponUsedCount(t *testing.T, db DBLike, code string) int32 {
	t.Helper()

	var used int32
	err := db.QueryRow(context.Background(),
		"SELECT used_count FROM coupons WHERE code = $1", strings.ToUpper(code)).Scan(&used)
	require.NoError(t, err)
	return used
}

func CountOrders(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM orders").Scan(&n))
	return n
}

func StoredCart(t *testing.T, db DBLike, email string) string {
	t.Helper()

	var raw string
	err := db.QueryRow(context.Background(), "SELECT cart FROM users WHERE email = $1", strings.ToLower(email)).Scan(&raw)
	require.NoError(t, err)
	return raw
}

// inserts the default settings rows the migration seeds
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ('shipping_rate_per_km', '5.0')
		ON CONFLICT (key) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
