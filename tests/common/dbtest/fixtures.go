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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func CreateTestUser(t *testing.T, db DBLike, email, kind, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	passwordHash := string(hash)
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, kind, role) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, "Test "+kind, kind, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoomType(t *testing.T, db DBLike, name string, baseRate int64, capacity int) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO room_types (id, name, base_rate, capacity) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING",
		typeID, name, baseRate, capacity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM room_types WHERE name = $1", name).Scan(&typeID)
	}

	return typeID
}

func CreateTestRooms(t *testing.T, db DBLike, roomTypeID uuid.UUID, numbers ...string) {
	t.Helper()

	ctx := context.Background()
	for _, n := range numbers {
		_, err := db.Exec(ctx,
			"INSERT INTO rooms (number, room_type_id) VALUES ($1, $2) ON CONFLICT (number) DO NOTHING",
			n, roomTypeID)
		require.NoError(t, err)
	}
}

func CreateTestFacility(t *testing.T, db DBLike, name string, price int64) uuid.UUID {
	t.Helper()

	facilityID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO facilities (id, name, price) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		facilityID, name, price)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM facilities WHERE name = $1", name).Scan(&facilityID)
	}

	return facilityID
}

// inserts the operational settings every command path reads.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES
		    ('service_tax_rate', '0.10'),
		    ('overstay_rate_per_hour', '50000'),
		    ('overstay_penalty_cap', '0.50'),
		    ('checkin_hour', '14'),
		    ('checkout_hour', '12'),
		    ('min_checkin_deposit', '300000')
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
