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
)

// bcrypt of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestCustomer(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO customers (id, email, name, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING`,
		customerID, email, "Test Angler", "+1 305 555 0100", TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID))
	}

	return customerID
}

type TripFixture struct {
	Title          string
	LocationName   string
	BoatType       string
	FishingTypes   []string
	DurationHours  int
	BasePriceCents int64
	MaxGuests      int
}

func DefaultTrip() TripFixture {
	return TripFixture{
		Title:          "Sunrise Tarpon Run",
		LocationName:   "Key West, FL",
		BoatType:       "center-console",
		FishingTypes:   []string{"inshore", "fly"},
		DurationHours:  4,
		BasePriceCents: 45000,
		MaxGuests:      6,
	}
}

func CreateTestTrip(t *testing.T, db DBLike, f TripFixture) uuid.UUID {
	t.Helper()

	tripID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO trips
		(id, title, description, location_name, duration_hours, base_price, boat_type, fishing_types, max_guests)
		VALUES ($1, $2, '', $3, $4, $5::numeric / 100, $6, $7, $8)`,
		tripID, f.Title, f.LocationName, f.DurationHours, f.BasePriceCents, f.BoatType, f.FishingTypes, f.MaxGuests)
	require.NoError(t, err)

	return tripID
}

func CreateTestBooking(t *testing.T, db DBLike, tripID, customerID uuid.UUID, start time.Time, guests int, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(id, trip_id, customer_id, start_date, guests, total_price, status)
		VALUES ($1, $2, $3, $4, $5, 0, $6)`,
		bookingID, tripID, customerID, start, guests, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
