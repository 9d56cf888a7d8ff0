//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestItem inserts a rentable catalog item and returns its id.
// twoDayCents <= 0 leaves the two-day price unset.
func CreateTestItem(t *testing.T, db *pgxpool.Pool, name string, oneDayCents, twoDayCents int64, orderIndex int) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	var twoDay *int64
	if twoDayCents > 0 {
		twoDay = &twoDayCents
	}

	_, err := db.Exec(context.Background(),
		`INSERT INTO catalog_items (id, name, price_one_day_cents, price_two_days_cents, order_index, active)
		 VALUES ($1, $2, $3, $4, $5, true)`,
		itemID, name, oneDayCents, twoDay, orderIndex)
	require.NoError(t, err)

	return itemID
}

// CreateQuoteOnlyItem inserts an item priced on request only.
func CreateQuoteOnlyItem(t *testing.T, db *pgxpool.Pool, name string, orderIndex int) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO catalog_items (id, name, price_one_day_cents, has_custom_pricing, order_index, active)
		 VALUES ($1, $2, 0, true, $3, true)`,
		itemID, name, orderIndex)
	require.NoError(t, err)

	return itemID
}

func CreateTestPhoto(t *testing.T, db *pgxpool.Pool, itemID uuid.UUID, url string, orderIndex int) uuid.UUID {
	t.Helper()

	photoID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO catalog_photos (id, item_id, url, order_index) VALUES ($1, $2, $3, $4)`,
		photoID, itemID, url, orderIndex)
	require.NoError(t, err)

	return photoID
}

// CountNotificationJobs returns the number of queued jobs for a topic.
func CountNotificationJobs(t *testing.T, db *pgxpool.Pool, topic string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM notification_jobs WHERE topic = $1`, topic).Scan(&count)
	require.NoError(t, err)
	return count
}
