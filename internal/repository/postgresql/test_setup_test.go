package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// testDB connects to the database named by TEST_DATABASE_URL and wipes the
// tables a test touches. Tests are skipped when the variable is unset.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, table := range []string{"notification_logs", "fcm_tokens", "work_shifts", "users"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}

	return db
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, email string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, role, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'x', 'Test User', 'employee', NOW(), NOW())
		RETURNING id
	`, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestShift(t *testing.T, ctx context.Context, db *database.DB, userID string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO work_shifts (user_id, date, clock_in, status)
		VALUES ($1, CURRENT_DATE, NOW(), 'present')
		RETURNING id
	`, userID).Scan(&id)
	require.NoError(t, err)
	return id
}
