package postgresql_test

import (
	"context"
	"testing"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertLog(t *testing.T, ctx context.Context, repo notification.Repository, userID, shiftID string, typ notification.Type) notification.Log {
	t.Helper()

	log := notification.Log{UserID: userID, ShiftID: shiftID, Type: typ}
	require.NoError(t, repo.InsertLog(ctx, &log))
	require.NotEmpty(t, log.ID)
	require.False(t, log.SentAt.IsZero())
	return log
}

func TestMarkClicked_SetsClickedAt(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewNotificationRepository(db)

	userID := createTestUser(t, ctx, db, "clicker@example.com")
	shiftID := createTestShift(t, ctx, db, userID)
	insertLog(t, ctx, repo, userID, shiftID, notification.TypeServerPush)

	rows, err := repo.MarkClicked(ctx, userID, shiftID, notification.TypeServerPush)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	logs, err := repo.ListLogsByShift(ctx, userID, shiftID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.NotNil(t, logs[0].ClickedAt)
}

func TestMarkClicked_TypeScopedLeavesOtherRows(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewNotificationRepository(db)

	userID := createTestUser(t, ctx, db, "scoped@example.com")
	shiftID := createTestShift(t, ctx, db, userID)
	insertLog(t, ctx, repo, userID, shiftID, notification.TypeLocal)
	insertLog(t, ctx, repo, userID, shiftID, notification.TypeServerPush)

	rows, err := repo.MarkClicked(ctx, userID, shiftID, notification.TypeLocal)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	logs, err := repo.ListLogsByShift(ctx, userID, shiftID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		if l.Type == notification.TypeLocal {
			assert.NotNil(t, l.ClickedAt)
		} else {
			assert.Nil(t, l.ClickedAt)
		}
	}
}

func TestMarkClicked_EmptyTypeAcknowledgesAllRows(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewNotificationRepository(db)

	userID := createTestUser(t, ctx, db, "all@example.com")
	shiftID := createTestShift(t, ctx, db, userID)
	insertLog(t, ctx, repo, userID, shiftID, notification.TypeLocal)
	insertLog(t, ctx, repo, userID, shiftID, notification.TypeServerPush)

	rows, err := repo.MarkClicked(ctx, userID, shiftID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	// Already acknowledged rows are not touched again.
	rows, err = repo.MarkClicked(ctx, userID, shiftID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestMarkClicked_OtherUsersRowsUntouched(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewNotificationRepository(db)

	userID := createTestUser(t, ctx, db, "mine@example.com")
	otherID := createTestUser(t, ctx, db, "other@example.com")
	shiftID := createTestShift(t, ctx, db, userID)
	otherShiftID := createTestShift(t, ctx, db, otherID)
	insertLog(t, ctx, repo, userID, shiftID, notification.TypeServerPush)
	insertLog(t, ctx, repo, otherID, otherShiftID, notification.TypeServerPush)

	rows, err := repo.MarkClicked(ctx, userID, shiftID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	logs, err := repo.ListLogsByShift(ctx, otherID, otherShiftID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].ClickedAt)
}
