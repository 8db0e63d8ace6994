package postgresql

import (
	"context"
	"fmt"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// InsertLog implements notification.Repository.
func (r *notificationRepository) InsertLog(ctx context.Context, log *notification.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notification_logs (user_id, shift_id, notification_type, sent_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, sent_at
	`

	err := q.QueryRow(ctx, query, log.UserID, log.ShiftID, log.Type).Scan(&log.ID, &log.SentAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification log: %w", err)
	}

	return nil
}

// MarkClicked implements notification.Repository.
func (r *notificationRepository) MarkClicked(ctx context.Context, userID, shiftID string, typ notification.Type) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Without a type every pending row for the pair is acknowledged. The
	// log table is not unique over (user, shift), so this may touch several
	// rows at once.
	query := `
		UPDATE notification_logs
		SET clicked_at = NOW()
		WHERE user_id = $1 AND shift_id = $2 AND clicked_at IS NULL
	`
	args := []interface{}{userID, shiftID}

	if typ != "" {
		query += ` AND notification_type = $3`
		args = append(args, typ)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notification clicked: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListLogsByShift implements notification.Repository.
func (r *notificationRepository) ListLogsByShift(ctx context.Context, userID, shiftID string) ([]notification.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, shift_id, notification_type, sent_at, clicked_at
		FROM notification_logs
		WHERE user_id = $1 AND shift_id = $2
		ORDER BY sent_at DESC
	`

	rows, err := q.Query(ctx, query, userID, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}
	defer rows.Close()

	var logs []notification.Log
	for rows.Next() {
		var l notification.Log
		if err := rows.Scan(&l.ID, &l.UserID, &l.ShiftID, &l.Type, &l.SentAt, &l.ClickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notification logs: %w", err)
	}

	return logs, nil
}

// UpsertToken implements notification.Repository.
func (r *notificationRepository) UpsertToken(ctx context.Context, userID, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fcm_tokens (user_id, token)
		VALUES ($1, $2)
		ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id
	`

	if _, err := q.Exec(ctx, query, userID, token); err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}

	return nil
}

// DeleteToken implements notification.Repository.
func (r *notificationRepository) DeleteToken(ctx context.Context, userID, token string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM fcm_tokens WHERE user_id = $1 AND token = $2`, userID, token)
	if err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrTokenNotFound
	}

	return nil
}

// DeleteTokenValue implements notification.Repository.
func (r *notificationRepository) DeleteTokenValue(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM fcm_tokens WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}

	return nil
}

// ListTokens implements notification.Repository.
func (r *notificationRepository) ListTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, token, created_at
		FROM fcm_tokens
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.UserID, &t.Token, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate device tokens: %w", err)
	}

	return tokens, nil
}
