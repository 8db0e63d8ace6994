package notification

import (
	"context"
)

// Repository defines the notification log and device token store.
type Repository interface {
	// InsertLog records a dispatched notification (sent_at set, clicked_at
	// NULL). Never deduplicates.
	InsertLog(ctx context.Context, log *Log) error

	// MarkClicked sets clicked_at on unacknowledged logs for (user, shift).
	// When typ is empty every matching row is updated regardless of type.
	// Returns the number of rows acknowledged.
	MarkClicked(ctx context.Context, userID, shiftID string, typ Type) (int64, error)

	// ListLogsByShift returns all logs for (user, shift), newest first.
	ListLogsByShift(ctx context.Context, userID, shiftID string) ([]Log, error)

	// Device tokens
	UpsertToken(ctx context.Context, userID, token string) error
	DeleteToken(ctx context.Context, userID, token string) error
	// DeleteTokenValue removes a token regardless of owner. Used to prune
	// tokens the push service reports as unregistered.
	DeleteTokenValue(ctx context.Context, token string) error
	ListTokens(ctx context.Context, userID string) ([]DeviceToken, error)
}
