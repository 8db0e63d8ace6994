package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/push"
)

type NotificationServiceImpl struct {
	db *database.DB
	notification.Repository
	pushSender push.Sender
}

func NewNotificationService(db *database.DB, notificationRepository notification.Repository, pushSender push.Sender) notification.Service {
	return &NotificationServiceImpl{
		db:         db,
		Repository: notificationRepository,
		pushSender: pushSender,
	}
}

// RecordSent implements notification.Service.
func (n *NotificationServiceImpl) RecordSent(ctx context.Context, userID, shiftID string, typ notification.Type) error {
	if !notification.IsValidType(typ) {
		return notification.ErrInvalidType
	}

	log := notification.Log{UserID: userID, ShiftID: shiftID, Type: typ}
	if err := n.Repository.InsertLog(ctx, &log); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	return nil
}

// RecordClicked implements notification.Service.
func (n *NotificationServiceImpl) RecordClicked(ctx context.Context, userID string, req notification.ClickRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	rows, err := n.Repository.MarkClicked(ctx, userID, req.ShiftID, notification.Type(req.Type))
	if err != nil {
		return fmt.Errorf("failed to record notification click: %w", err)
	}

	// A click with no pending log is not an error: the client may replay the
	// acknowledgment, or the log may predate the tracking table.
	if rows == 0 {
		slog.Debug("Notification click matched no pending logs", "user_id", userID, "shift_id", req.ShiftID)
	}

	return nil
}

// SendToUser implements notification.Service.
func (n *NotificationServiceImpl) SendToUser(ctx context.Context, userID, shiftID, title, body string) {
	tokens, err := n.Repository.ListTokens(ctx, userID)
	if err != nil {
		slog.Error("Failed to list device tokens for push", "user_id", userID, "error", err)
		return
	}
	if len(tokens) == 0 {
		slog.Debug("No device tokens registered, skipping push", "user_id", userID)
		return
	}

	delivered := 0
	for _, t := range tokens {
		err := n.pushSender.Send(ctx, push.Message{
			Token: t.Token,
			Title: title,
			Body:  body,
			Data:  map[string]string{"shift_id": shiftID},
		})
		if err != nil {
			if errors.Is(err, push.ErrUnregistered) {
				if pruneErr := n.Repository.DeleteTokenValue(ctx, t.Token); pruneErr != nil {
					slog.Error("Failed to prune unregistered token", "error", pruneErr)
				}
				continue
			}
			slog.Error("Failed to send push message", "user_id", userID, "error", err)
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return
	}

	if err := n.RecordSent(ctx, userID, shiftID, notification.TypeServerPush); err != nil {
		slog.Error("Failed to record push dispatch", "user_id", userID, "shift_id", shiftID, "error", err)
	}
}

// RegisterToken implements notification.Service.
func (n *NotificationServiceImpl) RegisterToken(ctx context.Context, userID string, req notification.RegisterTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := n.Repository.UpsertToken(ctx, userID, req.Token); err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}

	return nil
}

// RemoveToken implements notification.Service.
func (n *NotificationServiceImpl) RemoveToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return notification.ErrTokenNotFound
	}
	return n.Repository.DeleteToken(ctx, userID, token)
}
