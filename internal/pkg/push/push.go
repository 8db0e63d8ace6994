package push

import (
	"context"
	"errors"
	"log/slog"
)

// ErrUnregistered is returned when the messaging service reports the device
// token is no longer valid. Callers should prune the stored token.
var ErrUnregistered = errors.New("device token is unregistered")

// Message is one push notification addressed to a single device token.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Sender delivers push messages. Delivery is an external collaborator; the
// notification service only records the fact of dispatch.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NoopSender is used when push messaging is not configured. Sends are logged
// and dropped.
type NoopSender struct{}

func (NoopSender) Send(_ context.Context, msg Message) error {
	slog.Warn("Push messaging not configured, dropping message", "title", msg.Title)
	return nil
}
