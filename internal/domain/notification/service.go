package notification

import (
	"context"
)

// Service records notification dispatch and acknowledgment, and fans pushes
// out to the user's registered devices. Delivery transport is the push
// collaborator; this service owns only the record of the fact.
type Service interface {
	// RecordSent logs that a notification was dispatched for a shift.
	RecordSent(ctx context.Context, userID, shiftID string, typ Type) error

	// RecordClicked acknowledges notification(s) for a shift. typ may be
	// empty (any-type acknowledgment).
	RecordClicked(ctx context.Context, userID string, req ClickRequest) error

	// SendToUser pushes a message to every device the user registered,
	// prunes tokens the transport reports dead, then records the dispatch.
	// Transport errors are logged, not returned: a failed push must not fail
	// the clock action that triggered it.
	SendToUser(ctx context.Context, userID, shiftID, title, body string)

	// Device token lifecycle
	RegisterToken(ctx context.Context, userID string, req RegisterTokenRequest) error
	RemoveToken(ctx context.Context, userID, token string) error
}
