package settings

import (
	"context"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
)

// Event is a realtime settings-sync event pushed to connected clients.
type Event struct {
	Event string         `json:"event"`
	Data  OfficeResponse `json:"data"`
}

// Service owns the office geofence settings: reads hit an in-memory copy,
// admin updates write through to the store and broadcast to SSE subscribers
// so open clients pick the new radius/allow-list up without a reload.
type Service interface {
	// Current returns the office settings clock actions are checked against.
	Current(ctx context.Context) (office.Office, error)

	// Update replaces the settings (admin) and broadcasts the change.
	Update(ctx context.Context, req UpdateOfficeRequest) (OfficeResponse, error)

	// Subscribe registers a realtime settings-sync subscription. The cleanup
	// function must be called when the client disconnects.
	Subscribe(ctx context.Context) (<-chan Event, func())
}
