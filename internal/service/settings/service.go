package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/config"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/settings"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/sse"
)

const settingsTopic = "office_settings"

type SettingsServiceImpl struct {
	db *database.DB
	settings.Repository
	hub      *sse.Hub
	defaults office.Office

	mu     sync.RWMutex
	cached *office.Office
}

// NewSettingsService builds the office settings service. cfg provides the
// seed values used until an admin saves a row.
func NewSettingsService(db *database.DB, settingsRepository settings.Repository, hub *sse.Hub, cfg config.OfficeConfig) settings.Service {
	return &SettingsServiceImpl{
		db:         db,
		Repository: settingsRepository,
		hub:        hub,
		defaults: office.Office{
			Latitude:     cfg.Latitude,
			Longitude:    cfg.Longitude,
			RadiusMeters: cfg.MaxDistanceMeters,
			AllowedIPs:   cfg.AllowedIPs,
		},
	}
}

// Current implements settings.Service. Reads hit the in-memory copy; the
// store is consulted once and on every update.
func (s *SettingsServiceImpl) Current(ctx context.Context) (office.Office, error) {
	s.mu.RLock()
	if s.cached != nil {
		o := *s.cached
		s.mu.RUnlock()
		return o, nil
	}
	s.mu.RUnlock()

	o, err := s.Repository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			o = s.defaults
		} else {
			return office.Office{}, fmt.Errorf("failed to load office settings: %w", err)
		}
	}
	if o.RadiusMeters <= 0 {
		o.RadiusMeters = office.DefaultRadiusMeters
	}

	s.mu.Lock()
	s.cached = &o
	s.mu.Unlock()

	return o, nil
}

// Update implements settings.Service.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateOfficeRequest) (settings.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.OfficeResponse{}, err
	}

	o := office.Office{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		AllowedIPs:   req.AllowedIPs,
	}

	if err := s.Repository.Save(ctx, o); err != nil {
		return settings.OfficeResponse{}, fmt.Errorf("failed to save office settings: %w", err)
	}

	s.mu.Lock()
	s.cached = &o
	s.mu.Unlock()

	resp := settings.ToOfficeResponse(o)
	s.hub.Publish(settingsTopic, sse.Event{
		Topic: settingsTopic,
		Event: "settings_updated",
		Data:  resp,
	})
	slog.Info("Office settings updated", "radius_meters", o.RadiusMeters, "allowed_ips", len(o.AllowedIPs))

	return resp, nil
}

// Subscribe implements settings.Service.
func (s *SettingsServiceImpl) Subscribe(ctx context.Context) (<-chan settings.Event, func()) {
	raw, cleanup := s.hub.Subscribe(settingsTopic)

	out := make(chan settings.Event, 10)
	go func() {
		defer close(out)
		for ev := range raw {
			data, ok := ev.Data.(settings.OfficeResponse)
			if !ok {
				continue
			}
			select {
			case out <- settings.Event{Event: ev.Event, Data: data}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
