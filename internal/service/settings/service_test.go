package settings

import (
	"context"
	"testing"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/config"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/settings"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored   *office.Office
	getCalls int
	saved    []office.Office
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (office.Office, error) {
	f.getCalls++
	if f.stored == nil {
		return office.Office{}, settings.ErrSettingsNotFound
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, o office.Office) error {
	f.saved = append(f.saved, o)
	f.stored = &o
	return nil
}

var testDefaults = config.OfficeConfig{
	Latitude:          10.7769,
	Longitude:         106.7009,
	MaxDistanceMeters: 200,
	AllowedIPs:        []string{"14.161.22.181"},
}

func TestCurrent_FallsBackToConfigDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(nil, repo, sse.NewHub(), testDefaults)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDefaults.Latitude, current.Latitude)
	assert.Equal(t, float64(200), current.RadiusMeters)
}

func TestCurrent_CachesStoreRead(t *testing.T) {
	repo := &fakeSettingsRepo{stored: &office.Office{Latitude: 1, Longitude: 2, RadiusMeters: 150}}
	svc := NewSettingsService(nil, repo, sse.NewHub(), testDefaults)

	_, err := svc.Current(context.Background())
	require.NoError(t, err)
	_, err = svc.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdate_PersistsAndRefreshesCache(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(nil, repo, sse.NewHub(), testDefaults)

	_, err := svc.Update(context.Background(), settings.UpdateOfficeRequest{
		Latitude:     21.0285,
		Longitude:    105.8542,
		RadiusMeters: 250,
		AllowedIPs:   []string{"198.51.100.7"},
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 21.0285, current.Latitude)
	assert.Equal(t, float64(250), current.RadiusMeters)
}

func TestUpdate_RejectsInvalidRadius(t *testing.T) {
	svc := NewSettingsService(nil, &fakeSettingsRepo{}, sse.NewHub(), testDefaults)

	_, err := svc.Update(context.Background(), settings.UpdateOfficeRequest{
		Latitude:     21.0285,
		Longitude:    105.8542,
		RadiusMeters: -5,
	})
	assert.Error(t, err)
}

func TestUpdate_BroadcastsToSubscribers(t *testing.T) {
	svc := NewSettingsService(nil, &fakeSettingsRepo{}, sse.NewHub(), testDefaults)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx)
	defer cleanup()

	_, err := svc.Update(context.Background(), settings.UpdateOfficeRequest{
		Latitude:     21.0285,
		Longitude:    105.8542,
		RadiusMeters: 300,
	})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, "settings_updated", ev.Event)
		assert.Equal(t, float64(300), ev.Data.RadiusMeters)
	case <-time.After(time.Second):
		t.Fatal("expected a settings_updated event")
	}
}
