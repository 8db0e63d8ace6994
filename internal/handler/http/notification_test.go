package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationService struct {
	clicks []notification.ClickRequest
	err    error
}

func (f *fakeNotificationService) RecordSent(ctx context.Context, userID, shiftID string, typ notification.Type) error {
	return nil
}

func (f *fakeNotificationService) RecordClicked(ctx context.Context, userID string, req notification.ClickRequest) error {
	if f.err != nil {
		return f.err
	}
	f.clicks = append(f.clicks, req)
	return nil
}

func (f *fakeNotificationService) SendToUser(ctx context.Context, userID, shiftID, title, body string) {
}

func (f *fakeNotificationService) RegisterToken(ctx context.Context, userID string, req notification.RegisterTokenRequest) error {
	return nil
}

func (f *fakeNotificationService) RemoveToken(ctx context.Context, userID, token string) error {
	return nil
}

func authenticatedContext(t *testing.T, userID string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestTrackClick_LegacyWireShape(t *testing.T) {
	svc := &fakeNotificationService{}
	handler := NewNotificationHandler(svc)

	body, _ := json.Marshal(map[string]string{"shift_id": "shift-1", "type": "local"})
	req := httptest.NewRequest(http.MethodPost, "/api/tracking/notification-click", bytes.NewReader(body))
	req = req.WithContext(authenticatedContext(t, "user-1"))
	rec := httptest.NewRecorder()

	handler.TrackClick(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The legacy endpoint returns the bare shape, not the envelope.
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.Len(t, svc.clicks, 1)
	assert.Equal(t, "shift-1", svc.clicks[0].ShiftID)
}

// legacyClickRouter mounts the tracking endpoint behind the same middleware
// chain the router uses for it.
func legacyClickRouter(svc notification.Service, ja *jwtauth.JWTAuth) *chi.Mux {
	handler := NewNotificationHandler(svc)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(middleware.LegacyAuthRequired(ja))
		r.Post("/api/tracking/notification-click", handler.TrackClick)
	})
	return r
}

func TestTrackClick_UnauthenticatedUsesRawShape(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := legacyClickRouter(&fakeNotificationService{}, ja)

	body, _ := json.Marshal(map[string]string{"shift_id": "shift-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/tracking/notification-click", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestTrackClick_RefreshTokenRejectedWithRawShape(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := legacyClickRouter(&fakeNotificationService{}, ja)

	tokenString := encodeToken(t, ja, map[string]interface{}{"user_id": "user-1", "type": "refresh"})
	body, _ := json.Marshal(map[string]string{"shift_id": "shift-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/tracking/notification-click", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestTrackClick_AccessTokenPassesGuard(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	svc := &fakeNotificationService{}
	router := legacyClickRouter(svc, ja)

	tokenString := encodeToken(t, ja, map[string]interface{}{"user_id": "user-1", "type": "access"})
	body, _ := json.Marshal(map[string]string{"shift_id": "shift-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/tracking/notification-click", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.Len(t, svc.clicks, 1)
}

func encodeToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	return tokenString
}

func TestTrackClick_ServiceFailure(t *testing.T) {
	svc := &fakeNotificationService{err: assert.AnError}
	handler := NewNotificationHandler(svc)

	body, _ := json.Marshal(map[string]string{"shift_id": "shift-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/tracking/notification-click", bytes.NewReader(body))
	req = req.WithContext(authenticatedContext(t, "user-1"))
	rec := httptest.NewRecorder()

	handler.TrackClick(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestRecordClick_UsesEnvelope(t *testing.T) {
	svc := &fakeNotificationService{}
	handler := NewNotificationHandler(svc)

	body, _ := json.Marshal(map[string]string{"shift_id": "shift-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/click", bytes.NewReader(body))
	req = req.WithContext(authenticatedContext(t, "user-1"))
	rec := httptest.NewRecorder()

	handler.RecordClick(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["message"])
}
