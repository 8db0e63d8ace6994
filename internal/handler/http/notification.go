package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/middleware"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/response"
)

type NotificationHandler interface {
	RegisterToken(w http.ResponseWriter, r *http.Request)
	RemoveToken(w http.ResponseWriter, r *http.Request)
	RecordClick(w http.ResponseWriter, r *http.Request)
	TrackClick(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// RegisterToken implements NotificationHandler.
func (h *notificationHandlerImpl) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var req notification.RegisterTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.notificationService.RegisterToken(r.Context(), userID, req); err != nil {
		slog.Error("RegisterToken service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device token registered", nil)
}

// RemoveToken implements NotificationHandler.
func (h *notificationHandlerImpl) RemoveToken(w http.ResponseWriter, r *http.Request) {
	var req notification.RegisterTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RemoveToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.notificationService.RemoveToken(r.Context(), userID, req.Token); err != nil {
		slog.Error("RemoveToken service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device token removed", nil)
}

// RecordClick implements NotificationHandler.
func (h *notificationHandlerImpl) RecordClick(w http.ResponseWriter, r *http.Request) {
	var req notification.ClickRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordClick decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.notificationService.RecordClicked(r.Context(), userID, req); err != nil {
		slog.Error("RecordClick service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification click recorded", nil)
}

// TrackClick implements NotificationHandler. It serves the legacy tracking
// endpoint, whose wire shape predates the response envelope and must stay
// exactly {"success":true} / {"error":"<message>"}.
func (h *notificationHandlerImpl) TrackClick(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req notification.ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request format"})
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.notificationService.RecordClicked(r.Context(), userID, req); err != nil {
		slog.Error("TrackClick service error", "error", err, "user_id", userID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
