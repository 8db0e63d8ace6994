package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/schedule"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/middleware"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMySchedule(w http.ResponseWriter, r *http.Request)
	GetUserSchedule(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetMySchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	result, err := h.scheduleService.GetMySchedule(r.Context(), userID)
	if err != nil {
		slog.Error("GetMySchedule service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.Schedules)
}

// GetUserSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetUserSchedule(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.scheduleService.GetUserSchedule(r.Context(), userID)
	if err != nil {
		slog.Error("GetUserSchedule service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.Schedules)
}

// Upsert implements ScheduleHandler.
func (h *scheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.UpsertSchedule(r.Context(), req)
	if err != nil {
		slog.Error("Upsert schedule service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule saved", result)
}

// Delete implements ScheduleHandler.
func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	weekday, err := strconv.Atoi(chi.URLParam(r, "weekday"))
	if err != nil {
		response.BadRequest(w, "Invalid weekday", nil)
		return
	}

	if err := h.scheduleService.DeleteSchedule(r.Context(), userID, weekday); err != nil {
		slog.Error("Delete schedule service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule removed", nil)
}
