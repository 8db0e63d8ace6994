package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/attendance"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/middleware"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyShifts(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = middleware.UserIDFromContext(r.Context())
	req.ClientIP = clientIP(r)

	shift, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("User clocked in", "user_id", req.UserID, "shift_id", shift.ID)
	response.Created(w, "Clocked in successfully", shift)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = middleware.UserIDFromContext(r.Context())
	req.ClientIP = clientIP(r)

	shift, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("User clocked out", "user_id", req.UserID, "shift_id", shift.ID)
	response.SuccessWithMessage(w, "Clocked out successfully", shift)
}

// GetMyShifts implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	filter := attendance.MyShiftFilter{
		StartDate: queryStringPtr(r, "start_date"),
		EndDate:   queryStringPtr(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	result, err := h.attendanceService.GetMyShifts(r.Context(), userID, filter)
	if err != nil {
		slog.Error("GetMyShifts service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Shifts, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ShiftFilter{
		UserID:    queryStringPtr(r, "user_id"),
		Date:      queryStringPtr(r, "date"),
		StartDate: queryStringPtr(r, "start_date"),
		EndDate:   queryStringPtr(r, "end_date"),
		Status:    queryStringPtr(r, "status"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	result, err := h.attendanceService.ListShifts(r.Context(), filter)
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Shifts, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	shift, err := h.attendanceService.GetShift(r.Context(), id)
	if err != nil {
		slog.Error("Get shift service error", "error", err, "shift_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shift)
}
