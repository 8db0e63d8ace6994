package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/middleware"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/response"
)

type ReportHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyReports(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Submit implements ReportHandler.
func (h *reportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req report.SubmitReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = middleware.UserIDFromContext(r.Context())

	created, err := h.reportService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit report service error", "error", err, "user_id", req.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Work report submitted", "user_id", req.UserID, "report_id", created.ID)
	response.Created(w, "Work report submitted", created)
}

// GetMyReports implements ReportHandler.
func (h *reportHandlerImpl) GetMyReports(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	filter := report.ReportFilter{
		Status:    queryStringPtr(r, "status"),
		StartDate: queryStringPtr(r, "start_date"),
		EndDate:   queryStringPtr(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	result, err := h.reportService.GetMyReports(r.Context(), userID, filter)
	if err != nil {
		slog.Error("GetMyReports service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Reports, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// List implements ReportHandler.
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := report.ReportFilter{
		UserID:    queryStringPtr(r, "user_id"),
		Status:    queryStringPtr(r, "status"),
		StartDate: queryStringPtr(r, "start_date"),
		EndDate:   queryStringPtr(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	result, err := h.reportService.ListReports(r.Context(), filter)
	if err != nil {
		slog.Error("List reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Reports, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Review implements ReportHandler.
func (h *reportHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req report.ReviewReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	req.ReviewerID = middleware.UserIDFromContext(r.Context())

	reviewed, err := h.reportService.Review(r.Context(), req)
	if err != nil {
		slog.Error("Review report service error", "error", err, "report_id", req.ID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Work report reviewed", "report_id", req.ID, "status", reviewed.Status)
	response.SuccessWithMessage(w, "Work report reviewed", reviewed)
}
