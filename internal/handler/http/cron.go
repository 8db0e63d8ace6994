package http

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
)

// CronHandler serves the external scheduler's trigger endpoints. The wire
// shapes predate the response envelope and are pinned: 200 {"success":true,
// "message":...}, 401 {"error":"Unauthorized"}, 500 {"error":<message>}.
type CronHandler interface {
	DailyReport(w http.ResponseWriter, r *http.Request)
}

type cronHandlerImpl struct {
	reportService report.Service
	secret        string
}

// NewCronHandler builds the trigger handler. An empty secret leaves the
// endpoint open; a configured secret requires a matching bearer token.
func NewCronHandler(reportService report.Service, secret string) CronHandler {
	return &cronHandlerImpl{
		reportService: reportService,
		secret:        secret,
	}
}

func (h *cronHandlerImpl) authorized(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

// DailyReport implements CronHandler.
func (h *cronHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.authorized(r) {
		slog.Warn("Daily report trigger rejected: bad or missing bearer token")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return
	}

	result, err := h.reportService.RunDailyReport(r.Context())
	if err != nil {
		slog.Error("Daily report trigger failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	slog.Info("Daily report triggered", "date", result.Date, "recipients", result.Recipients)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Daily report sent",
	})
}
