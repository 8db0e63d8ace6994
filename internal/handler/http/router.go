package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http/middleware"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/jwt"
)

type RouterConfig struct {
	Env          string
	AllowOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	notificationHandler NotificationHandler,
	reportHandler ReportHandler,
	settingsHandler SettingsHandler,
	cronHandler CronHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "cham-cong"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// External scheduler trigger; bearer-token guarded, legacy wire shape.
	r.Get("/api/cron/daily-report", cronHandler.DailyReport)

	// Legacy click-tracking endpoint, kept at its original path. Its 401
	// body is raw {"error":"Unauthorized"}, never the envelope.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.LegacyAuthRequired(jwtService.JWTAuth()))
		r.Post("/api/tracking/notification-click", notificationHandler.TrackClick)
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Realtime settings sync; EventSource cannot set headers, so the
		// stream stays outside the JWT verifier like the settings read.
		r.Get("/settings/office/events", settingsHandler.Stream)
		r.Get("/settings/office", settingsHandler.Get)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/my", attendanceHandler.GetMyShifts)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my", scheduleHandler.GetMySchedule)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", scheduleHandler.Upsert)
					r.Get("/{userID}", scheduleHandler.GetUserSchedule)
					r.Delete("/{userID}/{weekday}", scheduleHandler.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/tokens", notificationHandler.RegisterToken)
				r.Delete("/tokens", notificationHandler.RemoveToken)
				r.Post("/click", notificationHandler.RecordClick)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", reportHandler.Submit)
				r.Get("/my", reportHandler.GetMyReports)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", reportHandler.List)
					r.Put("/{id}/review", reportHandler.Review)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Put("/settings/office", settingsHandler.Update)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
