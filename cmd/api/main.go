package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/config"
	appHTTP "github.com/hoangtrismpk/cham-cong-sub004/internal/handler/http"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/captcha"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/cron"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/email"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/jwt"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/push"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/sse"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/repository/postgresql"
	attendanceService "github.com/hoangtrismpk/cham-cong-sub004/internal/service/attendance"
	authService "github.com/hoangtrismpk/cham-cong-sub004/internal/service/auth"
	notificationService "github.com/hoangtrismpk/cham-cong-sub004/internal/service/notification"
	reportService "github.com/hoangtrismpk/cham-cong-sub004/internal/service/report"
	scheduleService "github.com/hoangtrismpk/cham-cong-sub004/internal/service/schedule"
	settingsService "github.com/hoangtrismpk/cham-cong-sub004/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// Every external client is constructed here once, injected downward and
	// closed at shutdown. Nothing reaches for ambient package-level state.
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.Env == "production")
	captchaClient := captcha.NewClient(cfg.Captcha)
	hub := sse.NewHub()

	emailSender, err := email.NewSender(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email sender: ", err)
	}

	var pushSender push.Sender = push.NoopSender{}
	if cfg.FCM.CredentialsFile != "" {
		pushSender, err = push.NewFCMSender(cfg.FCM.CredentialsFile, cfg.FCM.ProjectID)
		if err != nil {
			log.Fatal("Failed to initialize push sender: ", err)
		}
	}

	settingsSvc := settingsService.NewSettingsService(db, settingsRepo, hub, cfg.Office)
	notificationSvc := notificationService.NewNotificationService(db, notificationRepo, pushSender)
	authSvc := authService.NewAuthService(db, userRepo, JWTService, captchaClient)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleRepo, settingsSvc, notificationSvc)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo)
	reportSvc := reportService.NewReportService(db, reportRepo, userRepo, emailSender, cfg.Report.AdminEmails)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	cronHandler := appHTTP.NewCronHandler(reportSvc, cfg.Cron.Secret)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env},
		JWTService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		notificationHandler,
		reportHandler,
		settingsHandler,
		cronHandler,
	)

	// Fallback scheduler for deployments without an external CRON.
	if cfg.Cron.Internal {
		scheduler := cron.NewScheduler()
		cron.NewReportJobs(reportSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // SSE streams stay open
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
