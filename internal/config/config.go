package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Office   OfficeConfig
	Cron     CronConfig
	Report   ReportConfig
	Captcha  CaptchaConfig
	FCM      FCMConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// OfficeConfig seeds the office geofence when the settings table is empty.
type OfficeConfig struct {
	Latitude          float64
	Longitude         float64
	MaxDistanceMeters float64
	AllowedIPs        []string
}

// CronConfig holds the daily-report trigger configuration. Secret guards
// the HTTP trigger endpoint; Internal enables the in-process scheduler for
// deployments without an external CRON.
type CronConfig struct {
	Secret   string
	Internal bool
}

type ReportConfig struct {
	AdminEmails []string
}

// CaptchaConfig holds reCAPTCHA verification settings. BypassOnFailure
// decides whether an unreachable scoring API lets the login through; it is
// an explicit operator choice, never a silent default.
type CaptchaConfig struct {
	Secret          string
	MinScore        float64
	BypassOnFailure bool
}

type FCMConfig struct {
	CredentialsFile string
	ProjectID       string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cham_cong"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "15m"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Attendance System"),
	}

	// Office geofence defaults
	officeLat, err := getEnvFloat("OFFICE_LATITUDE", 0)
	if err != nil {
		return nil, err
	}
	officeLon, err := getEnvFloat("OFFICE_LONGITUDE", 0)
	if err != nil {
		return nil, err
	}
	maxDistance, err := getEnvFloat("MAX_DISTANCE_METERS", 200)
	if err != nil {
		return nil, err
	}

	config.Office = OfficeConfig{
		Latitude:          officeLat,
		Longitude:         officeLon,
		MaxDistanceMeters: maxDistance,
		AllowedIPs:        getEnvSlice("OFFICE_ALLOWED_IPS"),
	}

	// CRON configuration
	config.Cron = CronConfig{
		Secret:   getEnv("CRON_SECRET", ""),
		Internal: getEnv("CRON_INTERNAL", "false") == "true",
	}

	config.Report = ReportConfig{
		AdminEmails: getEnvSlice("REPORT_ADMIN_EMAILS"),
	}

	// CAPTCHA configuration
	minScore, err := getEnvFloat("CAPTCHA_MIN_SCORE", 0.5)
	if err != nil {
		return nil, err
	}

	config.Captcha = CaptchaConfig{
		Secret:          getEnv("CAPTCHA_SECRET", ""),
		MinScore:        minScore,
		BypassOnFailure: getEnv("CAPTCHA_BYPASS_ON_FAILURE", "false") == "true",
	}

	// FCM configuration
	config.FCM = FCMConfig{
		CredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),
		ProjectID:       getEnv("FCM_PROJECT_ID", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations that would embed-or-default secrets the
// process must receive from the environment.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.FCM.CredentialsFile != "" && c.FCM.ProjectID == "" {
		return fmt.Errorf("FCM_PROJECT_ID is required when FCM_CREDENTIALS_FILE is set")
	}
	return nil
}

// DatabaseURL builds the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
