package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/config"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Sender defines the outbound email collaborator.
type Sender interface {
	SendDailyReport(to []string, summary report.DailySummary) error
}

type senderImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewSender creates the SMTP email sender.
func NewSender(cfg config.SMTPConfig) (Sender, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &senderImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type dailyReportEmailData struct {
	Date           string
	TotalEmployees int
	ClockedIn      int
	Late           int
	Absent         int
	ReportsFiled   int
	MissingReports []string
}

// SendDailyReport sends the daily attendance summary to the admin addresses.
func (s *senderImpl) SendDailyReport(to []string, summary report.DailySummary) error {
	data := dailyReportEmailData{
		Date:           summary.Date,
		TotalEmployees: summary.TotalEmployees,
		ClockedIn:      summary.ClockedIn,
		Late:           summary.Late,
		Absent:         summary.Absent,
		ReportsFiled:   summary.ReportsFiled,
		MissingReports: summary.MissingReports,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "daily_report.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Daily Attendance Report %s", summary.Date), body.String())
}

func (s *senderImpl) sendHTML(to []string, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", strings.Join(to, ", "))
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, to, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
