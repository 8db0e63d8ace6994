package report

import "time"

// Work report review statuses.
const (
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// WorkReport is an employee's written summary of a shift, reviewed by an
// admin.
type WorkReport struct {
	ID         string
	UserID     string
	ShiftID    *string
	Content    string
	Status     string
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for list views
	UserName *string
}

// DailySummary aggregates one day of attendance for the admin email.
type DailySummary struct {
	Date           string   `json:"date"`
	TotalEmployees int      `json:"total_employees"`
	ClockedIn      int      `json:"clocked_in"`
	Late           int      `json:"late"`
	Absent         int      `json:"absent"`
	ReportsFiled   int      `json:"reports_filed"`
	MissingReports []string `json:"missing_reports"`
}
