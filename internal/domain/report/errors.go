package report

import "errors"

var (
	ErrReportNotFound         = errors.New("work report not found")
	ErrReportAlreadyProcessed = errors.New("work report has already been reviewed")
	ErrNoRecipients           = errors.New("no report recipients configured")
)
