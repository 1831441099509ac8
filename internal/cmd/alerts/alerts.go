// Package alerts renders status lines for command output: a leveled
// message with optional indented details, as text, JSON, or YAML.
package alerts

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Alert is one status notification.
type Alert struct {
	Level   Level
	Message string
	Details []string
}

// New returns an alert at the given level.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError returns an error-level alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning returns a warning-level alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewSuccess returns a success-level alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// NewWrote creates a success alert for one written output file.
func NewWrote(path string, count int, noun string) *Alert {
	return NewSuccess(fmt.Sprintf("Wrote %s (%s %s)", path, humanize.Comma(int64(count)), noun))
}

// NewQAReport creates a data quality alert for the QA report file.
func NewQAReport(path string, issues int) *Alert {
	return New(LevelQA, fmt.Sprintf("QA report %s (%s issues)", path, humanize.Comma(int64(issues))))
}

// WithDetails adds indented context lines under the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String renders the alert as an icon-prefixed status line.
func (a *Alert) String() string {
	return fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
}

// Writer is anything that can emit alerts.
type Writer interface {
	WriteAlert(alert *Alert) error
}
