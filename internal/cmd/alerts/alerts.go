// Package alerts renders the notices shipyard commands print for people:
// pass summaries, the GitHub cooldown warning and download outcomes.
package alerts

import (
	"fmt"
	"time"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/pkg/constants"
)

// Alert is one notice. Details are printed indented below the message.
type Alert struct {
	Level     Level
	Message   string
	Details   []string
	Timestamp time.Time
	Err       error
}

// New creates an alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func NewError(message string) *Alert   { return New(LevelError, message) }
func NewWarning(message string) *Alert { return New(LevelWarning, message) }
func NewInfo(message string) *Alert    { return New(LevelInfo, message) }
func NewSuccess(message string) *Alert { return New(LevelSuccess, message) }

// RateLimited is the cooldown notice shown after GitHub refused anonymous
// requests during a pass.
func RateLimited() *Alert {
	return NewWarning(constants.ErrMsgRateLimited)
}

// ForResult summarizes a synchronization pass. Degraded passes are warnings.
// With details set, every failed repository and skipped folder is listed.
func ForResult(r *shipyard.Result, details bool) *Alert {
	alert := NewSuccess(r.Summary())
	if !r.Success {
		alert = NewWarning(r.Summary())
	}
	if !details {
		return alert
	}
	for _, rr := range r.Failed() {
		alert.WithDetails(fmt.Sprintf("%s: %v", rr.ID, rr.Err))
	}
	for _, s := range r.Skipped {
		alert.WithDetails(fmt.Sprintf("skipped %s/%s: %v", s.Repository, s.Folder, s.Err))
	}
	return alert
}

// WithError attaches the underlying error, printed after the message.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

func (a *Alert) String() string {
	if a.Err != nil {
		return fmt.Sprintf("%s %s: %v", a.Level.Icon(), a.Message, a.Err)
	}
	return a.Level.Icon() + " " + a.Message
}
