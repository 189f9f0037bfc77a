// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// NotificationSeverity represents the severity of a notification.
type NotificationSeverity string

const (
	SeverityDanger  NotificationSeverity = "danger"
	SeverityWarning NotificationSeverity = "warning"
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
)

// severityRank maps severities to their display priority. Lower ranks first.
var severityRank = map[NotificationSeverity]int{
	SeverityDanger:  0,
	SeverityWarning: 1,
	SeverityInfo:    2,
	SeveritySuccess: 3,
}

// Rank returns the display priority of the severity. Unknown severities sort
// after all known ones.
func (s NotificationSeverity) Rank() int {
	if rank, ok := severityRank[s]; ok {
		return rank
	}
	return len(severityRank)
}

// Notification represents a derived alert or tip shown to the user.
// Notifications are recomputed on every request and never persisted; the ID is
// deterministic for a given (user, notification kind, period) so repeated
// computation yields stable identifiers.
type Notification struct {
	ID        string
	Severity  NotificationSeverity
	Title     string
	Message   string
	Data      map[string]interface{}
	CreatedAt time.Time
}
