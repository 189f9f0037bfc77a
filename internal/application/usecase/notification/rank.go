// Package notification turns the analytics engine's outputs into a ranked
// list of user-facing alerts and tips.
package notification

import (
	"sort"

	"github.com/finantrack/backend/internal/domain/entity"
)

// Rank orders notifications by severity (danger, warning, info, success) and,
// within equal severity, by creation time descending (most recent first).
// The sort is stable, so equally ranked notifications keep their input order.
// This ordering is a user-facing contract: highest-impact, freshest
// information appears first.
func Rank(notifications []*entity.Notification) []*entity.Notification {
	ranked := make([]*entity.Notification, len(notifications))
	copy(ranked, notifications)

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Severity.Rank(), ranked[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}
