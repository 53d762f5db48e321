// Package pricing classifies promotional price rules and resolves the
// single price visible to the public for a menu item at a given instant.
package pricing

import "time"

type Status string

const (
	StatusUpcoming Status = "UPCOMING"
	StatusActive   Status = "ACTIVE"
	StatusExpired  Status = "EXPIRED"
)

// RuleStatus classifies a rule's [startAt, endAt] window at now. The
// interval is closed: now equal to either boundary counts as active.
// Windows with endAt before startAt are not validated; they simply can
// never classify as active.
func RuleStatus(startAt, endAt, now time.Time) Status {
	if now.Before(startAt) {
		return StatusUpcoming
	}
	if now.After(endAt) {
		return StatusExpired
	}
	return StatusActive
}
