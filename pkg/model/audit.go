package model

import "time"

// LogEntry is a single line in the audit log:
//
//	<RFC3339 timestamp>, <action>, <status>
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Status    string    `json:"status"`
}

// Succeeded reports whether the entry records a successful action.
func (e LogEntry) Succeeded() bool {
	return e.Status == StatusSuccess
}
