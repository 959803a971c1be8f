package domain

import "time"

// AuditAction identifies an admin operation recorded in the audit trail.
type AuditAction string

const (
	AuditBan    AuditAction = "ban"
	AuditUnban  AuditAction = "unban"
	AuditDelete AuditAction = "delete"
)

// AuditEntry records a single admin action against a manager account.
type AuditEntry struct {
	UserID     string      `json:"user_id"`
	Action     AuditAction `json:"action"`
	ActorID    string      `json:"actor_id"`
	ActorName  string      `json:"actor_name,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	RecordedAt time.Time   `json:"recorded_at,omitempty"`
}
