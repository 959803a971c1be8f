package ports

import (
	"context"

	"github.com/crmsuite/user-management-api/internal/core/domain"
)

// AuditRecorder accepts audit entries for asynchronous persistence.
// Implementations must preserve ordering of entries for the same user id.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService persists audit entries handed over by the recorder.
type AuditService interface {
	Write(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRepository defines persistence for the admin audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// FindByUserID returns the entries recorded for a user, oldest first.
	FindByUserID(ctx context.Context, userID string) ([]*domain.AuditEntry, error)
}
