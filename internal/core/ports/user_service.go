package ports

import (
	"context"

	"github.com/crmsuite/user-management-api/internal/core/domain"
)

// ListManagersInput carries the pagination parameters for the manager listing.
// Non-positive values are normalised to the defaults by the service.
type ListManagersInput struct {
	Page  int
	Limit int
}

// ListManagersResult is returned by ListManagers.
type ListManagersResult struct {
	Users      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminActor identifies who performed an admin action, for the audit trail.
type AdminActor struct {
	ID       string
	Username string
}

// UserService defines the use-case operations for user administration.
type UserService interface {
	ListManagers(ctx context.Context, input ListManagersInput) (*ListManagersResult, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	BanManager(ctx context.Context, id string, actor AdminActor) error
	UnbanManager(ctx context.Context, id string, actor AdminActor) error
	DeleteManager(ctx context.Context, id string, actor AdminActor) error
	ManagerAudit(ctx context.Context, id string) ([]*domain.AuditEntry, error)
}
