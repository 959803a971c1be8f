package ports

import (
	"context"

	"github.com/crmsuite/user-management-api/internal/core/domain"
)

// ListUsersFilter carries the query parameters for a paged user listing.
type ListUsersFilter struct {
	Role  string // required: only users with this role are returned
	Page  int    // 1-based
	Limit int    // max rows per page
}

// UserRepository defines persistence operations for user accounts.
//
// SetActive and Delete must be atomic conditional operations keyed by id and
// role, so that two concurrent admin actions on the same account cannot
// interleave a read-modify-write.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID retrieves a user by its store-assigned identifier. A malformed
	// identifier is reported as domain.ErrUserNotFound, never as a fault.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns one page of users matching filter, ordered by a stable
	// creation-order key, together with the total count across all pages.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// SetActive flips the ban flag on the user with the given id and role.
	// Returns domain.ErrUserNotFound when no document matches the pair.
	SetActive(ctx context.Context, id, role string, active bool) error
	// Delete permanently removes the user with the given id and role.
	Delete(ctx context.Context, id, role string) error
}
