package ports

import (
	"context"

	"github.com/crmsuite/user-management-api/internal/core/domain"
)

// RegisterInput carries the data needed to provision a new account.
type RegisterInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
	Role     string
}

// AuthService handles account provisioning and token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed JWT and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
