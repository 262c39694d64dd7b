package ports

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

// UserRepository is the credential store: persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// AuthService implements the public authentication flows.
type AuthService interface {
	Register(ctx context.Context, username, password, role, name string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error
}

// UserService exposes account administration (admin territory).
type UserService interface {
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id, username, name, password string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
