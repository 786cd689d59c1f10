package ports

import (
	"context"

	"github.com/advise-clothes/backend/internal/core/domain"
)

// CreateUserInput is the DTO passed from the transport layer to create a user.
type CreateUserInput struct {
	Account     string
	Password    string
	Nickname    string
	Email       string
	PhoneNumber string
	Area        string
	Height      int
	Weight      int
}

// UserService defines the user lifecycle use cases.
type UserService interface {
	// FindLive returns the single live user matching f. Empty filters and
	// ambiguous matches yield domain.ErrUserNotFound.
	FindLive(ctx context.Context, f UserFilter) (*domain.User, error)
	// FindLiveWithPassword is FindLive plus a password check.
	FindLiveWithPassword(ctx context.Context, f UserFilter, password string) (*domain.User, error)
	// Find ignores the delete flag, preferring a live row.
	Find(ctx context.Context, f UserFilter) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, account string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, account string) (*domain.User, error)
	Restore(ctx context.Context, account string) (*domain.User, error)
}
