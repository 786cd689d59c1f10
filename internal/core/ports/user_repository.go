package ports

import (
	"context"

	"github.com/advise-clothes/backend/internal/core/domain"
)

// UserFilter carries lookup criteria for users. Empty string fields are
// unconstrained; the non-empty ones are combined with AND.
type UserFilter struct {
	Account     string
	Email       string
	PhoneNumber string
	// IncludeDeleted widens the lookup to soft-deleted rows.
	IncludeDeleted bool
}

// IsEmpty reports whether the filter constrains no field.
func (f UserFilter) IsEmpty() bool {
	return f.Account == "" && f.Email == "" && f.PhoneNumber == ""
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Find returns at most limit users matching f, live rows first and then
	// newest first. limit <= 0 means no limit.
	Find(ctx context.Context, f UserFilter, limit int) ([]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Create inserts a new row and fills in the storage key.
	// A live duplicate account yields domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// Update writes every field of u to the row identified by u.ID.
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
}

// UserAuditLog records user lifecycle events.
type UserAuditLog interface {
	Record(ctx context.Context, event domain.UserEvent) error
}
