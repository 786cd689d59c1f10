package ports

import (
	"context"

	"github.com/advise-clothes/backend/internal/core/domain"
)

type SessionService interface {
	FindBySessionKey(ctx context.Context, key string) (*domain.Session, error)
	IsExist(ctx context.Context, key string) (bool, error)
	// Create logs a live user in and opens a session for it.
	Create(ctx context.Context, account, password string) (*domain.Session, error)
	// Delete removes the session and returns it.
	Delete(ctx context.Context, key string) (*domain.Session, error)
}
