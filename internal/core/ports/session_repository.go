package ports

import (
	"context"
	"time"

	"github.com/advise-clothes/backend/internal/core/domain"
)

// SessionRepository persists sessions with an expiry.
type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Find returns domain.ErrSessionNotFound when the key is unknown or expired.
	Find(ctx context.Context, key string) (*domain.Session, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
