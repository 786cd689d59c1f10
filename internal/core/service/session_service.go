package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// CredentialChecker resolves a live user from login credentials.
type CredentialChecker interface {
	FindLiveWithPassword(ctx context.Context, f ports.UserFilter, password string) (*domain.User, error)
}

type SessionService struct {
	repo   ports.SessionRepository
	users  CredentialChecker
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
	newKey func() string
}

func NewSessionService(repo ports.SessionRepository, users CredentialChecker, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		repo:   repo,
		users:  users,
		ttl:    ttl,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newKey: uuid.NewString,
	}
}

func (s *SessionService) FindBySessionKey(ctx context.Context, key string) (*domain.Session, error) {
	if key == "" {
		return nil, domain.ErrSessionNotFound
	}
	session, err := s.repo.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) IsExist(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	ok, err := s.repo.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("session exists: %w", err)
	}
	return ok, nil
}

func (s *SessionService) Create(ctx context.Context, account, password string) (*domain.Session, error) {
	if account == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindLiveWithPassword(ctx, ports.UserFilter{Account: account}, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	session := &domain.Session{
		Key:       s.newKey(),
		Account:   user.Account,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Save(ctx, session, s.ttl); err != nil {
		s.logger.Error().Err(err).Str("account", account).Msg("failed to save session")
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info().Str("account", account).Msg("session created")
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, key string) (*domain.Session, error) {
	session, err := s.FindBySessionKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info().Str("account", session.Account).Msg("session deleted")
	return session, nil
}
