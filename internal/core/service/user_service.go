package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

// UserService implements the user lifecycle on top of a UserRepository.
type UserService struct {
	repo     ports.UserRepository
	audit    ports.UserAuditLog
	logger   zerolog.Logger
	hashCost int
	now      func() time.Time
}

// NewUserService builds a UserService. A nil audit log discards events.
func NewUserService(repo ports.UserRepository, audit ports.UserAuditLog, logger zerolog.Logger) *UserService {
	if audit == nil {
		audit = discardAudit{}
	}
	return &UserService{
		repo:     repo,
		audit:    audit,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *UserService) FindLive(ctx context.Context, f ports.UserFilter) (*domain.User, error) {
	if f.IsEmpty() {
		return nil, domain.ErrUserNotFound
	}
	f.IncludeDeleted = false

	// Two rows are enough to tell a unique match from an ambiguous one.
	users, err := s.repo.Find(ctx, f, 2)
	if err != nil {
		return nil, fmt.Errorf("find live user: %w", err)
	}
	switch len(users) {
	case 0:
		return nil, domain.ErrUserNotFound
	case 1:
		return users[0], nil
	default:
		s.logger.Warn().
			Str("account", f.Account).
			Str("email", f.Email).
			Str("phone_number", f.PhoneNumber).
			Msg("ambiguous user filter")
		return nil, domain.ErrUserNotFound
	}
}

func (s *UserService) FindLiveWithPassword(ctx context.Context, f ports.UserFilter, password string) (*domain.User, error) {
	user, err := s.FindLive(ctx, f)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Find(ctx context.Context, f ports.UserFilter) (*domain.User, error) {
	if f.IsEmpty() {
		return nil, domain.ErrUserNotFound
	}
	f.IncludeDeleted = true

	users, err := s.repo.Find(ctx, f, 1)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users[0], nil
}

func (s *UserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	_, err := s.FindLive(ctx, ports.UserFilter{Account: in.Account})
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		Account:       in.Account,
		Password:      hash,
		Nickname:      in.Nickname,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Area:          in.Area,
		Height:        in.Height,
		Weight:        in.Weight,
		DeletedReason: domain.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("account", in.Account).Msg("failed to create user")
		}
		return nil, err
	}

	s.record(ctx, created, domain.UserCreated)
	s.logger.Info().Str("account", created.Account).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, account string, patch domain.UserPatch) (*domain.User, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	user, err := s.FindLive(ctx, ports.UserFilter{Account: account})
	if err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := s.hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}
	patch.Apply(user)
	user.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.record(ctx, updated, domain.UserUpdated)
	s.logger.Info().Str("account", account).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, account string) (*domain.User, error) {
	user, err := s.FindLive(ctx, ports.UserFilter{Account: account})
	if err != nil {
		return nil, err
	}

	if err := user.Delete(domain.ReasonWithdrawn); err != nil {
		return nil, err
	}
	user.UpdatedAt = s.now()

	deleted, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.record(ctx, deleted, domain.UserDeleted)
	s.logger.Info().Str("account", account).Int("deleted_reason", int(deleted.DeletedReason)).Msg("user deleted")
	return deleted, nil
}

func (s *UserService) Restore(ctx context.Context, account string) (*domain.User, error) {
	user, err := s.Find(ctx, ports.UserFilter{Account: account})
	if err != nil {
		return nil, err
	}

	user.Restore()
	user.UpdatedAt = s.now()

	restored, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("restore user: %w", err)
	}

	s.record(ctx, restored, domain.UserRestored)
	s.logger.Info().Str("account", account).Msg("user restored")
	return restored, nil
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// record appends to the audit trail. Failures are logged, never returned.
func (s *UserService) record(ctx context.Context, u *domain.User, action domain.UserAction) {
	event := domain.UserEvent{
		Account:       u.Account,
		Action:        action,
		DeletedReason: u.DeletedReason,
		OccurredAt:    s.now(),
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("account", u.Account).Str("action", string(action)).Msg("failed to record user event")
	}
}

func validateCreate(in ports.CreateUserInput) error {
	required := []string{in.Account, in.Password, in.Nickname, in.Email, in.PhoneNumber}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return domain.ErrInvalidUser
		}
	}
	if len(in.Password) > domain.MaxPasswordLength {
		return domain.ErrInvalidUser
	}
	if in.Height < 0 || in.Weight < 0 {
		return domain.ErrInvalidUser
	}
	return nil
}

func validatePatch(p domain.UserPatch) error {
	if p.Password != nil && (*p.Password == "" || len(*p.Password) > domain.MaxPasswordLength) {
		return domain.ErrInvalidUser
	}
	if (p.Height != nil && *p.Height < 0) || (p.Weight != nil && *p.Weight < 0) {
		return domain.ErrInvalidUser
	}
	return nil
}

type discardAudit struct{}

func (discardAudit) Record(context.Context, domain.UserEvent) error { return nil }
