package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

// liveFirst orders live rows ahead of deleted ones.
const liveFirst = "CASE WHEN deleted_reason = 0 THEN 0 ELSE 1 END"

// UserRepository implements ports.UserRepository using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepository = (*UserRepository)(nil)

// Find returns users matching f, live rows first and newest first.
func (r *UserRepository) Find(ctx context.Context, f ports.UserFilter, limit int) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Model(&domain.User{})
	if f.Account != "" {
		q = q.Where("account = ?", f.Account)
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	if f.PhoneNumber != "" {
		q = q.Where("phone_number = ?", f.PhoneNumber)
	}
	if !f.IncludeDeleted {
		q = q.Where("deleted_reason = ?", domain.Active)
	}
	q = q.Order(liveFirst).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var users []*domain.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

// FindAll returns every user, deleted ones included, in insertion order.
func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var users []*domain.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return users, nil
}

// Create inserts u. The partial unique index on live accounts turns a
// concurrent duplicate into domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Update writes every column of u back to its row.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Save(u)
	if err := res.Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
