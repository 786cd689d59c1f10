package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

type ClothesRepository struct {
	db *gorm.DB
}

func NewClothesRepository(db *gorm.DB) *ClothesRepository {
	return &ClothesRepository{db: db}
}

var _ ports.ClothesRepository = (*ClothesRepository)(nil)

// Create inserts c without touching its company association.
func (r *ClothesRepository) Create(ctx context.Context, c *domain.Clothes) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Omit("Company").Create(c).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("create clothes: %w", err)
	}
	return nil
}

func (r *ClothesRepository) FindByID(ctx context.Context, id uint) (*domain.Clothes, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Clothes
	if err := r.db.WithContext(ctx).Preload("Company").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClothesNotFound
		}
		return nil, fmt.Errorf("find clothes: %w", err)
	}
	return &c, nil
}

func (r *ClothesRepository) List(ctx context.Context, companyID uint) ([]*domain.Clothes, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Preload("Company")
	if companyID != 0 {
		q = q.Where("company_id = ?", companyID)
	}

	var clothes []*domain.Clothes
	if err := q.Order("id").Find(&clothes).Error; err != nil {
		return nil, fmt.Errorf("list clothes: %w", err)
	}
	return clothes, nil
}
