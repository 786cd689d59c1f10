package ports

import (
	"context"

	"github.com/advise-clothes/backend/internal/core/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	FindByID(ctx context.Context, id uint) (*domain.Company, error)
	FindAll(ctx context.Context) ([]*domain.Company, error)
}

type ClothesRepository interface {
	Create(ctx context.Context, c *domain.Clothes) error
	// FindByID loads the garment together with its company.
	FindByID(ctx context.Context, id uint) (*domain.Clothes, error)
	// List returns garments of companyID, or all garments when companyID is 0.
	List(ctx context.Context, companyID uint) ([]*domain.Clothes, error)
}
