package ports

import (
	"context"

	"github.com/advise-clothes/backend/internal/core/domain"
)

// CreateCompanyInput carries the data needed to register a company.
type CreateCompanyInput struct {
	Name      string
	CreatedBy string
}

// CreateClothesInput carries the data needed to register a garment.
type CreateClothesInput struct {
	Name      string
	Part      string
	CompanyID uint
	CreatedBy string
}

// CatalogService defines use cases for companies and their clothes.
type CatalogService interface {
	CreateCompany(ctx context.Context, in CreateCompanyInput) (*domain.Company, error)
	GetCompany(ctx context.Context, id uint) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	CreateClothes(ctx context.Context, in CreateClothesInput) (*domain.Clothes, error)
	GetClothes(ctx context.Context, id uint) (*domain.Clothes, error)
	ListClothes(ctx context.Context, companyID uint) ([]*domain.Clothes, error)
}
