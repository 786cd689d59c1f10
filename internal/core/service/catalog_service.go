package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

type CatalogService struct {
	companies ports.CompanyRepository
	clothes   ports.ClothesRepository
	logger    zerolog.Logger
}

func NewCatalogService(companies ports.CompanyRepository, clothes ports.ClothesRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{companies: companies, clothes: clothes, logger: logger}
}

func (s *CatalogService) CreateCompany(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidCatalogItem
	}

	now := time.Now().UTC()
	company := &domain.Company{
		Name:      name,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("company_id", company.ID).Str("name", company.Name).Msg("company created")
	return company, nil
}

func (s *CatalogService) GetCompany(ctx context.Context, id uint) (*domain.Company, error) {
	return s.companies.FindByID(ctx, id)
}

func (s *CatalogService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return s.companies.FindAll(ctx)
}

// CreateClothes registers a garment under an existing company.
func (s *CatalogService) CreateClothes(ctx context.Context, in ports.CreateClothesInput) (*domain.Clothes, error) {
	part := domain.ClothesPart(strings.ToUpper(in.Part))
	if strings.TrimSpace(in.Name) == "" || !part.Valid() || in.CompanyID == 0 {
		return nil, domain.ErrInvalidCatalogItem
	}

	company, err := s.companies.FindByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	clothes := &domain.Clothes{
		Name:      strings.TrimSpace(in.Name),
		Part:      part,
		CompanyID: company.ID,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.clothes.Create(ctx, clothes); err != nil {
		s.logger.Error().Err(err).Uint("company_id", company.ID).Msg("failed to create clothes")
		return nil, err
	}
	clothes.Company = company

	s.logger.Info().Uint("clothes_id", clothes.ID).Uint("company_id", company.ID).Msg("clothes created")
	return clothes, nil
}

func (s *CatalogService) GetClothes(ctx context.Context, id uint) (*domain.Clothes, error) {
	return s.clothes.FindByID(ctx, id)
}

func (s *CatalogService) ListClothes(ctx context.Context, companyID uint) ([]*domain.Clothes, error) {
	return s.clothes.List(ctx, companyID)
}
