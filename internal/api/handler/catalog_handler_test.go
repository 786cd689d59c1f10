package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

type stubCatalogService struct {
	createCompanyFn func(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error)
	getCompanyFn    func(ctx context.Context, id uint) (*domain.Company, error)
	createClothesFn func(ctx context.Context, in ports.CreateClothesInput) (*domain.Clothes, error)
	getClothesFn    func(ctx context.Context, id uint) (*domain.Clothes, error)
	listClothesFn   func(ctx context.Context, companyID uint) ([]*domain.Clothes, error)
}

func (s *stubCatalogService) CreateCompany(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
	return s.createCompanyFn(ctx, in)
}

func (s *stubCatalogService) GetCompany(ctx context.Context, id uint) (*domain.Company, error) {
	return s.getCompanyFn(ctx, id)
}

func (s *stubCatalogService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return []*domain.Company{{ID: 1, Name: "Acme"}}, nil
}

func (s *stubCatalogService) CreateClothes(ctx context.Context, in ports.CreateClothesInput) (*domain.Clothes, error) {
	return s.createClothesFn(ctx, in)
}

func (s *stubCatalogService) GetClothes(ctx context.Context, id uint) (*domain.Clothes, error) {
	return s.getClothesFn(ctx, id)
}

func (s *stubCatalogService) ListClothes(ctx context.Context, companyID uint) ([]*domain.Clothes, error) {
	return s.listClothesFn(ctx, companyID)
}

func TestCatalogHandler_CreateCompany(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createCompanyFn: func(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
			return &domain.Company{ID: 3, Name: in.Name, CreatedBy: in.CreatedBy}, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/companies", `{"name":"Acme","createdBy":"alice"}`), rec)
	if err := h.CreateCompany(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_CreateCompany_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createCompanyFn: func(ctx context.Context, in ports.CreateCompanyInput) (*domain.Company, error) {
			return nil, domain.ErrCompanyExists
		},
	}
	h := NewCatalogHandler(stub)

	c := e.NewContext(jsonRequest(http.MethodPost, "/companies", `{"name":"Acme"}`), httptest.NewRecorder())
	if err := h.CreateCompany(c); !errors.Is(err, domain.ErrCompanyExists) {
		t.Fatalf("expected ErrCompanyExists, got %v", err)
	}
}

func TestCatalogHandler_GetCompany_BadID(t *testing.T) {
	e := newTestEcho()
	h := NewCatalogHandler(&stubCatalogService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/companies/abc", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetCompany(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCatalogHandler_CreateClothes_UnknownCompany(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createClothesFn: func(ctx context.Context, in ports.CreateClothesInput) (*domain.Clothes, error) {
			if in.CompanyID != 99 || in.Part != "TOP" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil, domain.ErrCompanyNotFound
		},
	}
	h := NewCatalogHandler(stub)

	c := e.NewContext(jsonRequest(http.MethodPost, "/clothes", `{"name":"Tee","part":"TOP","companyId":99}`), httptest.NewRecorder())
	if err := h.CreateClothes(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCatalogHandler_GetClothes_WithCompany(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		getClothesFn: func(ctx context.Context, id uint) (*domain.Clothes, error) {
			return &domain.Clothes{ID: id, Name: "Tee", Part: domain.PartTop, CompanyID: 1, Company: &domain.Company{ID: 1, Name: "Acme"}}, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/clothes/5", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.GetClothes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	company, ok := body["company"].(map[string]any)
	if !ok || company["name"] != "Acme" || body["id"] != float64(5) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCatalogHandler_ListClothes_FilterByCompany(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listClothesFn: func(ctx context.Context, companyID uint) ([]*domain.Clothes, error) {
			if companyID != 7 {
				t.Fatalf("expected company 7, got %d", companyID)
			}
			return nil, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	if err := h.ListClothes(e.NewContext(httptest.NewRequest(http.MethodGet, "/clothes?company_id=7", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Fatalf("expected empty array, got %d %q", rec.Code, rec.Body.String())
	}

	err := h.ListClothes(e.NewContext(httptest.NewRequest(http.MethodGet, "/clothes?company_id=x", nil), httptest.NewRecorder()))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
