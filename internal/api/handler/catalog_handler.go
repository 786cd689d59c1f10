package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/advise-clothes/backend/internal/api/metrics"
	"github.com/advise-clothes/backend/internal/core/ports"
)

// CatalogHandler handles companies and their clothes. Domain errors are
// rendered by the central error handler.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateCompany godoc
// @Summary      Register a company
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createCompanyRequest  true  "Company"
// @Success      201   {object}  companyResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /companies [post]
func (h *CatalogHandler) CreateCompany(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.CreateCompany(c.Request().Context(), ports.CreateCompanyInput{
		Name:      req.Name,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return err
	}

	metrics.CatalogItemsCreatedTotal.WithLabelValues("company").Inc()
	return c.JSON(http.StatusCreated, toCompanyResponse(company))
}

// ListCompanies godoc
// @Summary      List companies
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  companyResponse
// @Router       /companies [get]
func (h *CatalogHandler) ListCompanies(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		out = append(out, toCompanyResponse(company))
	}
	return c.JSON(http.StatusOK, out)
}

// GetCompany godoc
// @Summary      Get a company
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  companyResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /companies/{id} [get]
func (h *CatalogHandler) GetCompany(c echo.Context) error {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint("id", &id).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	company, err := h.service.GetCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyResponse(company))
}

// CreateClothes godoc
// @Summary      Register a garment
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      createClothesRequest  true  "Garment"
// @Success      201   {object}  clothesResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse  "Company not found"
// @Router       /clothes [post]
func (h *CatalogHandler) CreateClothes(c echo.Context) error {
	var req createClothesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clothes, err := h.service.CreateClothes(c.Request().Context(), ports.CreateClothesInput{
		Name:      req.Name,
		Part:      req.Part,
		CompanyID: req.CompanyID,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return err
	}

	metrics.CatalogItemsCreatedTotal.WithLabelValues("clothes").Inc()
	return c.JSON(http.StatusCreated, toClothesResponse(clothes))
}

// ListClothes godoc
// @Summary      List clothes
// @Tags         catalog
// @Produce      json
// @Param        company_id  query     int  false  "Only clothes of this company"
// @Success      200         {array}   clothesResponse
// @Failure      400         {object}  errorResponse
// @Router       /clothes [get]
func (h *CatalogHandler) ListClothes(c echo.Context) error {
	var companyID uint
	if err := echo.QueryParamsBinder(c).Uint("company_id", &companyID).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid company_id")
	}

	clothes, err := h.service.ListClothes(c.Request().Context(), companyID)
	if err != nil {
		return err
	}

	out := make([]clothesResponse, 0, len(clothes))
	for _, item := range clothes {
		out = append(out, toClothesResponse(item))
	}
	return c.JSON(http.StatusOK, out)
}

// GetClothes godoc
// @Summary      Get a garment with its company
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Clothes ID"
// @Success      200  {object}  clothesResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clothes/{id} [get]
func (h *CatalogHandler) GetClothes(c echo.Context) error {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint("id", &id).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	clothes, err := h.service.GetClothes(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClothesResponse(clothes))
}
