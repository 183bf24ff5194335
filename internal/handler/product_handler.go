package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
	"varejo/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductCreateRequest represents a product creation request.
type ProductCreateRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	Barcode        string          `json:"barcode" validate:"omitempty,max=50"`
	Section        string          `json:"section" validate:"omitempty,max=100"`
	Stock          int             `json:"stock" validate:"gte=0"`
	ExpirationDate *time.Time      `json:"expiration_date"`
	ImageURL       string          `json:"image_url"`
}

// ProductUpdateRequest represents a partial product update.
type ProductUpdateRequest struct {
	Name           *string          `json:"name" validate:"omitempty,max=255"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	Section        *string          `json:"section" validate:"omitempty,max=100"`
	Stock          *int             `json:"stock" validate:"omitempty,gte=0"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	ImageURL       *string          `json:"image_url"`
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductCreateRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := &model.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Barcode:        req.Barcode,
		Section:        req.Section,
		Stock:          req.Stock,
		ExpirationDate: req.ExpirationDate,
		ImageURL:       req.ImageURL,
	}

	created, err := h.productService.CreateProduct(c.Request().Context(), product)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetProduct godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	product, err := h.productService.GetProduct(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param section query string false "Filter by section substring"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Param availability query bool false "In stock (true) or out of stock (false)"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		Section:   c.QueryParam("section"),
		PriceMin:  queryDecimal(c, "price_min"),
		PriceMax:  queryDecimal(c, "price_max"),
		Available: queryBool(c, "availability"),
		Limit:     queryInt(c, "limit", 10),
		Offset:    queryInt(c, "offset", 0),
	}

	products, err := h.productService.ListProducts(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateProduct godoc
// @Summary Update product fields
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductUpdateRequest true "Fields to update"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), uint(id), service.ProductUpdateInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Section:        req.Section,
		Stock:          req.Stock,
		ExpirationDate: req.ExpirationDate,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.productService.DeleteProduct(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// queryDecimal parses a decimal query parameter, nil when absent or invalid.
func queryDecimal(c echo.Context, name string) *decimal.Decimal {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := decimal.NewFromString(v); err == nil {
			return &parsed
		}
	}
	return nil
}

// queryBool parses a boolean query parameter, nil when absent or invalid.
func queryBool(c echo.Context, name string) *bool {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return &parsed
		}
	}
	return nil
}
