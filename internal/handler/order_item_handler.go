package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
	"varejo/internal/service"
)

// OrderItemHandler handles order line-item endpoints.
type OrderItemHandler struct {
	itemService service.OrderItemService
}

// NewOrderItemHandler creates a new order item handler.
func NewOrderItemHandler(itemService service.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{itemService: itemService}
}

// OrderItemCreateRequest represents an order item creation request.
type OrderItemCreateRequest struct {
	OrderID       uint            `json:"order_id" validate:"required"`
	ProductID     uint            `json:"product_id" validate:"required"`
	Quantity      int             `json:"quantity" validate:"required,gt=0"`
	PriceAtMoment decimal.Decimal `json:"price_at_moment" validate:"required"`
}

// OrderItemUpdateRequest represents a partial order item update.
type OrderItemUpdateRequest struct {
	Quantity      *int             `json:"quantity" validate:"omitempty,gt=0"`
	PriceAtMoment *decimal.Decimal `json:"price_at_moment"`
}

// CreateItem godoc
// @Summary Add a product to an order
// @Tags order-products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderItemCreateRequest true "Item data"
// @Success 201 {object} model.OrderItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /order-products [post]
func (h *OrderItemHandler) CreateItem(c echo.Context) error {
	var req OrderItemCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &model.OrderItem{
		OrderID:       req.OrderID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		PriceAtMoment: req.PriceAtMoment,
	}

	created, err := h.itemService.CreateItem(c.Request().Context(), item)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetItem godoc
// @Summary Get order item by id
// @Tags order-products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} model.OrderItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /order-products/{id} [get]
func (h *OrderItemHandler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := h.itemService.GetItem(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// ListItems godoc
// @Summary List order items
// @Tags order-products
// @Produce json
// @Security BearerAuth
// @Param order_id query int false "Filter by order"
// @Param product_id query int false "Filter by product"
// @Param quantity query int false "Filter by exact quantity"
// @Param price_at_moment_min query number false "Minimum sale price"
// @Param price_at_moment_max query number false "Maximum sale price"
// @Param date_start query string false "Creation date lower bound (RFC 3339)"
// @Param date_end query string false "Creation date upper bound (RFC 3339)"
// @Success 200 {array} model.OrderItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /order-products [get]
func (h *OrderItemHandler) ListItems(c echo.Context) error {
	filter := repository.OrderItemFilter{
		OrderID:   uint(queryInt(c, "order_id", 0)),
		ProductID: uint(queryInt(c, "product_id", 0)),
		Quantity:  queryInt(c, "quantity", 0),
		PriceMin:  queryDecimal(c, "price_at_moment_min"),
		PriceMax:  queryDecimal(c, "price_at_moment_max"),
		DateStart: queryTime(c, "date_start"),
		DateEnd:   queryTime(c, "date_end"),
	}

	items, err := h.itemService.ListItems(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateItem godoc
// @Summary Update order item fields
// @Tags order-products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body OrderItemUpdateRequest true "Fields to update"
// @Success 200 {object} model.OrderItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /order-products/{id} [patch]
func (h *OrderItemHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req OrderItemUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.UpdateItem(c.Request().Context(), uint(id), service.OrderItemUpdateInput{
		Quantity:      req.Quantity,
		PriceAtMoment: req.PriceAtMoment,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete order item
// @Tags order-products
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /order-products/{id} [delete]
func (h *OrderItemHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.itemService.DeleteItem(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
