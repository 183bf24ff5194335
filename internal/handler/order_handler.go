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

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderCreateRequest represents an order creation request.
type OrderCreateRequest struct {
	ClientID    uint            `json:"client_id" validate:"required"`
	UserID      uint            `json:"user_id" validate:"required"`
	Status      string          `json:"status" validate:"required,max=20"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
}

// OrderUpdateRequest represents a partial order update.
type OrderUpdateRequest struct {
	ClientID    *uint            `json:"client_id"`
	UserID      *uint            `json:"user_id"`
	Status      *string          `json:"status" validate:"omitempty,max=20"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
}

// CreateOrder godoc
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderCreateRequest true "Order data"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order := &model.Order{
		ClientID:    req.ClientID,
		UserID:      req.UserID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
	}

	created, err := h.orderService.CreateOrder(c.Request().Context(), order)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetOrder godoc
// @Summary Get order by id
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, order)
}

// ListOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param date_start query string false "Creation date lower bound (RFC 3339)"
// @Param date_end query string false "Creation date upper bound (RFC 3339)"
// @Param product_id query int false "Filter by product in the order"
// @Param client_id query int false "Filter by client"
// @Param section query string false "Filter by product section"
// @Param status query string false "Filter by order status"
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter := repository.OrderFilter{
		DateStart: queryTime(c, "date_start"),
		DateEnd:   queryTime(c, "date_end"),
		ProductID: uint(queryInt(c, "product_id", 0)),
		ClientID:  uint(queryInt(c, "client_id", 0)),
		Section:   c.QueryParam("section"),
		Status:    c.QueryParam("status"),
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrder godoc
// @Summary Update order fields
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body OrderUpdateRequest true "Fields to update"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateOrder(c.Request().Context(), uint(id), service.OrderUpdateInput{
		ClientID:    req.ClientID,
		UserID:      req.UserID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete order
// @Tags orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.orderService.DeleteOrder(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// queryTime parses an RFC 3339 query parameter, nil when absent or invalid.
func queryTime(c echo.Context, name string) *time.Time {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return &parsed
		}
	}
	return nil
}
