package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/service"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new client handler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ClientCreateRequest represents a client creation request.
type ClientCreateRequest struct {
	Name    string  `json:"name" validate:"required,max=64"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	CpfCnpj string  `json:"cpf_cnpj" validate:"required,max=20"`
	Address string  `json:"address" validate:"required"`
}

// ClientUpdateRequest represents a partial client update.
type ClientUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=64"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	CpfCnpj *string `json:"cpf_cnpj" validate:"omitempty,max=20"`
	Address *string `json:"address"`
}

// CreateClient godoc
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClientCreateRequest true "Client data"
// @Success 201 {object} model.Client
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req ClientCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client := &model.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CpfCnpj: req.CpfCnpj,
		Address: req.Address,
	}

	created, err := h.clientService.CreateClient(c.Request().Context(), client)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetClient godoc
// @Summary Get client by id
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} model.Client
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	client, err := h.clientService.GetClient(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, client)
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param name query string false "Filter by name substring"
// @Param email query string false "Filter by email substring"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.Client
// @Failure 401 {object} errors.ErrorResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c echo.Context) error {
	limit := queryInt(c, "limit", 10)
	offset := queryInt(c, "offset", 0)

	clients, err := h.clientService.ListClients(c.Request().Context(), c.QueryParam("name"), c.QueryParam("email"), limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, clients)
}

// UpdateClient godoc
// @Summary Update client fields
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param request body ClientUpdateRequest true "Fields to update"
// @Success 200 {object} model.Client
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /clients/{id} [patch]
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ClientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clientService.UpdateClient(c.Request().Context(), uint(id), service.ClientUpdateInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CpfCnpj: req.CpfCnpj,
		Address: req.Address,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient godoc
// @Summary Delete client
// @Tags clients
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.clientService.DeleteClient(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
