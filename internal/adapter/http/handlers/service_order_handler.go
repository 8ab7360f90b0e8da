package handlers

import (
	"errors"
	"net/http"

	request "assistec_os/internal/adapter/http/dto/request"
	response "assistec_os/internal/adapter/http/dto/response"
	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase"
	"assistec_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// ServiceOrderHandler exposes intake and lifecycle transitions over HTTP.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Create a service order in pending state
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateOrderRequest true "intake payload"
// @Success  201 {object} response.OrderResponse
// @Router   /orders [post]
func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), entities.AttendanceType(payload.ResolveAttendanceType()))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// GetOrder godoc
// @Summary  Fetch a service order
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id} [get]
func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// UpdateStatus godoc
// @Summary  Apply a lifecycle transition to an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    payload body request.TransitionRequest true "target status and guard fields"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	params := usecase.TransitionParams{
		TechnicianID:  payload.TechnicianID,
		ScheduledAt:   payload.ScheduledAt,
		FinalCost:     payload.FinalCost,
		PaymentStatus: entities.PaymentStatus(payload.PaymentStatus),
	}
	order, err := h.usecase.ApplyTransition(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.ResolveStatus()), params)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// CancelOrder godoc
// @Summary  Cancel an order (idempotent)
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/cancel [patch]
func (h *ServiceOrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidAttendanceType),
		errors.Is(err, usecase.ErrMissingRequiredField),
		errors.Is(err, usecase.ErrScheduledInPast),
		errors.Is(err, usecase.ErrSlotNotInCatalog):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested status is not a legal successor", http.StatusConflict)
	case errors.Is(err, usecase.ErrTechnicianInactive):
		return pkg.NewDomainErrorSimple("TECHNICIAN_INACTIVE", "Technician is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrSlotConflict):
		return pkg.NewDomainErrorSimple("SLOT_CONFLICT", "Slot is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "Dependency is unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
