package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "assistec_os/internal/adapter/http/dto/request"
	response "assistec_os/internal/adapter/http/dto/response"
	"assistec_os/internal/domain/schedule"
	"assistec_os/internal/usecase"
	"assistec_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTechnicianPayload = pkg.NewDomainErrorSimple("INVALID_TECHNICIAN_INPUT", "Invalid technician payload", http.StatusBadRequest)
	errInvalidDate              = pkg.NewDomainErrorSimple("INVALID_DATE", "Expected date=YYYY-MM-DD", http.StatusBadRequest)
	errInvalidMonth             = pkg.NewDomainErrorSimple("INVALID_MONTH", "Expected month=YYYY-MM", http.StatusBadRequest)
	errInvalidPosition          = pkg.NewDomainErrorSimple("INVALID_POSITION", "Expected a non-negative position", http.StatusBadRequest)
)

// SchedulingHandler exposes the technician directory and the slot/density
// reads dispatchers use when picking a date.

type SchedulingHandler struct {
	technicians  usecase.ITechnicianUseCase
	availability usecase.IAvailabilityUseCase
}

func NewSchedulingHandler(technicians usecase.ITechnicianUseCase, availability usecase.IAvailabilityUseCase) *SchedulingHandler {
	return &SchedulingHandler{technicians: technicians, availability: availability}
}

// CreateTechnician godoc
// @Summary  Register a technician
// @Tags     technicians
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateTechnicianRequest true "technician"
// @Success  201 {object} response.TechnicianResponse
// @Router   /technicians [post]
func (h *SchedulingHandler) CreateTechnician(c *gin.Context) {
	var payload request.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	tech, err := h.technicians.Create(c.Request.Context(), payload.ResolveName(), payload.ResolveActive())
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTechnician(tech))
}

// ListTechnicians godoc
// @Summary  List technicians
// @Tags     technicians
// @Produce  json
// @Success  200 {array} response.TechnicianResponse
// @Router   /technicians [get]
func (h *SchedulingHandler) ListTechnicians(c *gin.Context) {
	list, err := h.technicians.List(c.Request.Context())
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicians(list))
}

// GetAvailability godoc
// @Summary  Slots still bookable for a technician on a date
// @Tags     technicians
// @Produce  json
// @Param    id path string true "technician id"
// @Param    date query string true "date (YYYY-MM-DD)"
// @Success  200 {object} response.AvailabilityResponse
// @Router   /technicians/{id}/availability [get]
func (h *SchedulingHandler) GetAvailability(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return
	}

	technicianID := c.Param("id")
	day, err := h.availability.ComputeAvailability(c.Request.Context(), technicianID, date)
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDayAvailability(technicianID, day))
}

// GetMonthlyDensity godoc
// @Summary  Appointment count per day for a technician's month
// @Tags     technicians
// @Produce  json
// @Param    id path string true "technician id"
// @Param    month query string true "month (YYYY-MM)"
// @Success  200 {object} response.DensityResponse
// @Router   /technicians/{id}/density [get]
func (h *SchedulingHandler) GetMonthlyDensity(c *gin.Context) {
	month := c.Query("month")
	firstDay, err := time.Parse("2006-01", month)
	if err != nil {
		c.JSON(errInvalidMonth.HTTPStatus, errInvalidMonth.ToHTTPError())
		return
	}
	lastDay := firstDay.AddDate(0, 1, -1)

	technicianID := c.Param("id")
	days, err := h.availability.ComputeMonthlyDensity(c.Request.Context(), technicianID, firstDay, lastDay)
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDensity(technicianID, month, days))
}

// GetRouteSlot godoc
// @Summary  Default time for a stop at a route position
// @Tags     scheduling
// @Produce  json
// @Param    position query int true "zero-based stop position"
// @Success  200 {object} response.RouteSlotResponse
// @Router   /route-slots [get]
func (h *SchedulingHandler) GetRouteSlot(c *gin.Context) {
	position, err := strconv.Atoi(c.Query("position"))
	if err != nil || position < 0 {
		c.JSON(errInvalidPosition.HTTPStatus, errInvalidPosition.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RouteSlotResponse{
		Position:      position,
		SuggestedTime: schedule.SuggestRouteSlot(position),
	})
}

func mapSchedulingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidTechnicianName),
		errors.Is(err, usecase.ErrInvalidDateWindow):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "Dependency is unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
