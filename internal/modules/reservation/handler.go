package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pricna/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the booking widget endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.Create)
	rg.POST("/reservations/check-availability", h.CheckAvailability)
	rg.GET("/reservations/availability/:date", h.Availability)
}

// RegisterAdminRoutes mounts the dashboard endpoints; the caller wraps the
// group with auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.ListAll)
	rg.GET("/reservations/by-date/:date", h.ListByDate)
	rg.GET("/reservations/range", h.ListByRange)
	rg.PUT("/reservations/:id", h.Update)
	rg.POST("/reservations/:id/cancel", h.Cancel)
	rg.DELETE("/reservations/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, r, "Reservation created")
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date and timeSlots are required")
		return
	}

	res, err := h.service.CheckAvailability(c.Request.Context(), req.Date, req.TimeSlots)
	if err != nil {
		h.writeError(c, err, "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Availability(c *gin.Context) {
	res, err := h.service.Availability(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.writeError(c, err, "Failed to compute availability")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListByDate(c *gin.Context) {
	list, err := h.service.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.writeError(c, err, "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListByRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start and end query parameters are required")
		return
	}

	list, err := h.service.ListByRange(c.Request.Context(), start, end)
	if err != nil {
		h.writeError(c, err, "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, r, "Reservation updated")
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to cancel reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, r, "Reservation cancelled")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete reservation")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil, "Reservation deleted")
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return 0, err
	}
	return id, nil
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "SLOT_CONFLICT",
			"Some time slots are no longer available", gin.H{
				"conflictingSlots": conflict.Conflicting,
				"bookedSlots":      conflict.Booked,
			})
	case errors.Is(err, ErrClosedDay):
		response.Error(c, http.StatusConflict, "BUSINESS_CLOSED", "The office is closed on the requested date")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
