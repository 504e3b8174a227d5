package inquiry

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricna/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/inquiries", h.Create)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/inquiries", h.ListAll)
	rg.GET("/inquiries/type/:type", h.ListByType)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "type, name, email and message are required")
		return
	}

	i, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create inquiry")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, i, "Inquiry submitted")
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list inquiries")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListByType(c *gin.Context) {
	list, err := h.service.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.writeError(c, err, "Failed to list inquiries")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Inquiry type must be contact, apartment or office")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid inquiry data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
