package auth

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
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)
}

// RegisterAdminRoutes mounts the token self-check used by the dashboard on
// page load.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/verify", h.Verify)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	res, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *Handler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": UserInfo{
			Username: c.GetString("username"),
			Role:     c.GetString("role"),
		},
	})
}

// Logout exists for API symmetry; the token is discarded client-side.
func (h *Handler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, http.StatusOK, nil, "Logged out")
}
