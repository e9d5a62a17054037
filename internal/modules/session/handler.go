package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tatvaops/internal/domain"
	"tatvaops/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", h.GetFlags)
	rg.PUT("/session/role", h.SetRole)
}

func (h *Handler) GetFlags(c *gin.Context) {
	userID := c.GetInt64("user_id")

	flags, err := h.service.Snapshot(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load session flags")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"flags": flags})
}

type setRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *Handler) SetRole(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetCurrentRole(c.Request.Context(), userID, domain.UserRole(req.Role)); err != nil {
		if err == ErrInvalidRole {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Role must be customer or vendor")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update role")
		return
	}
	c.Status(http.StatusNoContent)
}
