package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tatvaops/internal/domain"
	"tatvaops/internal/middleware"
	"tatvaops/internal/pkg/response"
	"tatvaops/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", middleware.CustomerOnly(), h.Create)
		projects.GET("", middleware.CustomerOnly(), h.List)
		projects.GET("/:id", h.Get)
		projects.POST("/:id/milestones/generate", middleware.VendorOnly(), h.GenerateMilestones)
		projects.POST("/:id/milestones/regenerate", middleware.VendorOnly(), h.ResetMilestones)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	projects, err := h.service.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) Get(c *gin.Context) {
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}

	p, err := h.service.GetForUser(c.Request.Context(), projectID,
		c.GetInt64("user_id"), domain.UserRole(c.GetString("role")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) GenerateMilestones(c *gin.Context) {
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	userID := c.GetInt64("user_id")

	var req GenerateMilestonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid milestone setup", errs)
		return
	}

	res, err := h.service.GenerateMilestones(c.Request.Context(), projectID, userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ResetMilestones(c *gin.Context) {
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	userID := c.GetInt64("user_id")

	if err := h.service.ResetMilestones(c.Request.Context(), projectID, userID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || projectID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project id")
		return 0, false
	}
	return projectID, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your project")
	case ErrInspectionRequired:
		response.Error(c, http.StatusConflict, "INSPECTION_REQUIRED", "Complete the site inspection before generating milestones")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
