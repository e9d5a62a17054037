package milestone

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
	ms := rg.Group("/projects/:id/milestones")
	{
		ms.GET("", h.GetState)
		ms.POST("", middleware.VendorOnly(), h.Add)
		ms.POST("/reorder", h.Reorder)
		ms.POST("/:number/expand", h.Expand)
		ms.POST("/:number/collapse", h.Collapse)
		ms.PATCH("/:number", h.EditField)
		ms.POST("/:number/save", h.Save)
		ms.POST("/:number/reset", h.Reset)
		ms.POST("/:number/transition", middleware.VendorOnly(), h.Transition)
	}
}

func (h *Handler) GetState(c *gin.Context) {
	projectID, _, ok := h.pathIDs(c, false)
	if !ok {
		return
	}

	views, err := h.service.State(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load milestones")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"milestones": views})
}

func (h *Handler) Add(c *gin.Context) {
	projectID, _, ok := h.pathIDs(c, false)
	if !ok {
		return
	}

	var req AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid milestone", errs)
		return
	}

	m, err := h.service.Add(c.Request.Context(), projectID, AddInput{
		Title:        req.Title,
		Description:  req.Description,
		Amount:       req.Amount,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"milestone": m})
}

func (h *Handler) Reorder(c *gin.Context) {
	projectID, _, ok := h.pathIDs(c, false)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ms, err := h.service.Move(c.Request.Context(), projectID, *req.FromIndex, *req.ToIndex)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"milestones": ms})
}

func (h *Handler) Expand(c *gin.Context) {
	projectID, number, ok := h.pathIDs(c, true)
	if !ok {
		return
	}
	if err := h.service.Expand(c.Request.Context(), projectID, number); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"expanded": number})
}

func (h *Handler) Collapse(c *gin.Context) {
	projectID, number, ok := h.pathIDs(c, true)
	if !ok {
		return
	}
	h.service.Collapse(projectID, number)
	response.Success(c, http.StatusOK, gin.H{"expanded": nil})
}

func (h *Handler) EditField(c *gin.Context) {
	projectID, number, ok := h.pathIDs(c, true)
	if !ok {
		return
	}

	var req EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.EditField(projectID, number, req.Field, req.Value); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Save(c *gin.Context) {
	projectID, number, ok := h.pathIDs(c, true)
	if !ok {
		return
	}

	done, err := h.service.Save(c.Request.Context(), projectID, number)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// The save itself is asynchronous; the request waits for the outcome
	// so the dashboard can flip its saving indicator off deterministically.
	if err := <-done; err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": number})
}

func (h *Handler) Reset(c *gin.Context) {
	projectID, number, ok := h.pathIDs(c, true)
	if !ok {
		return
	}
	if err := h.service.Reset(c.Request.Context(), projectID, number); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Transition(c *gin.Context) {
	projectID, number, ok := h.pathIDs(c, true)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.Transition(c.Request.Context(), projectID, number, domain.MilestoneStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) pathIDs(c *gin.Context, needNumber bool) (projectID int64, number int, ok bool) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || projectID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project id")
		return 0, 0, false
	}
	if !needNumber {
		return projectID, 0, true
	}
	number, err = strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid milestone number")
		return 0, 0, false
	}
	return projectID, number, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation, ErrInvalidInput, ErrInvalidMove:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Milestone not found")
	case ErrNoDraft:
		response.Error(c, http.StatusConflict, "NO_DRAFT", "Milestone is not being edited")
	case ErrSaveInFlight:
		response.Error(c, http.StatusConflict, "SAVE_IN_FLIGHT", "A save for this milestone is already running")
	case ErrSaveFailed:
		response.Error(c, http.StatusBadGateway, "SAVE_FAILED", "Milestone save did not complete")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Milestone status can only move forward")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
