package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/types"
)

type FeedbackHandler struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackHandler(feedbackService service.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	{
		feedback.POST("", h.CreateFeedback)
		feedback.GET("", h.ListFeedback)
	}
}

// CreateFeedback records a student's meal rating.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	actorID, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(c.Request.Context(), actorID, role, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback lists ratings for admins, optionally filtered by meal.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	_, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var mealID *uuid.UUID
	if mealParam := c.Query("meal_id"); mealParam != "" {
		id, err := uuid.Parse(mealParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal ID"})
			return
		}
		mealID = &id
	}

	feedback, err := h.feedbackService.ListFeedback(c.Request.Context(), role, mealID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
