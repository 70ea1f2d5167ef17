package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/types"
)

type MealHandler struct {
	mealService service.IMealService
}

func NewMealHandler(mealService service.IMealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("/taken", h.MarkTaken)
	}
	prefs := router.Group("/preferences")
	{
		prefs.GET("", h.GetPreferences)
		prefs.PUT("", h.UpdatePreferences)
	}
}

// ListMeals serves the public menu.
func (h *MealHandler) ListMeals(c *gin.Context) {
	meals, err := h.mealService.ListMeals(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// MarkTaken records today's redemption. A student marks their own meal;
// a cook may pass student_id to track on behalf of a student.
func (h *MealHandler) MarkTaken(c *gin.Context) {
	actorID, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.MarkTakenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	studentID := actorID
	if req.StudentID != nil {
		studentID = *req.StudentID
	}

	taken, err := h.mealService.MarkMealTaken(c.Request.Context(), actorID, role, studentID, req.MealID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taken)
}

func (h *MealHandler) GetPreferences(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	profile, err := h.mealService.GetPreferences(c.Request.Context(), userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *MealHandler) UpdatePreferences(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.mealService.UpdatePreferences(c.Request.Context(), userID, role, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
