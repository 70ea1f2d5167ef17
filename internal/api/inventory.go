package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/canteenhq/canteen-backend/internal/service"
)

type InventoryHandler struct {
	inventoryService service.IInventoryService
}

func NewInventoryHandler(inventoryService service.IInventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("", h.ListProducts)
	}
	router.GET("/meals/:id/recipe", h.ListRecipeItems)
}

// ListProducts is the cook dashboard's stock view.
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	_, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	products, err := h.inventoryService.ListProducts(c.Request.Context(), role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *InventoryHandler) ListRecipeItems(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal ID"})
		return
	}

	items, err := h.inventoryService.ListRecipeItems(c.Request.Context(), mealID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
