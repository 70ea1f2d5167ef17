package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/types"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/approve", h.ApproveOrder)
		orders.POST("/:id/reject", h.RejectOrder)
	}
}

// CreateOrder submits a cook's restocking request.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actorID, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), actorID, role, req.Items)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderToResponse(order))
}

// ListOrders returns all orders, or only those matching ?status=.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	_, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	var status *models.OrderStatus
	if statusParam := c.Query("status"); statusParam != "" {
		s := models.OrderStatus(statusParam)
		status = &s
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]types.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = orderToResponse(order)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	_, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if role != models.RoleAdmin && role != models.RoleCook {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin or cook access required"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderToResponse(order))
}

func (h *OrderHandler) ApproveOrder(c *gin.Context) {
	h.resolve(c, service.DecisionApprove)
}

func (h *OrderHandler) RejectOrder(c *gin.Context) {
	h.resolve(c, service.DecisionReject)
}

func (h *OrderHandler) resolve(c *gin.Context, decision service.Decision) {
	actorID, role, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.orderService.ResolvePurchaseOrder(c.Request.Context(), orderID, actorID, role, decision)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderToResponse(order))
}

func orderToResponse(order *models.PurchaseOrder) types.OrderResponse {
	items := make([]types.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = types.OrderItemResponse{
			ProductID:         item.ProductID,
			QuantityRequested: item.QuantityRequested,
		}
	}
	return types.OrderResponse{
		ID:         order.ID,
		CookID:     order.CookID,
		ApproverID: order.ApproverID,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		ApprovedAt: order.ApprovedAt,
		Items:      items,
	}
}
