package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
)

// Decision is an admin's verdict on a pending purchase order.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// OrderService runs the purchase-order workflow: cooks create orders,
// admins resolve them exactly once.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreatePurchaseOrder persists one pending order plus one item per line
// with quantity > 0, atomically. Lines with non-positive quantities are
// dropped first; an all-empty submission fails with ErrEmptyOrder and
// persists nothing.
func (s *OrderService) CreatePurchaseOrder(ctx context.Context, cookID uuid.UUID, role models.Role, items map[uuid.UUID]float64) (*models.PurchaseOrder, error) {
	if role != models.RoleCook {
		return nil, ErrUnauthorized
	}

	lines := make([]models.OrderItem, 0, len(items))
	for productID, qty := range items {
		if qty <= 0 {
			continue
		}
		lines = append(lines, models.OrderItem{
			ProductID:         productID,
			QuantityRequested: qty,
		})
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order := models.PurchaseOrder{
		CookID: cookID,
		Status: models.OrderStatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Every referenced product must exist before anything is written.
		for i := range lines {
			var product models.Product
			if err := tx.First(&product, "id = ?", lines[i].ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = lines
	return &order, nil
}

// ResolvePurchaseOrder transitions a pending order to approved or
// rejected and stamps the approver and resolution time. A resolved
// order cannot be re-resolved; the second caller gets
// ErrAlreadyResolved instead of a silent re-stamp.
func (s *OrderService) ResolvePurchaseOrder(ctx context.Context, orderID, adminID uuid.UUID, role models.Role, decision Decision) (*models.PurchaseOrder, error) {
	if role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	var status models.OrderStatus
	switch decision {
	case DecisionApprove:
		status = models.OrderStatusApproved
	case DecisionReject:
		status = models.OrderStatusRejected
	default:
		return nil, fmt.Errorf("unknown decision %q", decision)
	}

	var order models.PurchaseOrder
	if err := s.db.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrAlreadyResolved
	}

	// The status predicate in the update closes the gap between the
	// check above and the write: if a concurrent resolver wins, zero
	// rows are affected.
	now := time.Now().UTC()
	result := s.db.WithContext(ctx).Model(&models.PurchaseOrder{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"approver_id": adminID,
			"approved_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyResolved
	}

	// Approval deliberately leaves Product.CurrentStock untouched; there
	// is no wiring between order resolution and inventory.
	order.Status = status
	order.ApproverID = &adminID
	order.ApprovedAt = &now
	return &order, nil
}

// GetOrder returns an order with its line items.
func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, status *models.OrderStatus) ([]*models.PurchaseOrder, error) {
	query := s.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var orders []*models.PurchaseOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
