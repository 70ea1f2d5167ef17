package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is the purchase-order state. Orders start pending and are
// resolved exactly once; approved and rejected are both terminal.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

type PurchaseOrder struct {
	ID         uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	CookID     uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"cook_id"`
	ApproverID *uuid.UUID  `gorm:"type:varchar(36)" json:"approver_id,omitempty"`
	Status     OrderStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	ApprovedAt *time.Time  `json:"approved_at,omitempty"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (o *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItem struct {
	ID                uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	OrderID           uuid.UUID `gorm:"type:varchar(36);not null;index" json:"order_id"`
	ProductID         uuid.UUID `gorm:"type:varchar(36);not null" json:"product_id"`
	QuantityRequested float64   `gorm:"not null" json:"quantity_requested"`
	// QuantityApproved is reserved for partial approval; nothing writes
	// or reads it today.
	QuantityApproved *float64  `json:"quantity_approved,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
