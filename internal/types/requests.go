package types

import (
	"time"

	"github.com/google/uuid"
)

// Auth API types
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=80"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Token    string    `json:"token"`
}

// UpdatePreferencesRequest updates the student-only dietary payload.
type UpdatePreferencesRequest struct {
	Allergies   string `json:"allergies" binding:"max=2000"`
	Preferences string `json:"preferences" binding:"max=2000"`
}

// MarkTakenRequest records a redemption. StudentID is only honored for
// cooks tracking a meal on behalf of a student; students always mark
// for themselves.
type MarkTakenRequest struct {
	MealID    uuid.UUID  `json:"meal_id" binding:"required"`
	StudentID *uuid.UUID `json:"student_id"`
}

// CreateOrderRequest is a purchase-order submission: product id mapped
// to requested quantity. Lines with quantity <= 0 are dropped.
type CreateOrderRequest struct {
	Items map[uuid.UUID]float64 `json:"items" binding:"required"`
}

type OrderItemResponse struct {
	ProductID         uuid.UUID `json:"product_id"`
	QuantityRequested float64   `json:"quantity_requested"`
}

type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	CookID     uuid.UUID           `json:"cook_id"`
	ApproverID *uuid.UUID          `json:"approver_id,omitempty"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	ApprovedAt *time.Time          `json:"approved_at,omitempty"`
	Items      []OrderItemResponse `json:"items"`
}

// Payment API types
type CreatePaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,oneof=single subscription"`
}

// Feedback API types
type CreateFeedbackRequest struct {
	MealID  uuid.UUID `json:"meal_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"max=2000"`
}

// ReportResponse aggregates the payment and redemption ledgers.
type ReportResponse struct {
	TotalPayments float64 `json:"total_payments"`
	MealsServed   int64   `json:"meals_served"`
}
