package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
}

// IOrderService defines the interface for the purchase-order workflow
type IOrderService interface {
	CreatePurchaseOrder(ctx context.Context, cookID uuid.UUID, role models.Role, items map[uuid.UUID]float64) (*models.PurchaseOrder, error)
	ResolvePurchaseOrder(ctx context.Context, orderID, adminID uuid.UUID, role models.Role, decision Decision) (*models.PurchaseOrder, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.PurchaseOrder, error)
	ListOrders(ctx context.Context, status *models.OrderStatus) ([]*models.PurchaseOrder, error)
}

// IMealService defines the interface for menu and redemption operations
type IMealService interface {
	ListMeals(ctx context.Context) ([]*models.Meal, error)
	MarkMealTaken(ctx context.Context, actorID uuid.UUID, role models.Role, studentID, mealID uuid.UUID) (*models.MealTaken, error)
	GetPreferences(ctx context.Context, userID uuid.UUID, role models.Role) (*models.StudentProfile, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, role models.Role, req *types.UpdatePreferencesRequest) (*models.StudentProfile, error)
}

// IInventoryService defines the interface for inventory reads
type IInventoryService interface {
	ListProducts(ctx context.Context, role models.Role) ([]*models.Product, error)
	ListRecipeItems(ctx context.Context, mealID uuid.UUID) ([]*models.RecipeItem, error)
}

// IPaymentService defines the interface for the payment ledger
type IPaymentService interface {
	RecordPayment(ctx context.Context, studentID uuid.UUID, role models.Role, req *types.CreatePaymentRequest) (*models.Payment, error)
}

// IFeedbackService defines the interface for meal feedback
type IFeedbackService interface {
	CreateFeedback(ctx context.Context, studentID uuid.UUID, role models.Role, req *types.CreateFeedbackRequest) (*models.Feedback, error)
	ListFeedback(ctx context.Context, role models.Role, mealID *uuid.UUID) ([]*models.Feedback, error)
}

// IReportService defines the interface for admin reporting
type IReportService interface {
	TotalPayments(ctx context.Context, role models.Role) (float64, error)
	MealsServedCount(ctx context.Context, role models.Role) (int64, error)
}
