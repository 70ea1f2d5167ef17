package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
)

// InventoryService reads the product ledger. Stock levels are seeded
// and then purely informative: neither order approval nor meal
// redemption adjusts them. That gap is inherited on purpose; fixing it
// would be a behavior change, not a bug fix.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) ListProducts(ctx context.Context, role models.Role) ([]*models.Product, error) {
	if role != models.RoleCook && role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	var products []*models.Product
	if err := s.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListRecipeItems returns the per-serving product consumption of a meal.
func (s *InventoryService) ListRecipeItems(ctx context.Context, mealID uuid.UUID) ([]*models.RecipeItem, error) {
	var items []*models.RecipeItem
	if err := s.db.WithContext(ctx).Where("meal_id = ?", mealID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
