package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
)

// ReportService aggregates the payment and redemption ledgers for the
// admin dashboard.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// TotalPayments sums the whole payment ledger. An empty ledger yields
// 0, never null.
func (s *ReportService) TotalPayments(ctx context.Context, role models.Role) (float64, error) {
	if role != models.RoleAdmin {
		return 0, ErrUnauthorized
	}

	var total float64
	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// MealsServedCount counts every redemption ever recorded, not just
// today's.
func (s *ReportService) MealsServedCount(ctx context.Context, role models.Role) (int64, error) {
	if role != models.RoleAdmin {
		return 0, ErrUnauthorized
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.MealTaken{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
