package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/types"
)

// PaymentService appends to the payment ledger. Payments are never
// mutated after creation.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func (s *PaymentService) RecordPayment(ctx context.Context, studentID uuid.UUID, role models.Role, req *types.CreatePaymentRequest) (*models.Payment, error) {
	if role != models.RoleStudent {
		return nil, ErrUnauthorized
	}

	payment := models.Payment{
		StudentID: studentID,
		Amount:    req.Amount,
		Type:      req.Type,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
