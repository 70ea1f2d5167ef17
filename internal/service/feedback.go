package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/types"
)

// FeedbackService appends meal ratings to the feedback ledger.
type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, studentID uuid.UUID, role models.Role, req *types.CreateFeedbackRequest) (*models.Feedback, error) {
	if role != models.RoleStudent {
		return nil, ErrUnauthorized
	}

	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", req.MealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	feedback := models.Feedback{
		StudentID: studentID,
		MealID:    req.MealID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.db.WithContext(ctx).Create(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// ListFeedback is admin-only, newest first, optionally filtered by meal.
func (s *FeedbackService) ListFeedback(ctx context.Context, role models.Role, mealID *uuid.UUID) ([]*models.Feedback, error) {
	if role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	query := s.db.WithContext(ctx).Order("created_at DESC")
	if mealID != nil {
		query = query.Where("meal_id = ?", *mealID)
	}

	var feedback []*models.Feedback
	if err := query.Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
