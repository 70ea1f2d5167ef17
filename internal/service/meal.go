package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/types"
)

// MealService handles the menu, the redemption ledger and student
// dietary preferences.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// ListMeals returns the menu with meal types preloaded.
func (s *MealService) ListMeals(ctx context.Context) ([]*models.Meal, error) {
	var meals []*models.Meal
	if err := s.db.WithContext(ctx).Preload("MealType").Order("name").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// MarkMealTaken records a redemption for today. Students mark only for
// themselves; cooks may mark on behalf of any student. A second mark
// for the same student and day fails with ErrDuplicateRedemption - the
// pre-check catches the common case and the unique index on
// (student_id, taken_date) catches the race between check and insert.
func (s *MealService) MarkMealTaken(ctx context.Context, actorID uuid.UUID, role models.Role, studentID, mealID uuid.UUID) (*models.MealTaken, error) {
	switch role {
	case models.RoleStudent:
		if actorID != studentID {
			return nil, ErrUnauthorized
		}
	case models.RoleCook:
		// tracking on behalf of a student
	default:
		return nil, ErrUnauthorized
	}

	var student models.User
	if err := s.db.WithContext(ctx).Where("id = ? AND role = ?", studentID, models.RoleStudent).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	takenDate := time.Now().UTC().Format("2006-01-02")

	var existing models.MealTaken
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND taken_date = ?", studentID, takenDate).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateRedemption
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	taken := models.MealTaken{
		StudentID: studentID,
		MealID:    mealID,
		TakenDate: takenDate,
	}
	if err := s.db.WithContext(ctx).Create(&taken).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRedemption
		}
		return nil, err
	}

	return &taken, nil
}

// GetPreferences returns the student's dietary payload.
func (s *MealService) GetPreferences(ctx context.Context, userID uuid.UUID, role models.Role) (*models.StudentProfile, error) {
	if role != models.RoleStudent {
		return nil, ErrUnauthorized
	}

	var profile models.StudentProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdatePreferences overwrites the student's allergies/preferences text.
func (s *MealService) UpdatePreferences(ctx context.Context, userID uuid.UUID, role models.Role, req *types.UpdatePreferencesRequest) (*models.StudentProfile, error) {
	if role != models.RoleStudent {
		return nil, ErrUnauthorized
	}

	var profile models.StudentProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile.Allergies = req.Allergies
	profile.Preferences = req.Preferences
	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
