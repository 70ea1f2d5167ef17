package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/testhelpers"
)

// These tests exercise real postgres constraint behavior. They skip
// when docker is unavailable.

func TestRedemptionConstraintOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	svc := service.NewMealService(db)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)
	other := testhelpers.CreateMeal(t, db, "Oat porridge", 80.0)

	_, err := svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, student.ID, meal.ID)
	require.NoError(t, err)

	_, err = svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, student.ID, other.ID)
	assert.ErrorIs(t, err, service.ErrDuplicateRedemption)

	// The unique constraint itself, past the service pre-check.
	row := models.MealTaken{StudentID: student.ID, MealID: meal.ID, TakenDate: "2026-01-15"}
	require.NoError(t, db.Create(&row).Error)
	dup := models.MealTaken{StudentID: student.ID, MealID: other.ID, TakenDate: "2026-01-15"}
	assert.ErrorIs(t, db.Create(&dup).Error, gorm.ErrDuplicatedKey)
}

func TestUsernameConstraintOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "student1", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "student1", "password123")
	assert.ErrorIs(t, err, service.ErrUserExists)
}
