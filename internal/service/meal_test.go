package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
	"github.com/canteenhq/canteen-backend/internal/service"
	"github.com/canteenhq/canteen-backend/internal/testhelpers"
	"github.com/canteenhq/canteen-backend/internal/types"
)

func TestMarkMealTaken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)

	taken, err := svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, student.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, taken.StudentID)
	assert.Equal(t, meal.ID, taken.MealID)
	assert.NotEmpty(t, taken.TakenDate)
}

func TestMarkMealTakenDuplicate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)
	other := testhelpers.CreateMeal(t, db, "Oat porridge", 80.0)

	_, err := svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, student.ID, meal.ID)
	require.NoError(t, err)

	// A second mark the same day fails even for a different meal.
	_, err = svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, student.ID, other.ID)
	assert.ErrorIs(t, err, service.ErrDuplicateRedemption)

	var count int64
	require.NoError(t, db.Model(&models.MealTaken{}).Where("student_id = ?", student.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMarkMealTakenUniqueIndexBackstop(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)

	// Simulate losing the check-then-insert race: the row appears after
	// the pre-check would have run, so only the unique index stops the
	// second insert.
	first := models.MealTaken{StudentID: student.ID, MealID: meal.ID, TakenDate: "2026-01-15"}
	require.NoError(t, db.Create(&first).Error)

	second := models.MealTaken{StudentID: student.ID, MealID: meal.ID, TakenDate: "2026-01-15"}
	err := db.Create(&second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMarkMealTakenByCook(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)

	taken, err := svc.MarkMealTaken(context.Background(), cook.ID, models.RoleCook, student.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, taken.StudentID)

	// Same dedup rule applies to cook-tracked redemptions.
	_, err = svc.MarkMealTaken(context.Background(), cook.ID, models.RoleCook, student.ID, meal.ID)
	assert.ErrorIs(t, err, service.ErrDuplicateRedemption)
}

func TestMarkMealTakenAuthorization(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	otherStudent := testhelpers.CreateUser(t, db, "student2", models.RoleStudent)
	admin := testhelpers.CreateUser(t, db, "admin1", models.RoleAdmin)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)

	// A student cannot mark another student's meal.
	_, err := svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, otherStudent.ID, meal.ID)
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	// Admins are not part of the redemption flow at all.
	_, err = svc.MarkMealTaken(context.Background(), admin.ID, models.RoleAdmin, student.ID, meal.ID)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestMarkMealTakenMissingRefs(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	meal := testhelpers.CreateMeal(t, db, "Borscht", 90.0)

	_, err := svc.MarkMealTaken(context.Background(), cook.ID, models.RoleCook, uuid.New(), meal.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.MarkMealTaken(context.Background(), student.ID, models.RoleStudent, student.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListMeals(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	testhelpers.CreateMeal(t, db, "Borscht", 90.0)
	testhelpers.CreateMeal(t, db, "Oat porridge", 80.0)

	meals, err := svc.ListMeals(context.Background())
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.NotNil(t, meals[0].MealType)
}

func TestPreferences(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	student := testhelpers.CreateUser(t, db, "student1", models.RoleStudent)
	cook := testhelpers.CreateUser(t, db, "cook1", models.RoleCook)

	profile, err := svc.GetPreferences(context.Background(), student.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.Empty(t, profile.Allergies)

	updated, err := svc.UpdatePreferences(context.Background(), student.ID, models.RoleStudent, &types.UpdatePreferencesRequest{
		Allergies:   "peanuts",
		Preferences: "no pork",
	})
	require.NoError(t, err)
	assert.Equal(t, "peanuts", updated.Allergies)
	assert.Equal(t, "no pork", updated.Preferences)

	// Only students carry the dietary payload.
	_, err = svc.GetPreferences(context.Background(), cook.ID, models.RoleCook)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
