package testhelpers

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/models"
)

// CreateUser inserts a user with the given role. Students also get
// their profile row, mirroring registration.
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if role == models.RoleStudent {
		profile := models.StudentProfile{UserID: user.ID}
		if err := db.Create(&profile).Error; err != nil {
			t.Fatalf("failed to create student profile: %v", err)
		}
	}

	return &user
}

// CreateProduct inserts a product with the given opening stock.
func CreateProduct(t *testing.T, db *gorm.DB, name string, stock float64) *models.Product {
	t.Helper()

	product := models.Product{Name: name, Unit: "kg", CurrentStock: stock}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return &product
}

// CreateMeal inserts a meal type and a meal priced as given.
func CreateMeal(t *testing.T, db *gorm.DB, name string, price float64) *models.Meal {
	t.Helper()

	mealType := models.MealType{Name: fmt.Sprintf("type-%s", name)}
	if err := db.Create(&mealType).Error; err != nil {
		t.Fatalf("failed to create meal type: %v", err)
	}

	meal := models.Meal{Name: name, Price: price, MealTypeID: mealType.ID}
	if err := db.Create(&meal).Error; err != nil {
		t.Fatalf("failed to create meal: %v", err)
	}
	return &meal
}
