package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/config"
	"github.com/canteenhq/canteen-backend/internal/database"
	"github.com/canteenhq/canteen-backend/internal/models"
)

// Seeds the canteen with its starting fixtures: meal types, the menu,
// the product ledger with opening stock, per-serving recipes and one
// account per role. Safe to run repeatedly; existing data is left alone.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding complete")
}

func seed(db *gorm.DB) error {
	var count int64

	if err := db.Model(&models.MealType{}).Count(&count).Error; err != nil {
		return err
	}
	breakfast := models.MealType{Name: "breakfast"}
	lunch := models.MealType{Name: "lunch"}
	if count == 0 {
		if err := db.Create(&breakfast).Error; err != nil {
			return err
		}
		if err := db.Create(&lunch).Error; err != nil {
			return err
		}
	} else {
		if err := db.Where("name = ?", "breakfast").First(&breakfast).Error; err != nil {
			return err
		}
		if err := db.Where("name = ?", "lunch").First(&lunch).Error; err != nil {
			return err
		}
	}

	milk := models.Product{Name: "Milk", Unit: "l", CurrentStock: 100.0}
	oats := models.Product{Name: "Oats", Unit: "kg", CurrentStock: 50.0}
	mince := models.Product{Name: "Minced meat", Unit: "kg", CurrentStock: 30.0}
	potatoes := models.Product{Name: "Potatoes", Unit: "kg", CurrentStock: 200.0}
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for _, p := range []*models.Product{&milk, &oats, &mince, &potatoes} {
			if err := db.Create(p).Error; err != nil {
				return err
			}
		}
	}

	porridge := models.Meal{Name: "Oat porridge", Description: "Cooked in milk with butter", Price: 80.0, MealTypeID: breakfast.ID}
	borscht := models.Meal{Name: "Borscht", Description: "With sour cream", Price: 90.0, MealTypeID: lunch.ID}
	buckwheat := models.Meal{Name: "Buckwheat with cutlet", Description: "Buckwheat porridge with a meat cutlet", Price: 100.0, MealTypeID: lunch.ID}
	if err := db.Model(&models.Meal{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for _, m := range []*models.Meal{&porridge, &borscht, &buckwheat} {
			if err := db.Create(m).Error; err != nil {
				return err
			}
		}

		recipes := []models.RecipeItem{
			{MealID: porridge.ID, ProductID: milk.ID, QuantityNeeded: 0.25},
			{MealID: porridge.ID, ProductID: oats.ID, QuantityNeeded: 0.1},
			{MealID: buckwheat.ID, ProductID: mince.ID, QuantityNeeded: 0.15},
			{MealID: borscht.ID, ProductID: potatoes.ID, QuantityNeeded: 0.2},
		}
		for i := range recipes {
			if err := db.Create(&recipes[i]).Error; err != nil {
				return err
			}
		}
	}

	users := []struct {
		username string
		role     models.Role
	}{
		{"student1", models.RoleStudent},
		{"cook1", models.RoleCook},
		{"admin1", models.RoleAdmin},
	}
	for _, u := range users {
		var existing models.User
		if err := db.Where("username = ?", u.username).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{Username: u.username, PasswordHash: string(hashed), Role: u.role}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		if u.role == models.RoleStudent {
			if err := db.Create(&models.StudentProfile{UserID: user.ID}).Error; err != nil {
				return err
			}
		}
		log.Info().Str("username", u.username).Str("role", string(u.role)).Msg("created user")
	}

	return nil
}
