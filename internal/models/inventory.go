package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Unit      string    `gorm:"size:20;not null" json:"unit"` // kg, l, pcs
	// CurrentStock is informative only: it is written at seed time and
	// never adjusted by order approval or meal redemption.
	CurrentStock float64 `gorm:"not null;check:current_stock >= 0" json:"current_stock"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// RecipeItem maps a meal to one product it consumes per serving.
type RecipeItem struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	MealID         uuid.UUID `gorm:"type:varchar(36);not null;index" json:"meal_id"`
	ProductID      uuid.UUID `gorm:"type:varchar(36);not null" json:"product_id"`
	QuantityNeeded float64   `gorm:"not null" json:"quantity_needed"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *RecipeItem) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RecipeItem model
func (RecipeItem) TableName() string {
	return "recipe_items"
}
