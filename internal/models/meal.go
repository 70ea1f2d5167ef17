package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealType struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"` // breakfast, lunch
	CreatedAt time.Time `json:"created_at"`
}

func (mt *MealType) BeforeCreate(tx *gorm.DB) error {
	if mt.ID == uuid.Nil {
		mt.ID = uuid.New()
	}
	return nil
}

type Meal struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	MealTypeID  uuid.UUID `gorm:"type:varchar(36);not null" json:"meal_type_id"`
	MealType    *MealType `gorm:"foreignKey:MealTypeID" json:"meal_type,omitempty"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealTaken is the redemption ledger. One row per student per calendar
// day, enforced by the composite unique index; rows are never updated
// or deleted.
type MealTaken struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	StudentID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_meal_taken_student_date" json:"student_id"`
	MealID    uuid.UUID `gorm:"type:varchar(36);not null" json:"meal_id"`
	TakenDate string    `gorm:"type:date;not null;uniqueIndex:idx_meal_taken_student_date" json:"taken_date"`
	CreatedAt time.Time `json:"created_at"`
}

func (mt *MealTaken) BeforeCreate(tx *gorm.DB) error {
	if mt.ID == uuid.Nil {
		mt.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MealTaken model
func (MealTaken) TableName() string {
	return "meals_taken"
}
