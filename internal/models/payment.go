package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is an append-only ledger row; there is no update or delete
// path for it.
type Payment struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	StudentID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"student_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Type      string    `gorm:"size:20;not null" json:"type"` // single, subscription
	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Feedback struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	StudentID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"student_id"`
	MealID    uuid.UUID `gorm:"type:varchar(36);not null" json:"meal_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}
