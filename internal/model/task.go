package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"size:100;not null"`
	Description *string    `gorm:"size:2000"`
	IsCompleted bool       `gorm:"not null;default:false"`
	DueDate     *time.Time `gorm:"index"`
	CreatedBy   *string    `gorm:"size:100"`
	AssignedTo  *string    `gorm:"size:100"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null"`
}
