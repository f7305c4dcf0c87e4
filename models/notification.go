package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is the public banner message shown on the landing page.
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
}
