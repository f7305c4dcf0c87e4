package models

import (
	"time"

	"gorm.io/gorm"
)

type Partner struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Name       string         `gorm:"size:128" json:"name"`
	LogoURL    string         `json:"logoUrl"`
	WebsiteURL string         `json:"websiteUrl"`
	IsActive   bool           `gorm:"default:true" json:"isActive"`
}
