package models

import (
	"time"

	"gorm.io/gorm"
)

type SocialMediaLink struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Platform  string         `gorm:"size:64" json:"platform"`
	Title     string         `json:"title"`
	URL       string         `json:"url"`
	Icon      string         `json:"icon"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	Priority  int            `gorm:"index" json:"priority"`
}
