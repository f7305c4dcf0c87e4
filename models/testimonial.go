package models

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:128" json:"name"`
	Comment   string         `json:"comment"`
	Rating    int            `json:"rating"` // 1-5
	Role      string         `json:"role"`
	AvatarURL string         `json:"avatarUrl"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
}
