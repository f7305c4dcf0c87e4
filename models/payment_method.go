package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentMethod struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	MethodName    string         `gorm:"size:128" json:"methodName"`
	AccountNumber string         `json:"accountNumber"`
	Instructions  string         `json:"instructions"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
}
