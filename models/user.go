package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Username      string         `gorm:"uniqueIndex;size:64" json:"username"`
	Email         string         `gorm:"uniqueIndex;size:255" json:"email"`
	Password      string         `json:"-"`
	FullName      string         `json:"fullName"`
	PhoneNumber   string         `json:"phoneNumber"`
	Role          string         `gorm:"size:16;default:user" json:"role"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	ProfilePhoto  string         `json:"profilePhoto"`
	Balance       float64        `json:"Balance"`
	Deposit       float64        `json:"Deposit"`
	Withdraw      float64        `json:"Withdraw"`
	TotalBalance  float64        `json:"totalBalance"`
	TotalDeposit  float64        `json:"totalDeposit"`
	TotalWithdraw float64        `json:"totalWithdraw"`
	ReferralCode  string         `gorm:"uniqueIndex;size:32" json:"referralCode"`
	ReferredBy    *uint          `json:"referredBy,omitempty"`
}
