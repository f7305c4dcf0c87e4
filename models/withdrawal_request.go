package models

import (
	"time"

	"gorm.io/gorm"
)

type WithdrawalRequest struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uint           `gorm:"index" json:"userId"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Amount        float64        `json:"amount"`
	PaymentMethod string         `json:"paymentMethod"`
	AccountNumber string         `json:"accountNumber"`
	TransactionID string         `json:"transactionId"`
	Status        string         `gorm:"size:16;default:pending;index" json:"status"`
	AdminNotes    string         `json:"adminNotes"`
	ProcessedAt   *time.Time     `json:"processedAt,omitempty"`
	ProcessedBy   *uint          `json:"processedBy,omitempty"`
}
