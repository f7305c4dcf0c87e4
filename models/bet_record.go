package models

import "time"

// BetRecord is read-only history shown on the user dashboard.
type BetRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Game      string    `json:"game"`
	Stake     float64   `json:"stake"`
	Payout    float64   `json:"payout"`
	Outcome   string    `gorm:"size:16" json:"outcome"` // won, lost
	Reference string    `gorm:"uniqueIndex;size:64" json:"reference"`
}
