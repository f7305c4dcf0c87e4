package models

import "time"

// BonusSettings is a singleton row controlling the registration cash bonus.
type BonusSettings struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Amount      float64   `json:"amount"`
	IsActive    bool      `gorm:"default:false" json:"isActive"`
	LastUpdated time.Time `json:"lastUpdated"`
	UpdatedBy   string    `json:"updatedBy"`
}

// BonusHistory rows are append-only; every settings update adds one.
type BonusHistory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Amount    float64   `json:"amount"`
	IsActive  bool      `json:"isActive"`
	UpdatedBy string    `json:"updatedBy"`
}
