package dto

import "time"

type BonusSettingsInput struct {
	Amount   float64 `json:"amount" binding:"required,gte=0"`
	IsActive *bool   `json:"isActive" binding:"required"`
}

type BonusHistoryEntry struct {
	Amount    float64   `json:"amount"`
	IsActive  bool      `json:"isActive"`
	UpdatedBy string    `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BonusSettingsResponse struct {
	Amount      float64             `json:"amount"`
	IsActive    bool                `json:"isActive"`
	LastUpdated time.Time           `json:"lastUpdated"`
	UpdatedBy   string              `json:"updatedBy"`
	History     []BonusHistoryEntry `json:"history"`
}
