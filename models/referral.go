package models

import "time"

// Referral links a referrer to a signed-up user and the bonus both earned.
type Referral struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	ReferrerID     uint      `gorm:"index" json:"referrerId"`
	ReferredID     uint      `gorm:"index" json:"referredId"`
	Referred       User      `gorm:"foreignKey:ReferredID" json:"-"`
	ReferrerBonus  float64   `json:"referrerBonus"`
	ReferredBonus  float64   `json:"referredBonus"`
}

// ReferralSettings is a singleton row with the current bonus amounts.
type ReferralSettings struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ReferrerBonus float64   `json:"referrerBonus"`
	ReferredBonus float64   `json:"referredBonus"`
	IsActive      bool      `gorm:"default:false" json:"isActive"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
