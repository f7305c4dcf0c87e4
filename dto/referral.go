package dto

import "time"

type ReferralInfoResponse struct {
	ReferralCode         string  `json:"referralCode"`
	TotalReferrals       int64   `json:"totalReferrals"`
	TotalEarned          float64 `json:"totalEarned"`
	CurrentReferrerBonus float64 `json:"currentReferrerBonus"`
	CurrentReferredBonus float64 `json:"currentReferredBonus"`
	IsActive             bool    `json:"isActive"`
}

type ReferralHistoryEntry struct {
	Username  string    `json:"username"`
	Earned    float64   `json:"earned"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReferralSettingsInput struct {
	ReferrerBonus float64 `json:"referrerBonus" binding:"gte=0"`
	ReferredBonus float64 `json:"referredBonus" binding:"gte=0"`
	IsActive      *bool   `json:"isActive" binding:"required"`
}
