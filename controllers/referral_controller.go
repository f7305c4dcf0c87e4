package controllers

import (
	"errors"
	"time"

	"vaultpay/config"
	"vaultpay/dto"
	"vaultpay/middleware"
	"vaultpay/models"
	"vaultpay/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loadReferralSettings(db *gorm.DB) (models.ReferralSettings, error) {
	var settings models.ReferralSettings
	err := db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.ReferralSettings{IsActive: false}
		err = db.Create(&settings).Error
	}
	return settings, err
}

// GetReferralCode returns the caller's code plus the aggregate counters the
// referral card shows.
func GetReferralCode(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	settings, err := loadReferralSettings(config.DB)
	if err != nil {
		response.ServerError(c, "Failed to fetch referral settings")
		return
	}

	var totalReferrals int64
	var totalEarned float64
	config.DB.Model(&models.Referral{}).Where("referrer_id = ?", userID).Count(&totalReferrals)
	config.DB.Model(&models.Referral{}).Where("referrer_id = ?", userID).
		Select("COALESCE(SUM(referrer_bonus), 0)").Scan(&totalEarned)

	response.OK(c, gin.H{
		"referralInfo": dto.ReferralInfoResponse{
			ReferralCode:         user.ReferralCode,
			TotalReferrals:       totalReferrals,
			TotalEarned:          totalEarned,
			CurrentReferrerBonus: settings.ReferrerBonus,
			CurrentReferredBonus: settings.ReferredBonus,
			IsActive:             settings.IsActive,
		},
	})
}

// GetReferralHistory lists who signed up with the caller's code and what it
// earned them, newest first.
func GetReferralHistory(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Referral{}).Preload("Referred").Where("referrer_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c, "Failed to fetch referral history")
		return
	}

	var referrals []models.Referral
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&referrals).Error; err != nil {
		response.ServerError(c, "Failed to fetch referral history")
		return
	}

	entries := make([]dto.ReferralHistoryEntry, 0, len(referrals))
	for _, r := range referrals {
		entries = append(entries, dto.ReferralHistoryEntry{
			Username:  r.Referred.Username,
			Earned:    r.ReferrerBonus,
			CreatedAt: r.CreatedAt,
		})
	}

	response.OK(c, gin.H{
		"referralHistory": entries,
		"pagination":      response.NewPagination(total, page, limit),
	})
}

// GetReferralSettings is the admin view of the current bonus amounts.
func GetReferralSettings(c *gin.Context) {
	settings, err := loadReferralSettings(config.DB)
	if err != nil {
		response.ServerError(c, "Failed to fetch referral settings")
		return
	}

	var totalReferrals int64
	var totalPaid float64
	config.DB.Model(&models.Referral{}).Count(&totalReferrals)
	config.DB.Model(&models.Referral{}).
		Select("COALESCE(SUM(referrer_bonus + referred_bonus), 0)").Scan(&totalPaid)

	response.OK(c, gin.H{
		"referralSettings": settings,
		"totalReferrals":   totalReferrals,
		"totalPaid":        totalPaid,
	})
}

func UpdateReferralSettings(c *gin.Context) {
	var input dto.ReferralSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "isActive is required and bonuses must not be negative")
		return
	}

	settings, err := loadReferralSettings(config.DB)
	if err != nil {
		response.ServerError(c, "Failed to fetch referral settings")
		return
	}

	settings.ReferrerBonus = input.ReferrerBonus
	settings.ReferredBonus = input.ReferredBonus
	settings.IsActive = *input.IsActive
	settings.UpdatedAt = time.Now()

	if err := config.DB.Save(&settings).Error; err != nil {
		response.ServerError(c, "Failed to update referral settings")
		return
	}

	response.OK(c, gin.H{
		"message":          "Referral settings updated successfully",
		"referralSettings": settings,
	})
}
