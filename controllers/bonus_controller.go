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

func loadBonusSettings(db *gorm.DB) (models.BonusSettings, error) {
	var settings models.BonusSettings
	err := db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Singleton row; created disabled on first access.
		settings = models.BonusSettings{Amount: 0, IsActive: false, LastUpdated: time.Now()}
		err = db.Create(&settings).Error
	}
	return settings, err
}

// GetBonusSettings returns the singleton record plus its change history.
func GetBonusSettings(c *gin.Context) {
	settings, err := loadBonusSettings(config.DB)
	if err != nil {
		response.ServerError(c, "Failed to fetch bonus settings")
		return
	}

	var history []models.BonusHistory
	if err := config.DB.Order("created_at DESC").Limit(50).Find(&history).Error; err != nil {
		response.ServerError(c, "Failed to fetch bonus history")
		return
	}

	entries := make([]dto.BonusHistoryEntry, 0, len(history))
	for _, h := range history {
		entries = append(entries, dto.BonusHistoryEntry{
			Amount:    h.Amount,
			IsActive:  h.IsActive,
			UpdatedBy: h.UpdatedBy,
			UpdatedAt: h.CreatedAt,
		})
	}

	response.OK(c, gin.H{
		"bonusSettings": dto.BonusSettingsResponse{
			Amount:      settings.Amount,
			IsActive:    settings.IsActive,
			LastUpdated: settings.LastUpdated,
			UpdatedBy:   settings.UpdatedBy,
			History:     entries,
		},
	})
}

// UpdateBonusSettings changes the registration bonus and appends a history
// row stamped with the acting admin.
func UpdateBonusSettings(c *gin.Context) {
	adminID, _ := middleware.CurrentUser(c)

	var input dto.BonusSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "amount and isActive are required")
		return
	}

	var admin models.User
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	settings, err := loadBonusSettings(config.DB)
	if err != nil {
		response.ServerError(c, "Failed to fetch bonus settings")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		settings.Amount = input.Amount
		settings.IsActive = *input.IsActive
		settings.LastUpdated = time.Now()
		settings.UpdatedBy = admin.Username
		if err := tx.Save(&settings).Error; err != nil {
			return err
		}

		return tx.Create(&models.BonusHistory{
			Amount:    settings.Amount,
			IsActive:  settings.IsActive,
			UpdatedBy: admin.Username,
		}).Error
	})
	if err != nil {
		response.ServerError(c, "Failed to update bonus settings")
		return
	}

	response.OK(c, gin.H{
		"message": "Bonus settings updated successfully",
		"bonusSettings": gin.H{
			"amount":      settings.Amount,
			"isActive":    settings.IsActive,
			"lastUpdated": settings.LastUpdated,
			"updatedBy":   settings.UpdatedBy,
		},
	})
}
