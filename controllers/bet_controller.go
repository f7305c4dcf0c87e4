package controllers

import (
	"vaultpay/config"
	"vaultpay/middleware"
	"vaultpay/models"
	"vaultpay/response"

	"github.com/gin-gonic/gin"
)

// GetBetHistory lists the caller's bet records, newest first.
func GetBetHistory(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.BetRecord{}).Where("user_id = ?", userID)
	if outcome := c.Query("outcome"); outcome != "" {
		query = query.Where("outcome = ?", outcome)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c, "Failed to fetch bet history")
		return
	}

	var bets []models.BetRecord
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&bets).Error; err != nil {
		response.ServerError(c, "Failed to fetch bet history")
		return
	}

	response.OK(c, gin.H{
		"betHistory": bets,
		"pagination": response.NewPagination(total, page, limit),
	})
}
