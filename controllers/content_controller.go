package controllers

import (
	"log"
	"time"

	"vaultpay/config"
	"vaultpay/dto"
	"vaultpay/models"
	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
)

const (
	notificationCacheKey = "notification:active"
	partnersCacheKey     = "partners:active"
)

// GetNotification returns the active public announcements. Unauthenticated.
func GetNotification(c *gin.Context) {
	var notifications []models.Notification

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, notificationCacheKey, &notifications); err == nil && len(notifications) > 0 {
			response.OK(c, gin.H{"notifications": notifications})
			return
		}
	}

	if err := config.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&notifications).Error; err != nil {
		response.ServerError(c, "Failed to fetch notifications")
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, notificationCacheKey, notifications, 5*time.Minute); err != nil {
			log.Printf("failed to cache notifications: %v", err)
		}
	}

	response.OK(c, gin.H{"notifications": notifications})
}

// GetPartners returns the active partner logos. Unauthenticated.
func GetPartners(c *gin.Context) {
	var partners []models.Partner

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, partnersCacheKey, &partners); err == nil && len(partners) > 0 {
			response.OK(c, gin.H{"partners": partners})
			return
		}
	}

	if err := config.DB.Where("is_active = ?", true).Order("id").Find(&partners).Error; err != nil {
		response.ServerError(c, "Failed to fetch partners")
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, partnersCacheKey, partners, 30*time.Minute); err != nil {
			log.Printf("failed to cache partners: %v", err)
		}
	}

	response.OK(c, gin.H{"partners": partners})
}

// Admin CRUD for the public content follows.

func GetAllNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := config.DB.Order("created_at DESC").Find(&notifications).Error; err != nil {
		response.ServerError(c, "Failed to fetch notifications")
		return
	}
	response.OK(c, gin.H{"notifications": notifications})
}

func CreateNotification(c *gin.Context) {
	var input dto.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Title and message are required")
		return
	}

	notification := models.Notification{
		Title:    input.Title,
		Message:  input.Message,
		IsActive: true,
	}
	if input.IsActive != nil {
		notification.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&notification).Error; err != nil {
		response.ServerError(c, "Failed to create notification")
		return
	}

	invalidateCache(notificationCacheKey)
	response.Created(c, gin.H{
		"message":      "Notification created successfully",
		"notification": notification,
	})
}

func UpdateNotification(c *gin.Context) {
	var input dto.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Title and message are required")
		return
	}

	var notification models.Notification
	if err := config.DB.First(&notification, c.Param("id")).Error; err != nil {
		handleError(c, err, "Notification not found")
		return
	}

	notification.Title = input.Title
	notification.Message = input.Message
	if input.IsActive != nil {
		notification.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&notification).Error; err != nil {
		response.ServerError(c, "Failed to update notification")
		return
	}

	invalidateCache(notificationCacheKey)
	response.OK(c, gin.H{
		"message":      "Notification updated successfully",
		"notification": notification,
	})
}

func DeleteNotification(c *gin.Context) {
	var notification models.Notification
	if err := config.DB.First(&notification, c.Param("id")).Error; err != nil {
		handleError(c, err, "Notification not found")
		return
	}

	if err := config.DB.Delete(&notification).Error; err != nil {
		response.ServerError(c, "Failed to delete notification")
		return
	}

	invalidateCache(notificationCacheKey)
	response.Message(c, "Notification deleted successfully")
}

func GetAllPartners(c *gin.Context) {
	var partners []models.Partner
	if err := config.DB.Order("id").Find(&partners).Error; err != nil {
		response.ServerError(c, "Failed to fetch partners")
		return
	}
	response.OK(c, gin.H{"partners": partners})
}

func CreatePartner(c *gin.Context) {
	var input dto.PartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Partner name is required")
		return
	}

	partner := models.Partner{
		Name:       input.Name,
		LogoURL:    input.LogoURL,
		WebsiteURL: input.WebsiteURL,
		IsActive:   true,
	}
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&partner).Error; err != nil {
		response.ServerError(c, "Failed to create partner")
		return
	}

	invalidateCache(partnersCacheKey)
	response.Created(c, gin.H{
		"message": "Partner created successfully",
		"partner": partner,
	})
}

func UpdatePartner(c *gin.Context) {
	var input dto.PartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Partner name is required")
		return
	}

	var partner models.Partner
	if err := config.DB.First(&partner, c.Param("id")).Error; err != nil {
		handleError(c, err, "Partner not found")
		return
	}

	partner.Name = input.Name
	partner.LogoURL = input.LogoURL
	partner.WebsiteURL = input.WebsiteURL
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&partner).Error; err != nil {
		response.ServerError(c, "Failed to update partner")
		return
	}

	invalidateCache(partnersCacheKey)
	response.OK(c, gin.H{
		"message": "Partner updated successfully",
		"partner": partner,
	})
}

func DeletePartner(c *gin.Context) {
	var partner models.Partner
	if err := config.DB.First(&partner, c.Param("id")).Error; err != nil {
		handleError(c, err, "Partner not found")
		return
	}

	if err := config.DB.Delete(&partner).Error; err != nil {
		response.ServerError(c, "Failed to delete partner")
		return
	}

	invalidateCache(partnersCacheKey)
	response.Message(c, "Partner deleted successfully")
}
