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
	"gorm.io/gorm"
)

const socialLinksCacheKey = "social-media:all"

// GetSocialMediaLinks returns links ordered by their manual priority.
func GetSocialMediaLinks(c *gin.Context) {
	var links []models.SocialMediaLink

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, socialLinksCacheKey, &links); err == nil && len(links) > 0 {
			response.OK(c, gin.H{"socialMediaLinks": links})
			return
		}
	}

	if err := config.DB.Order("priority ASC, id ASC").Find(&links).Error; err != nil {
		response.ServerError(c, "Failed to fetch social media links")
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, socialLinksCacheKey, links, 30*time.Minute); err != nil {
			log.Printf("failed to cache social media links: %v", err)
		}
	}

	response.OK(c, gin.H{"socialMediaLinks": links})
}

func CreateSocialMediaLink(c *gin.Context) {
	var input dto.SocialMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Platform, title and a valid URL are required")
		return
	}

	link := models.SocialMediaLink{
		Platform: input.Platform,
		Title:    input.Title,
		URL:      input.URL,
		Icon:     input.Icon,
		IsActive: true,
		Priority: input.Priority,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	// New links go to the end of the ordering unless a priority was given.
	if link.Priority == 0 {
		var maxPriority int
		config.DB.Model(&models.SocialMediaLink{}).Select("COALESCE(MAX(priority), 0)").Scan(&maxPriority)
		link.Priority = maxPriority + 1
	}

	if err := config.DB.Create(&link).Error; err != nil {
		handleError(c, err, "Social media link not found")
		return
	}

	invalidateCache(socialLinksCacheKey)
	response.Created(c, gin.H{
		"message":         "Social media link created successfully",
		"socialMediaLink": link,
	})
}

func UpdateSocialMediaLink(c *gin.Context) {
	var input dto.SocialMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Platform, title and a valid URL are required")
		return
	}

	var link models.SocialMediaLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		handleError(c, err, "Social media link not found")
		return
	}

	link.Platform = input.Platform
	link.Title = input.Title
	link.URL = input.URL
	link.Icon = input.Icon
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if input.Priority != 0 {
		link.Priority = input.Priority
	}

	if err := config.DB.Save(&link).Error; err != nil {
		response.ServerError(c, "Failed to update social media link")
		return
	}

	invalidateCache(socialLinksCacheKey)
	response.OK(c, gin.H{
		"message":         "Social media link updated successfully",
		"socialMediaLink": link,
	})
}

func DeleteSocialMediaLink(c *gin.Context) {
	var link models.SocialMediaLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		handleError(c, err, "Social media link not found")
		return
	}

	if err := config.DB.Delete(&link).Error; err != nil {
		response.ServerError(c, "Failed to delete social media link")
		return
	}

	invalidateCache(socialLinksCacheKey)
	response.Message(c, "Social media link deleted successfully")
}

func ChangeSocialMediaLinkStatus(c *gin.Context) {
	var input dto.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "isActive is required")
		return
	}

	var link models.SocialMediaLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		handleError(c, err, "Social media link not found")
		return
	}

	link.IsActive = *input.IsActive
	if err := config.DB.Save(&link).Error; err != nil {
		response.ServerError(c, "Failed to update social media link status")
		return
	}

	invalidateCache(socialLinksCacheKey)
	response.OK(c, gin.H{
		"message":         "Social media link status updated successfully",
		"socialMediaLink": link,
	})
}

// ChangeSocialMediaLinkPriority swaps priorities with the neighbor in the
// requested direction; moving past either end is a no-op.
func ChangeSocialMediaLinkPriority(c *gin.Context) {
	var input dto.PriorityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "direction must be up or down")
		return
	}

	var link models.SocialMediaLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		handleError(c, err, "Social media link not found")
		return
	}

	var neighbor models.SocialMediaLink
	query := config.DB.Model(&models.SocialMediaLink{})
	if input.Direction == "up" {
		query = query.Where("priority < ?", link.Priority).Order("priority DESC")
	} else {
		query = query.Where("priority > ?", link.Priority).Order("priority ASC")
	}

	if err := query.First(&neighbor).Error; err != nil {
		// Already at the edge.
		response.OK(c, gin.H{
			"message":         "Social media link priority unchanged",
			"socialMediaLink": link,
		})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		link.Priority, neighbor.Priority = neighbor.Priority, link.Priority
		if err := tx.Save(&link).Error; err != nil {
			return err
		}
		return tx.Save(&neighbor).Error
	})
	if err != nil {
		response.ServerError(c, "Failed to update social media link priority")
		return
	}

	invalidateCache(socialLinksCacheKey)
	response.OK(c, gin.H{
		"message":         "Social media link priority updated successfully",
		"socialMediaLink": link,
	})
}
