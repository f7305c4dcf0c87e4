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

const testimonialsCacheKey = "testimonials:active"

// GetTestimonials lists testimonials. The public landing page passes
// activeOnly=true and gets the cached active set.
func GetTestimonials(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	if activeOnly {
		var cached []models.Testimonial
		rdb, err := config.ConnectRedis()
		if err == nil {
			if err := services.GetFromRedis(config.Ctx, rdb, testimonialsCacheKey, &cached); err == nil && len(cached) > 0 {
				response.OK(c, gin.H{"testimonials": cached})
				return
			}
		}

		if err := config.DB.Where("is_active = ?", true).Order("id").Find(&cached).Error; err != nil {
			response.ServerError(c, "Failed to fetch testimonials")
			return
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, testimonialsCacheKey, cached, 30*time.Minute); err != nil {
				log.Printf("failed to cache testimonials: %v", err)
			}
		}

		response.OK(c, gin.H{"testimonials": cached})
		return
	}

	page, limit := parsePagination(c)

	var total int64
	if err := config.DB.Model(&models.Testimonial{}).Count(&total).Error; err != nil {
		response.ServerError(c, "Failed to fetch testimonials")
		return
	}

	var testimonials []models.Testimonial
	if err := config.DB.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&testimonials).Error; err != nil {
		response.ServerError(c, "Failed to fetch testimonials")
		return
	}

	response.OK(c, gin.H{
		"testimonials": testimonials,
		"pagination":   response.NewPagination(total, page, limit),
	})
}

// CreateTestimonial accepts multipart form data so an avatar image can be
// attached; text-only submissions work the same way without the file part.
func CreateTestimonial(c *gin.Context) {
	var input dto.TestimonialInput
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, "Name, comment and a rating between 1 and 5 are required")
		return
	}

	testimonial := models.Testimonial{
		Name:     input.Name,
		Comment:  input.Comment,
		Rating:   input.Rating,
		Role:     input.Role,
		IsActive: true,
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil {
		if config.Cloudinary == nil {
			response.ServerError(c, "Image upload is not configured")
			return
		}
		url, err := services.UploadImage(c.Request.Context(), config.Cloudinary, fileHeader, "vaultpay/testimonials")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		testimonial.AvatarURL = url
	}

	if err := config.DB.Create(&testimonial).Error; err != nil {
		handleError(c, err, "Testimonial not found")
		return
	}

	invalidateCache(testimonialsCacheKey)
	response.Created(c, gin.H{
		"message":     "Testimonial created successfully",
		"testimonial": testimonial,
	})
}

func UpdateTestimonial(c *gin.Context) {
	var input dto.TestimonialInput
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, "Name, comment and a rating between 1 and 5 are required")
		return
	}

	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, c.Param("id")).Error; err != nil {
		handleError(c, err, "Testimonial not found")
		return
	}

	testimonial.Name = input.Name
	testimonial.Comment = input.Comment
	testimonial.Rating = input.Rating
	testimonial.Role = input.Role

	if fileHeader, err := c.FormFile("avatar"); err == nil {
		if config.Cloudinary == nil {
			response.ServerError(c, "Image upload is not configured")
			return
		}
		url, err := services.UploadImage(c.Request.Context(), config.Cloudinary, fileHeader, "vaultpay/testimonials")
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		testimonial.AvatarURL = url
	}

	if err := config.DB.Save(&testimonial).Error; err != nil {
		response.ServerError(c, "Failed to update testimonial")
		return
	}

	invalidateCache(testimonialsCacheKey)
	response.OK(c, gin.H{
		"message":     "Testimonial updated successfully",
		"testimonial": testimonial,
	})
}

func DeleteTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, c.Param("id")).Error; err != nil {
		handleError(c, err, "Testimonial not found")
		return
	}

	if err := config.DB.Delete(&testimonial).Error; err != nil {
		response.ServerError(c, "Failed to delete testimonial")
		return
	}

	invalidateCache(testimonialsCacheKey)
	response.Message(c, "Testimonial deleted successfully")
}

func ChangeTestimonialStatus(c *gin.Context) {
	var input dto.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "isActive is required")
		return
	}

	var testimonial models.Testimonial
	if err := config.DB.First(&testimonial, c.Param("id")).Error; err != nil {
		handleError(c, err, "Testimonial not found")
		return
	}

	testimonial.IsActive = *input.IsActive
	if err := config.DB.Save(&testimonial).Error; err != nil {
		response.ServerError(c, "Failed to update testimonial status")
		return
	}

	invalidateCache(testimonialsCacheKey)
	response.OK(c, gin.H{
		"message":     "Testimonial status updated successfully",
		"testimonial": testimonial,
	})
}
