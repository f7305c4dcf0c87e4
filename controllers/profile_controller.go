package controllers

import (
	"vaultpay/config"
	"vaultpay/dto"
	"vaultpay/middleware"
	"vaultpay/models"
	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the authenticated user's record.
func GetProfile(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	response.OK(c, gin.H{"user": toUserResponse(user)})
}

func UpdateProfile(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid profile data: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
	}
	if input.PhoneNumber != "" {
		updates["phone_number"] = input.PhoneNumber
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			response.ServerError(c, "Failed to update profile")
			return
		}
		updates["password"] = string(hashed)
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		response.ServerError(c, "Failed to update profile")
		return
	}

	response.OK(c, gin.H{
		"message": "Profile updated successfully",
		"user":    toUserResponse(user),
	})
}

// UpdateProfilePhoto takes a multipart "profilePhoto" file, uploads it and
// stores the resulting URL on the user.
func UpdateProfilePhoto(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("profilePhoto")
	if err != nil {
		response.BadRequest(c, "Please select an image first.")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	if config.Cloudinary == nil {
		response.ServerError(c, "Image upload is not configured")
		return
	}

	url, err := services.UploadImage(c.Request.Context(), config.Cloudinary, fileHeader, "vaultpay/profiles")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user.ProfilePhoto = url
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c, "Failed to save profile photo")
		return
	}

	response.OK(c, gin.H{
		"message":      "Profile photo updated successfully",
		"profilePhoto": url,
	})
}
