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

const paymentMethodsCacheKey = "payment-methods:all"

// GetPaymentMethods lists every payment method, cached briefly since the
// deposit form fetches this on each open.
func GetPaymentMethods(c *gin.Context) {
	var methods []models.PaymentMethod

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, paymentMethodsCacheKey, &methods); err == nil && len(methods) > 0 {
			response.OK(c, gin.H{"paymentMethods": methods})
			return
		}
	}

	if err := config.DB.Order("id").Find(&methods).Error; err != nil {
		response.ServerError(c, "Failed to fetch payment methods")
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, paymentMethodsCacheKey, methods, 10*time.Minute); err != nil {
			log.Printf("failed to cache payment methods: %v", err)
		}
	}

	response.OK(c, gin.H{"paymentMethods": methods})
}

func GetPaymentMethodByID(c *gin.Context) {
	var method models.PaymentMethod
	if err := config.DB.First(&method, c.Param("id")).Error; err != nil {
		handleError(c, err, "Payment method not found")
		return
	}
	response.OK(c, gin.H{"paymentMethod": method})
}

func CreatePaymentMethod(c *gin.Context) {
	var input dto.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Method name and account number are required")
		return
	}

	method := models.PaymentMethod{
		MethodName:    input.MethodName,
		AccountNumber: input.AccountNumber,
		Instructions:  input.Instructions,
		IsActive:      true,
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&method).Error; err != nil {
		handleError(c, err, "Payment method not found")
		return
	}

	invalidateCache(paymentMethodsCacheKey)
	response.Created(c, gin.H{
		"message":       "Payment method created successfully",
		"paymentMethod": method,
	})
}

func UpdatePaymentMethod(c *gin.Context) {
	var input dto.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Method name and account number are required")
		return
	}

	var method models.PaymentMethod
	if err := config.DB.First(&method, c.Param("id")).Error; err != nil {
		handleError(c, err, "Payment method not found")
		return
	}

	method.MethodName = input.MethodName
	method.AccountNumber = input.AccountNumber
	method.Instructions = input.Instructions
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&method).Error; err != nil {
		response.ServerError(c, "Failed to update payment method")
		return
	}

	invalidateCache(paymentMethodsCacheKey)
	response.OK(c, gin.H{
		"message":       "Payment method updated successfully",
		"paymentMethod": method,
	})
}

func DeletePaymentMethod(c *gin.Context) {
	var method models.PaymentMethod
	if err := config.DB.First(&method, c.Param("id")).Error; err != nil {
		handleError(c, err, "Payment method not found")
		return
	}

	if err := config.DB.Delete(&method).Error; err != nil {
		response.ServerError(c, "Failed to delete payment method")
		return
	}

	invalidateCache(paymentMethodsCacheKey)
	response.Message(c, "Payment method deleted successfully")
}

func ChangePaymentMethodStatus(c *gin.Context) {
	var input dto.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "isActive is required")
		return
	}

	var method models.PaymentMethod
	if err := config.DB.First(&method, c.Param("id")).Error; err != nil {
		handleError(c, err, "Payment method not found")
		return
	}

	method.IsActive = *input.IsActive
	if err := config.DB.Save(&method).Error; err != nil {
		response.ServerError(c, "Failed to update payment method status")
		return
	}

	invalidateCache(paymentMethodsCacheKey)
	response.OK(c, gin.H{
		"message":       "Payment method status updated successfully",
		"paymentMethod": method,
	})
}
