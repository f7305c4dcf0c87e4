package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"vaultpay/dto"
	"vaultpay/middleware"
	"vaultpay/models"
	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type WithdrawalController struct {
	DB *gorm.DB
	WS *melody.Melody
}

func NewWithdrawalController(db *gorm.DB, ws *melody.Melody) WithdrawalController {
	return WithdrawalController{DB: db, WS: ws}
}

func toWithdrawalResponse(r models.WithdrawalRequest) dto.RequestResponse {
	return dto.RequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		Username:      r.User.Username,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		AccountNumber: r.AccountNumber,
		TransactionID: r.TransactionID,
		Status:        r.Status,
		AdminNotes:    r.AdminNotes,
		CreatedAt:     r.CreatedAt,
		ProcessedAt:   r.ProcessedAt,
		ProcessedBy:   r.ProcessedBy,
	}
}

func (w WithdrawalController) GetWithdrawalRequests(c *gin.Context) {
	page, limit := parsePagination(c)
	status := c.Query("status")
	search := c.Query("search")

	query := w.DB.Model(&models.WithdrawalRequest{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.WithdrawalRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		response.ServerError(c, "Failed to fetch withdrawal requests")
		return
	}

	if search != "" {
		var filtered []models.WithdrawalRequest
		for _, r := range requests {
			if services.MatchesSearch(search, r.User.Username, r.User.Email, r.TransactionID, r.AccountNumber) {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}

	total := int64(len(requests))
	start := (page - 1) * limit
	end := start + limit
	if start >= len(requests) {
		requests = []models.WithdrawalRequest{}
	} else if end > len(requests) {
		requests = requests[start:]
	} else {
		requests = requests[start:end]
	}

	items := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toWithdrawalResponse(r))
	}

	response.OK(c, gin.H{
		"withdrawalRequests": items,
		"pagination":         response.NewPagination(total, page, limit),
	})
}

func (w WithdrawalController) GetWithdrawalRequestByID(c *gin.Context) {
	var request models.WithdrawalRequest
	if err := w.DB.Preload("User").First(&request, c.Param("id")).Error; err != nil {
		handleError(c, err, "Withdrawal request not found")
		return
	}
	response.OK(c, gin.H{"withdrawalRequest": toWithdrawalResponse(request)})
}

// ProcessWithdrawalRequest approves or rejects a pending withdrawal.
// Approval debits the held balance and bumps the withdraw totals; funds
// were already reserved when the request was filed, so rejection has to
// put them back.
func (w WithdrawalController) ProcessWithdrawalRequest(c *gin.Context) {
	adminID, _ := middleware.CurrentUser(c)

	var input dto.ProcessRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "action must be approve or reject")
		return
	}

	var request models.WithdrawalRequest
	if err := w.DB.Preload("User").First(&request, c.Param("id")).Error; err != nil {
		handleError(c, err, "Withdrawal request not found")
		return
	}

	if request.Status != models.StatusPending {
		response.BadRequest(c, "Withdrawal request has already been processed")
		return
	}

	now := time.Now()
	err := w.DB.Transaction(func(tx *gorm.DB) error {
		if input.Action == "approve" {
			request.Status = models.StatusApproved
			if err := tx.Model(&models.User{}).Where("id = ?", request.UserID).
				Updates(map[string]interface{}{
					"withdraw":       gorm.Expr("withdraw + ?", request.Amount),
					"total_withdraw": gorm.Expr("total_withdraw + ?", request.Amount),
				}).Error; err != nil {
				return err
			}
		} else {
			request.Status = models.StatusRejected
			// Return the reserved funds.
			if err := tx.Model(&models.User{}).Where("id = ?", request.UserID).
				Updates(map[string]interface{}{
					"balance":       gorm.Expr("balance + ?", request.Amount),
					"total_balance": gorm.Expr("total_balance + ?", request.Amount),
				}).Error; err != nil {
				return err
			}
		}

		request.AdminNotes = input.AdminNotes
		request.ProcessedAt = &now
		request.ProcessedBy = &adminID
		return tx.Save(&request).Error
	})
	if err != nil {
		response.ServerError(c, "Failed to process withdrawal request")
		return
	}

	w.broadcastStatusChange(request.ID, request.UserID, request.Status)

	message := "Withdrawal request rejected successfully"
	if request.Status == models.StatusApproved {
		message = "Withdrawal request approved successfully"
	}

	response.OK(c, gin.H{
		"message":           message,
		"withdrawalRequest": toWithdrawalResponse(request),
	})
}

func (w WithdrawalController) GetWithdrawalStats(c *gin.Context) {
	var stats dto.RequestStats

	if err := w.DB.Model(&models.WithdrawalRequest{}).Count(&stats.Total).Error; err != nil {
		response.ServerError(c, "Failed to fetch withdrawal statistics")
		return
	}
	w.DB.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusPending).Count(&stats.Pending)
	w.DB.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusApproved).Count(&stats.Approved)
	w.DB.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusRejected).Count(&stats.Rejected)
	w.DB.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.ApprovedTotal)

	response.OK(c, gin.H{"stats": stats})
}

func (w WithdrawalController) GetMyWithdrawalRequests(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	page, limit := parsePagination(c)

	query := w.DB.Model(&models.WithdrawalRequest{}).Preload("User").Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c, "Failed to fetch withdrawal requests")
		return
	}

	var requests []models.WithdrawalRequest
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&requests).Error; err != nil {
		response.ServerError(c, "Failed to fetch withdrawal requests")
		return
	}

	items := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toWithdrawalResponse(r))
	}

	response.OK(c, gin.H{
		"withdrawalRequests": items,
		"pagination":         response.NewPagination(total, page, limit),
	})
}

// CreateWithdrawalRequest reserves the amount from the user's balance and
// files a pending withdrawal.
func (w WithdrawalController) CreateWithdrawalRequest(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var input dto.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid withdrawal data: "+err.Error())
		return
	}

	var method models.PaymentMethod
	if err := w.DB.Where("method_name = ? AND is_active = ?", input.PaymentMethod, true).First(&method).Error; err != nil {
		response.BadRequest(c, "Payment method is not available")
		return
	}

	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		transactionID = fmt.Sprintf("WDR-%s", strings.ToUpper(uuid.NewString()[:8]))
	}

	request := models.WithdrawalRequest{
		UserID:        userID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		AccountNumber: input.AccountNumber,
		TransactionID: transactionID,
		Status:        models.StatusPending,
	}

	err := w.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.Balance < input.Amount {
			return errInsufficientBalance
		}

		if err := tx.Model(&user).Updates(map[string]interface{}{
			"balance":       gorm.Expr("balance - ?", input.Amount),
			"total_balance": gorm.Expr("total_balance - ?", input.Amount),
		}).Error; err != nil {
			return err
		}

		return tx.Create(&request).Error
	})
	if err != nil {
		if err == errInsufficientBalance {
			response.BadRequest(c, "Insufficient balance")
			return
		}
		response.ServerError(c, "Failed to submit withdrawal request")
		return
	}

	response.Created(c, gin.H{
		"message":           "Withdrawal request submitted successfully",
		"withdrawalRequest": toWithdrawalResponse(request),
	})
}

func (w WithdrawalController) broadcastStatusChange(requestID, userID uint, status string) {
	if w.WS == nil {
		return
	}

	payload, err := json.Marshal(gin.H{
		"type":      "withdrawal_status",
		"requestId": requestID,
		"userId":    userID,
		"status":    status,
	})
	if err != nil {
		return
	}
	if err := w.WS.Broadcast(payload); err != nil {
		log.Printf("websocket broadcast failed: %v", err)
	}
}
