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

type DepositController struct {
	DB *gorm.DB
	WS *melody.Melody
}

func NewDepositController(db *gorm.DB, ws *melody.Melody) DepositController {
	return DepositController{DB: db, WS: ws}
}

func toRequestResponse(r models.DepositRequest) dto.RequestResponse {
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

// GetDepositRequests lists deposit requests for the admin table with
// server-side status/search filtering and pagination.
func (d DepositController) GetDepositRequests(c *gin.Context) {
	page, limit := parsePagination(c)
	status := c.Query("status")
	search := c.Query("search")

	query := d.DB.Model(&models.DepositRequest{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.DepositRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		response.ServerError(c, "Failed to fetch deposit requests")
		return
	}

	if search != "" {
		var filtered []models.DepositRequest
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
		requests = []models.DepositRequest{}
	} else if end > len(requests) {
		requests = requests[start:]
	} else {
		requests = requests[start:end]
	}

	items := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toRequestResponse(r))
	}

	response.OK(c, gin.H{
		"depositRequests": items,
		"pagination":      response.NewPagination(total, page, limit),
	})
}

func (d DepositController) GetDepositRequestByID(c *gin.Context) {
	var request models.DepositRequest
	if err := d.DB.Preload("User").First(&request, c.Param("id")).Error; err != nil {
		handleError(c, err, "Deposit request not found")
		return
	}
	response.OK(c, gin.H{"depositRequest": toRequestResponse(request)})
}

// ProcessDepositRequest approves or rejects a pending request. Approval
// credits the user's balance and deposit totals in the same transaction
// that flips the status, so a crash can't credit twice or approve without
// crediting.
func (d DepositController) ProcessDepositRequest(c *gin.Context) {
	adminID, _ := middleware.CurrentUser(c)

	var input dto.ProcessRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "action must be approve or reject")
		return
	}

	var request models.DepositRequest
	if err := d.DB.Preload("User").First(&request, c.Param("id")).Error; err != nil {
		handleError(c, err, "Deposit request not found")
		return
	}

	if request.Status != models.StatusPending {
		response.BadRequest(c, "Deposit request has already been processed")
		return
	}

	now := time.Now()
	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if input.Action == "approve" {
			request.Status = models.StatusApproved
			if err := tx.Model(&models.User{}).Where("id = ?", request.UserID).
				Updates(map[string]interface{}{
					"balance":       gorm.Expr("balance + ?", request.Amount),
					"deposit":       gorm.Expr("deposit + ?", request.Amount),
					"total_balance": gorm.Expr("total_balance + ?", request.Amount),
					"total_deposit": gorm.Expr("total_deposit + ?", request.Amount),
				}).Error; err != nil {
				return err
			}
		} else {
			request.Status = models.StatusRejected
		}

		request.AdminNotes = input.AdminNotes
		request.ProcessedAt = &now
		request.ProcessedBy = &adminID
		return tx.Save(&request).Error
	})
	if err != nil {
		response.ServerError(c, "Failed to process deposit request")
		return
	}

	d.broadcastStatusChange("deposit", request.ID, request.UserID, request.Status)

	message := "Deposit request rejected successfully"
	if request.Status == models.StatusApproved {
		message = "Deposit request approved successfully"
	}

	response.OK(c, gin.H{
		"message":        message,
		"depositRequest": toRequestResponse(request),
	})
}

// GetDepositStats backs the cards above the admin table; the dashboard
// refetches it together with the list after every approve/reject.
func (d DepositController) GetDepositStats(c *gin.Context) {
	var stats dto.RequestStats

	model := d.DB.Model(&models.DepositRequest{})
	if err := model.Count(&stats.Total).Error; err != nil {
		response.ServerError(c, "Failed to fetch deposit statistics")
		return
	}
	d.DB.Model(&models.DepositRequest{}).Where("status = ?", models.StatusPending).Count(&stats.Pending)
	d.DB.Model(&models.DepositRequest{}).Where("status = ?", models.StatusApproved).Count(&stats.Approved)
	d.DB.Model(&models.DepositRequest{}).Where("status = ?", models.StatusRejected).Count(&stats.Rejected)
	d.DB.Model(&models.DepositRequest{}).Where("status = ?", models.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.ApprovedTotal)

	response.OK(c, gin.H{"stats": stats})
}

// GetMyDepositRequests lists the authenticated user's own requests.
func (d DepositController) GetMyDepositRequests(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)
	page, limit := parsePagination(c)

	query := d.DB.Model(&models.DepositRequest{}).Preload("User").Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c, "Failed to fetch deposit requests")
		return
	}

	var requests []models.DepositRequest
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&requests).Error; err != nil {
		response.ServerError(c, "Failed to fetch deposit requests")
		return
	}

	items := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toRequestResponse(r))
	}

	response.OK(c, gin.H{
		"depositRequests": items,
		"pagination":      response.NewPagination(total, page, limit),
	})
}

// CreateDepositRequest files a new pending deposit against an active
// payment method.
func (d DepositController) CreateDepositRequest(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	var input dto.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid deposit data: "+err.Error())
		return
	}

	var method models.PaymentMethod
	if err := d.DB.Where("method_name = ? AND is_active = ?", input.PaymentMethod, true).First(&method).Error; err != nil {
		response.BadRequest(c, "Payment method is not available")
		return
	}

	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		transactionID = fmt.Sprintf("DEP-%s", strings.ToUpper(uuid.NewString()[:8]))
	}

	request := models.DepositRequest{
		UserID:        userID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		AccountNumber: input.AccountNumber,
		TransactionID: transactionID,
		Status:        models.StatusPending,
	}

	if err := d.DB.Create(&request).Error; err != nil {
		handleError(c, err, "Deposit request not found")
		return
	}

	response.Created(c, gin.H{
		"message":        "Deposit request submitted successfully",
		"depositRequest": toRequestResponse(request),
	})
}

func (d DepositController) broadcastStatusChange(kind string, requestID, userID uint, status string) {
	if d.WS == nil {
		return
	}

	payload, err := json.Marshal(gin.H{
		"type":      kind + "_status",
		"requestId": requestID,
		"userId":    userID,
		"status":    status,
	})
	if err != nil {
		return
	}
	if err := d.WS.Broadcast(payload); err != nil {
		log.Printf("websocket broadcast failed: %v", err)
	}
}
