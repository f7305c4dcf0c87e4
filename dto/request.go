package dto

import "time"

// RequestResponse is shared by the deposit and withdrawal tables; both
// carry the same columns.
type RequestResponse struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"userId"`
	Username      string     `json:"username"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	AccountNumber string     `json:"accountNumber"`
	TransactionID string     `json:"transactionId"`
	Status        string     `json:"status"`
	AdminNotes    string     `json:"adminNotes"`
	CreatedAt     time.Time  `json:"createdAt"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
	ProcessedBy   *uint      `json:"processedBy,omitempty"`
}

type CreateRequestInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	AccountNumber string  `json:"accountNumber" binding:"required"`
	TransactionID string  `json:"transactionId"`
}

// ProcessRequestInput is the admin approve/reject body.
type ProcessRequestInput struct {
	Action     string `json:"action" binding:"required,oneof=approve reject"`
	AdminNotes string `json:"adminNotes"`
}

type RequestStats struct {
	Total         int64   `json:"total"`
	Pending       int64   `json:"pending"`
	Approved      int64   `json:"approved"`
	Rejected      int64   `json:"rejected"`
	ApprovedTotal float64 `json:"approvedAmount"`
}
