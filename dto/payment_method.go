package dto

type PaymentMethodInput struct {
	MethodName    string `json:"methodName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Instructions  string `json:"instructions"`
	IsActive      *bool  `json:"isActive"`
}

type StatusInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
