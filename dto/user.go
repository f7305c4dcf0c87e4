package dto

import "time"

type UserResponse struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"isActive"`
	ProfilePhoto  string    `json:"profilePhoto"`
	Balance       float64   `json:"Balance"`
	Deposit       float64   `json:"Deposit"`
	Withdraw      float64   `json:"Withdraw"`
	TotalBalance  float64   `json:"totalBalance"`
	TotalDeposit  float64   `json:"totalDeposit"`
	TotalWithdraw float64   `json:"totalWithdraw"`
	ReferralCode  string    `json:"referralCode"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=64"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FullName    string  `json:"fullName"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        string  `json:"role" binding:"omitempty,oneof=admin user"`
	Balance     float64 `json:"Balance"`
}

type UpdateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email" binding:"omitempty,email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"omitempty,min=8"`
}

type UserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UpdateBalancesRequest carries the absolute balances an admin sets on a user.
type UpdateBalancesRequest struct {
	Balance  *float64 `json:"Balance"`
	Deposit  *float64 `json:"Deposit"`
	Withdraw *float64 `json:"Withdraw"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"omitempty,min=8"`
}
