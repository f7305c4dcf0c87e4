package controllers

import (
	"vaultpay/dto"
	"vaultpay/models"
	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{DB: db, Redis: redisCli}
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role,
		IsActive:      user.IsActive,
		ProfilePhoto:  user.ProfilePhoto,
		Balance:       user.Balance,
		Deposit:       user.Deposit,
		Withdraw:      user.Withdraw,
		TotalBalance:  user.TotalBalance,
		TotalDeposit:  user.TotalDeposit,
		TotalWithdraw: user.TotalWithdraw,
		ReferralCode:  user.ReferralCode,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// GetUsers lists users with server-side status/search filtering and
// pagination. Search matches username, email and phone; when the substring
// match comes up empty a fuzzy pass catches near misses ("jhon" -> "john").
func (u UserController) GetUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	search := c.Query("search")
	status := c.Query("status")

	query := u.DB.Model(&models.User{}).Where("role = ?", models.RoleUser)
	if status == "active" {
		query = query.Where("is_active = ?", true)
	} else if status == "inactive" {
		query = query.Where("is_active = ?", false)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		response.ServerError(c, "Failed to fetch users")
		return
	}

	if search != "" {
		users = filterUsersBySearch(users, search)
	}

	total := int64(len(users))
	start := (page - 1) * limit
	end := start + limit
	if start >= len(users) {
		users = []models.User{}
	} else if end > len(users) {
		users = users[start:]
	} else {
		users = users[start:end]
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, toUserResponse(user))
	}

	response.OK(c, gin.H{
		"users":      userResponses,
		"pagination": response.NewPagination(total, page, limit),
	})
}

func filterUsersBySearch(users []models.User, search string) []models.User {
	var matched []models.User
	for _, user := range users {
		if services.MatchesSearch(search, user.Username, user.Email, user.PhoneNumber, user.FullName) {
			matched = append(matched, user)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	// Fuzzy fallback on usernames only.
	names := make([]string, 0, len(users))
	byName := make(map[string]models.User, len(users))
	for _, user := range users {
		names = append(names, user.Username)
		byName[user.Username] = user
	}
	for _, name := range services.RankFuzzy(search, names, 2) {
		matched = append(matched, byName[name])
	}
	return matched
}

func (u UserController) CreateUser(c *gin.Context) {
	var input dto.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid user data: "+err.Error())
		return
	}

	var existing models.User
	if err := u.DB.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error; err == nil {
		response.BadRequest(c, "Username or email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c, "Failed to create user")
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		Password:     string(hashed),
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
		IsActive:     true,
		Balance:      input.Balance,
		TotalBalance: input.Balance,
		ReferralCode: services.NewReferralCode(),
	}

	if err := u.DB.Create(&user).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	response.Created(c, gin.H{
		"message": "User created successfully",
		"user":    toUserResponse(user),
	})
}

func (u UserController) GetUserByID(c *gin.Context) {
	var user models.User
	if err := u.DB.First(&user, c.Param("id")).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}
	response.OK(c, gin.H{"user": toUserResponse(user)})
}

func (u UserController) UpdateUser(c *gin.Context) {
	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid user data: "+err.Error())
		return
	}

	var user models.User
	if err := u.DB.First(&user, c.Param("id")).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if input.Username != "" {
		updates["username"] = input.Username
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
	}
	if input.PhoneNumber != "" {
		updates["phone_number"] = input.PhoneNumber
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			response.ServerError(c, "Failed to update user")
			return
		}
		updates["password"] = string(hashed)
	}

	if err := u.DB.Model(&user).Updates(updates).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	response.OK(c, gin.H{
		"message": "User updated successfully",
		"user":    toUserResponse(user),
	})
}

func (u UserController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := u.DB.First(&user, c.Param("id")).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	if err := u.DB.Delete(&user).Error; err != nil {
		response.ServerError(c, "Failed to delete user")
		return
	}

	response.Message(c, "User deleted successfully")
}

// ChangeUserStatus toggles the active flag; inactive users cannot log in.
func (u UserController) ChangeUserStatus(c *gin.Context) {
	var input dto.UserStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "isActive is required")
		return
	}

	var user models.User
	if err := u.DB.First(&user, c.Param("id")).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	user.IsActive = *input.IsActive
	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c, "Failed to update user status")
		return
	}

	response.OK(c, gin.H{
		"message": "User status updated successfully",
		"user":    toUserResponse(user),
	})
}

// UpdateUserBalances sets absolute balance figures. Only fields present in
// the body change; totals follow the edited values.
func (u UserController) UpdateUserBalances(c *gin.Context) {
	var input dto.UpdateBalancesRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid balance data")
		return
	}

	var user models.User
	if err := u.DB.First(&user, c.Param("id")).Error; err != nil {
		handleError(c, err, "User not found")
		return
	}

	if input.Balance != nil {
		user.Balance = *input.Balance
		user.TotalBalance = *input.Balance
	}
	if input.Deposit != nil {
		user.Deposit = *input.Deposit
		user.TotalDeposit = *input.Deposit
	}
	if input.Withdraw != nil {
		user.Withdraw = *input.Withdraw
		user.TotalWithdraw = *input.Withdraw
	}

	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c, "Failed to update balances")
		return
	}

	response.OK(c, gin.H{
		"message": "Balances updated successfully",
		"user":    toUserResponse(user),
	})
}
