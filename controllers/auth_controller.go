package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"vaultpay/dto"
	"vaultpay/models"
	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const tokenTTLMinutes = 60 * 24 * 3

type AuthController struct {
	DB    *gorm.DB
	Users *services.UserService
}

func NewAuthController(db *gorm.DB, users *services.UserService) AuthController {
	return AuthController{DB: db, Users: users}
}

func (a AuthController) login(c *gin.Context, requiredRole string) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))

	var user models.User
	if err := a.DB.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid credentials")
		return
	}

	if user.Role != requiredRole {
		response.Forbidden(c)
		return
	}

	if !user.IsActive {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, tokenTTLMinutes)
	if err != nil {
		response.ServerError(c, "Failed to issue token")
		return
	}

	response.OK(c, gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
	})
}

// AdminLogin handles POST /admin/login.
func (a AuthController) AdminLogin(c *gin.Context) {
	a.login(c, models.RoleAdmin)
}

// UserLogin handles POST /user/login.
func (a AuthController) UserLogin(c *gin.Context) {
	a.login(c, models.RoleUser)
}

// Register handles POST /user/register. The registration bonus and referral
// credit are applied by the user service inside one transaction.
func (a AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid registration data: "+err.Error())
		return
	}

	user, err := a.Users.Register(input.Username, input.Email, input.Password, input.FullName, input.PhoneNumber, input.ReferralCode)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrUsernameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "Registration failed")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, tokenTTLMinutes)
	if err != nil {
		response.ServerError(c, "Failed to issue token")
		return
	}

	response.Created(c, gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
	})
}

// AuthGoogle exchanges a Google ID token for a session, creating the
// account on first sign-in.
func (a AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "tokenId is required")
		return
	}

	payload, err := verifyGoogleIDToken(input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if !verified {
		response.BadRequest(c, "Google account email is not verified")
		return
	}

	var user models.User
	result := a.DB.Where("email = ?", strings.ToLower(email)).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user = models.User{
			Username:     strings.Split(email, "@")[0],
			Email:        strings.ToLower(email),
			FullName:     name,
			ProfilePhoto: picture,
			Role:         models.RoleUser,
			IsActive:     true,
			ReferralCode: services.NewReferralCode(),
		}
		if err := a.DB.Create(&user).Error; err != nil {
			log.Printf("google signup failed for %s: %v", email, err)
			response.ServerError(c, "Failed to create account")
			return
		}
	} else if result.Error != nil {
		response.ServerError(c, "Failed to look up account")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, tokenTTLMinutes)
	if err != nil {
		response.ServerError(c, "Failed to issue token")
		return
	}

	response.OK(c, gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
	})
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}
