package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserID uint   `json:"userid"`
	Role   string `json:"role"`
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "vaultpay-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues a signed bearer token valid for ttlMinutes.
func GenerateToken(info UserInfo, ttlMinutes int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": info,
		"exp":      time.Now().Add(time.Duration(ttlMinutes) * time.Minute).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken verifies the signature and expiry and returns the embedded
// user id and role.
func ParseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", fmt.Errorf("userinfo not found in token claims")
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, "", fmt.Errorf("user ID not found in userinfo")
	}

	role, okRole := userInfo["role"].(string)
	if !okRole {
		return 0, "", fmt.Errorf("role not found in userinfo")
	}

	return uint(userID), role, nil
}

// GetUserIDFromToken decodes the payload segment without verification.
// Handlers that only need the caller identity after the auth middleware has
// already verified the token use this cheaper path.
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, "", fmt.Errorf("invalid token format")
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, "", fmt.Errorf("failed to decode token payload: %w", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, "", fmt.Errorf("failed to unmarshal token payload: %w", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", fmt.Errorf("userinfo not found in token claims")
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, "", fmt.Errorf("user ID not found in userinfo")
	}

	role, okRole := userInfo["role"].(string)
	if !okRole {
		return 0, "", fmt.Errorf("role not found in userinfo")
	}

	return uint(userID), role, nil
}
