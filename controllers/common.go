package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"vaultpay/config"
	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errInsufficientBalance = errors.New("insufficient balance")

// parsePagination reads 1-based page/limit query params with the defaults
// every list screen uses.
func parsePagination(c *gin.Context) (int, int) {
	page := 1
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 1 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	return page, limit
}

func handleError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, notFoundMessage)
	case strings.Contains(err.Error(), "duplicate key"),
		strings.Contains(err.Error(), "UNIQUE constraint"):
		response.BadRequest(c, "Resource already exists")
	default:
		log.Printf("unhandled error: %v", err)
		response.ServerError(c, "Something went wrong")
	}
}

// invalidateCache drops cached list payloads after a mutation so the next
// fetch sees fresh data. Redis being down is logged, never surfaced.
func invalidateCache(keys ...string) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, keys...); err != nil {
		log.Printf("cache invalidation failed for %v: %v", keys, err)
	}
}
