package response

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

// Message writes a 200 carrying only a human-readable message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, data)
}

// Error helpers all use the {"message": ...} shape the dashboard surfaces
// verbatim in its banner.

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
}

func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}
