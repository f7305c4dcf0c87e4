package models

import "time"

// PlatformStats is a daily snapshot written by the stats cron job.
type PlatformStats struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Date             time.Time `gorm:"uniqueIndex" json:"date"`
	TotalUsers       int64     `json:"totalUsers"`
	ActiveUsers      int64     `json:"activeUsers"`
	TotalDeposited   float64   `json:"totalDeposited"`
	TotalWithdrawn   float64   `json:"totalWithdrawn"`
	PendingDeposits  int64     `json:"pendingDeposits"`
	PendingWithdraws int64     `json:"pendingWithdraws"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
