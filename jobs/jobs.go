package jobs

import (
	"fmt"
	"log"
	"time"

	"vaultpay/config"
	"vaultpay/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InitCronJobs registers the scheduled work and starts the cron runner:
// a nightly platform stats snapshot and an hourly pending-request count
// pushed to connected admin dashboards.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	if _, err := c.AddFunc("5 0 * * *", func() {
		if err := SnapshotPlatformStats(config.DB); err != nil {
			log.Printf("platform stats snapshot failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule stats snapshot: %w", err)
	}

	if _, err := c.AddFunc("@hourly", func() {
		if err := BroadcastPendingCounts(config.DB, m); err != nil {
			log.Printf("pending count broadcast failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule pending broadcast: %w", err)
	}

	c.Start()
	return nil
}

// SnapshotPlatformStats upserts one stats row per day so the admin
// dashboard charts have a history to draw.
func SnapshotPlatformStats(db *gorm.DB) error {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := models.PlatformStats{Date: day}

	if err := db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&stats.TotalUsers).Error; err != nil {
		return err
	}
	db.Model(&models.User{}).Where("role = ? AND is_active = ?", models.RoleUser, true).Count(&stats.ActiveUsers)
	db.Model(&models.DepositRequest{}).Where("status = ?", models.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalDeposited)
	db.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalWithdrawn)
	db.Model(&models.DepositRequest{}).Where("status = ?", models.StatusPending).Count(&stats.PendingDeposits)
	db.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusPending).Count(&stats.PendingWithdraws)

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&stats).Error
}

// BroadcastPendingCounts nudges connected dashboards with the number of
// requests waiting for review.
func BroadcastPendingCounts(db *gorm.DB, m *melody.Melody) error {
	var pendingDeposits, pendingWithdrawals int64
	if err := db.Model(&models.DepositRequest{}).Where("status = ?", models.StatusPending).Count(&pendingDeposits).Error; err != nil {
		return err
	}
	if err := db.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusPending).Count(&pendingWithdrawals).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":               "pending_counts",
		"pendingDeposits":    pendingDeposits,
		"pendingWithdrawals": pendingWithdrawals,
	})
	if err != nil {
		return err
	}

	return m.Broadcast(payload)
}
