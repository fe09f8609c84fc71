package helper

import (
	"log"
	"theatre_manager/database"
	"theatre_manager/model"
	"time"

	"github.com/robfig/cron/v3"
)

var cleanupScheduler *cron.Cron

func StartCleanupScheduler() {
	cleanupScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := cleanupScheduler.AddFunc("@hourly", PurgeExpiredResetTokens)
	if err != nil {
		log.Printf("failed to start cleanup scheduler: %v", err)
		return
	}

	cleanupScheduler.Start()
	log.Println("cleanup scheduler started (hourly)")
}

// PurgeExpiredResetTokens removes password-reset tokens past their expiry so
// the table does not accumulate dead rows.
func PurgeExpiredResetTokens() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		log.Printf("expired reset token purge failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("purged %d expired password reset tokens", result.RowsAffected)
	}
}

func StopCleanupScheduler() {
	if cleanupScheduler != nil {
		cleanupScheduler.Stop()
		log.Println("cleanup scheduler stopped")
	}
}
