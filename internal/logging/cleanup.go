package logging

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/gorm"
)

const defaultRetentionDays = 30

// StartCleanup runs a daily goroutine that deletes system_logs older than
// the retention window (LOG_RETENTION_DAYS, default 30).
func StartCleanup(db *gorm.DB, done chan struct{}) {
	retention := retentionDays()
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retention)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected, "retention_days", retention)
				}
			case <-done:
				return
			}
		}
	}()
}

func retentionDays() int {
	if n, err := strconv.Atoi(os.Getenv("LOG_RETENTION_DAYS")); err == nil && n > 0 {
		return n
	}
	return defaultRetentionDays
}
