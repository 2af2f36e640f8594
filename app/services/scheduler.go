package services

import (
	"database/sql"
	"log"
	"time"

	"skill-snap/app/routes/logs"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Nightly cleanup at 02:00
			if now.Hour() == 2 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [02:00]...")

				if err := CleanupExpiredSessions(db); err != nil {
					log.Printf("Error cleaning up sessions: %v", err)
				}
				if err := logs.PruneOldLogs(db, 90*24*time.Hour); err != nil {
					log.Printf("Error pruning activity logs: %v", err)
				}
			}

			// Debt snapshot on the last day of the month at 22:00
			if now.Hour() == 22 && now.Minute() == 0 && isLastDayOfMonth(now) {
				log.Println("Triggering scheduled tasks [month end]...")

				if err := GenerateDebtSnapshots(db); err != nil {
					log.Printf("Error generating debt snapshots: %v", err)
				}
			}
		}
	}()
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
