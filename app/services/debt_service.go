package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// GenerateDebtSnapshots finds students whose tuition for the current month
// is still unpaid at month end and records a debt for the shortfall. A
// snapshot already taken for the month is never duplicated.
func GenerateDebtSnapshots(db *sql.DB) error {
	log.Println("Starting monthly debt snapshot...")

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	// Students who paid earlier this year but paid nothing this month and
	// have no open debt recorded for this month yet.
	query := `
		SELECT DISTINCT sp.student_name, MAX(sp.amount) as last_amount
		FROM student_payments sp
		WHERE sp.date < $1
		AND sp.date >= $1 - INTERVAL '3 months'
		AND NOT EXISTS (
			SELECT 1 FROM student_payments p2
			WHERE p2.student_name = sp.student_name
			AND p2.date >= $1 AND p2.date < $2
		)
		AND NOT EXISTS (
			SELECT 1 FROM debts d
			WHERE d.student_name = sp.student_name
			AND d.incurred_at >= $1 AND d.incurred_at < $2
		)
		GROUP BY sp.student_name
	`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return fmt.Errorf("failed to query lapsed students: %v", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var studentName string
		var lastAmount int64
		if err := rows.Scan(&studentName, &lastAmount); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		_, err := db.Exec(`
			INSERT INTO debts (student_name, amount, incurred_at, is_settled)
			VALUES ($1, $2, $3, false)
		`, studentName, lastAmount, now)

		if err != nil {
			log.Printf("Failed to create debt snapshot for %s: %v", studentName, err)
		} else {
			count++
			log.Printf("Created debt snapshot for %s: %d DZD", studentName, lastAmount)
		}
	}

	log.Printf("Monthly debt snapshot completed. Created %d records.", count)
	return nil
}

// CleanupExpiredSessions drops sessions past their expiry.
func CleanupExpiredSessions(db *sql.DB) error {
	result, err := db.Exec(`DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Printf("Removed %d expired sessions", n)
	}
	return nil
}
