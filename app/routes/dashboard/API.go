package dashboard

import (
	"database/sql"
	"time"

	"skill-snap/app/config"
	"skill-snap/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI returns the landing-page counters plus the current
// month's financial headline.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	now := time.Now()

	counts, err := getEntityCounts(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load dashboard stats",
			"details": err.Error(),
		})
	}

	summary, err := database.GetMonthSummary(db, now.Year(), int(now.Month()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load month summary"})
	}

	return c.JSON(fiber.Map{
		"counts":        counts,
		"month_summary": summary,
	})
}

func getEntityCounts(db *sql.DB) (fiber.Map, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM teachers WHERE is_active = true),
		(SELECT COUNT(*) FROM employees WHERE is_active = true),
		(SELECT COUNT(*) FROM rooms),
		(SELECT COUNT(*) FROM equipment),
		(SELECT COUNT(*) FROM adverts WHERE is_active = true),
		(SELECT COUNT(*) FROM debts WHERE is_settled = false)`

	var teachers, employees, rooms, equipment, adverts, openDebts int
	err := db.QueryRow(query).Scan(&teachers, &employees, &rooms, &equipment, &adverts, &openDebts)
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"teachers":   teachers,
		"employees":  employees,
		"rooms":      rooms,
		"equipment":  equipment,
		"adverts":    adverts,
		"open_debts": openDebts,
	}, nil
}
