package logs

import (
	"database/sql"
	"log"
	"time"

	"skill-snap/app/config"
	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLogsRoutes(app *fiber.App, db *sql.DB) {
	// Web Routes
	web := app.Group("/logs")
	web.Use(auth.AuthMiddleware)
	web.Use(auth.RoleMiddleware("admin"))
	web.Get("/", LogsPageHandler)

	// API Routes
	api := app.Group("/api/logs")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin"))
	api.Get("/", GetLogsAPI)
}

func LogsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("logs/index", fiber.Map{
		"Title":       "Activity Logs",
		"CurrentPage": "logs",
		"user":        user,
	})
}

func GetLogsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}

	list, err := GetRecentLogs(config.GetDB(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load logs"})
	}
	return c.JSON(list)
}

// GetRecentLogs returns the newest audit entries, most recent first.
func GetRecentLogs(db *sql.DB, limit int) ([]*models.ActivityLog, error) {
	query := `SELECT id, user_id, user_name, action, entity, entity_id, details, created_at
			  FROM activity_logs
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.ActivityLog{}
	for rows.Next() {
		l := &models.ActivityLog{}
		err := rows.Scan(&l.ID, &l.UserID, &l.UserName, &l.Action, &l.Entity, &l.EntityID, &l.Details, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, nil
}

// PruneOldLogs removes audit entries older than the retention window.
func PruneOldLogs(db *sql.DB, retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	result, err := db.Exec(`DELETE FROM activity_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Printf("Pruned %d old activity logs", n)
	}
	return nil
}
