package dashboard

import (
	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	web := app.Group("/dashboard")
	web.Use(auth.AuthMiddleware)
	web.Get("/", DashboardPageHandler)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

func DashboardPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Skill Snap",
		"CurrentPage": "dashboard",
		"user":        user,
	})
}
