package schools

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSchoolsRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitSchoolsDB(db)

	// Web Routes
	web := app.Group("/schools")
	web.Use(auth.AuthMiddleware)
	web.Get("/", SchoolsPageHandler)

	// API Routes
	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSchoolsAPI)
	api.Get("/:id", GetSchoolAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateSchoolAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateSchoolAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteSchoolAPI)
}

func SchoolsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("schools/index", fiber.Map{
		"Title":       "Schools Management",
		"CurrentPage": "schools",
		"user":        user,
	})
}
