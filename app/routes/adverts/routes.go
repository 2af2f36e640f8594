package adverts

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdvertsRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitAdvertsDB(db)

	// Web Routes
	web := app.Group("/adverts")
	web.Use(auth.AuthMiddleware)
	web.Get("/", AdvertsPageHandler)

	// API Routes
	api := app.Group("/api/adverts")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAdvertsAPI)
	api.Get("/active", GetActiveAdvertsAPI)
	api.Post("/", CreateAdvertAPI)
	api.Put("/:id", UpdateAdvertAPI)
	api.Delete("/:id", DeleteAdvertAPI)
}

func AdvertsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("adverts/index", fiber.Map{
		"Title":       "Advertisements",
		"CurrentPage": "adverts",
		"user":        user,
	})
}
