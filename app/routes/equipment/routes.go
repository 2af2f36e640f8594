package equipment

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEquipmentRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitEquipmentDB(db)

	// Web Routes
	web := app.Group("/equipment")
	web.Use(auth.AuthMiddleware)
	web.Get("/", EquipmentPageHandler)

	// API Routes
	api := app.Group("/api/equipment")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEquipmentAPI)
	api.Post("/", CreateEquipmentAPI)
	api.Put("/:id", UpdateEquipmentAPI)
	api.Delete("/:id", DeleteEquipmentAPI)
}

func EquipmentPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("equipment/index", fiber.Map{
		"Title":       "Equipment Management",
		"CurrentPage": "equipment",
		"user":        user,
	})
}
