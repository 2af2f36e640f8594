package rooms

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupRoomsRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitRoomsDB(db)

	// Web Routes
	web := app.Group("/rooms")
	web.Use(auth.AuthMiddleware)
	web.Get("/", RoomsPageHandler)

	// API Routes
	api := app.Group("/api/rooms")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetRoomsAPI)
	api.Post("/", CreateRoomAPI)
	api.Put("/:id", UpdateRoomAPI)
	api.Delete("/:id", DeleteRoomAPI)
}

func RoomsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("rooms/index", fiber.Map{
		"Title":       "Rooms Management",
		"CurrentPage": "rooms",
		"user":        user,
	})
}
