package teachers

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitTeachersDB(db)

	// Web Routes
	web := app.Group("/teachers")
	web.Use(auth.AuthMiddleware)
	web.Get("/", TeachersPageHandler)

	// API Routes
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTeachersAPI)
	api.Get("/:id/earnings", GetTeacherEarningsAPI)
	api.Post("/", CreateTeacherAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)

	// Payout API
	payAPI := app.Group("/api/teacher-payments")
	payAPI.Use(auth.AuthMiddleware)
	payAPI.Use(auth.RoleMiddleware("admin", "finance"))
	payAPI.Get("/", GetTeacherPaymentsAPI)
	payAPI.Post("/", CreateTeacherPaymentAPI)
	payAPI.Put("/:id/cancel", CancelTeacherPaymentAPI)
}

func TeachersPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("teachers/index", fiber.Map{
		"Title":       "Teachers Management",
		"CurrentPage": "teachers",
		"user":        user,
	})
}
