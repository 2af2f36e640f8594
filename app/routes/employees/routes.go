package employees

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeesRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitEmployeesDB(db)

	// Web Routes
	web := app.Group("/employees")
	web.Use(auth.AuthMiddleware)
	web.Get("/", EmployeesPageHandler)

	// API Routes
	api := app.Group("/api/employees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEmployeesAPI)
	api.Post("/", CreateEmployeeAPI)
	api.Put("/:id", UpdateEmployeeAPI)
	api.Delete("/:id", DeleteEmployeeAPI)

	// Salary payment API
	salAPI := app.Group("/api/salary-payments")
	salAPI.Use(auth.AuthMiddleware)
	salAPI.Use(auth.RoleMiddleware("admin", "finance"))
	salAPI.Get("/", GetSalaryPaymentsAPI)
	salAPI.Post("/", CreateSalaryPaymentAPI)
	salAPI.Put("/:id/cancel", CancelSalaryPaymentAPI)
}

func EmployeesPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("employees/index", fiber.Map{
		"Title":       "Employees Management",
		"CurrentPage": "employees",
		"user":        user,
	})
}
