package finance

import (
	"database/sql"

	"skill-snap/app/models"
	"skill-snap/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFinanceRoutes(app *fiber.App, db *sql.DB) {
	// Initialize database tables
	InitFinanceDB(db)

	// Web Routes
	web := app.Group("/finance")
	web.Use(auth.AuthMiddleware)
	web.Get("/", FinancePageHandler)

	// Income API
	incomeAPI := app.Group("/api/incomes")
	incomeAPI.Use(auth.AuthMiddleware)
	incomeAPI.Get("/", GetIncomesAPI)
	incomeAPI.Post("/", CreateIncomeAPI)
	incomeAPI.Put("/:id", UpdateIncomeAPI)
	incomeAPI.Delete("/:id", DeleteIncomeAPI)

	// Expense API
	expenseAPI := app.Group("/api/expenses")
	expenseAPI.Use(auth.AuthMiddleware)
	expenseAPI.Get("/", GetExpensesAPI)
	expenseAPI.Post("/", CreateExpenseAPI)
	expenseAPI.Put("/:id", UpdateExpenseAPI)
	expenseAPI.Delete("/:id", DeleteExpenseAPI)

	// Category API
	catAPI := app.Group("/api/expense-categories")
	catAPI.Use(auth.AuthMiddleware)
	catAPI.Get("/", GetCategoriesAPI)
	catAPI.Post("/", CreateCategoryAPI)
	catAPI.Put("/:id", UpdateCategoryAPI)
	catAPI.Delete("/:id", DeleteCategoryAPI)

	// Student payment API
	payAPI := app.Group("/api/student-payments")
	payAPI.Use(auth.AuthMiddleware)
	payAPI.Get("/", GetStudentPaymentsAPI)
	payAPI.Post("/", CreateStudentPaymentAPI)
	payAPI.Delete("/:id", DeleteStudentPaymentAPI)

	// Debt API
	debtAPI := app.Group("/api/debts")
	debtAPI.Use(auth.AuthMiddleware)
	debtAPI.Get("/", GetDebtsAPI)
	debtAPI.Post("/", CreateDebtAPI)
	debtAPI.Put("/:id/settle", SettleDebtAPI)

	// Analytics + report export
	analyticsAPI := app.Group("/api/analytics")
	analyticsAPI.Use(auth.AuthMiddleware)
	analyticsAPI.Get("/monthly", GetMonthlyAnalyticsAPI)
	analyticsAPI.Get("/export", auth.RoleMiddleware("admin", "finance"), ExportMonthlyReportAPI)
}

func FinancePageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("finance/index", fiber.Map{
		"Title":       "Financial Management",
		"CurrentPage": "finance",
		"user":        user,
	})
}
