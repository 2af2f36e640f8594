package finance

import (
	"time"

	"skill-snap/app/config"
	"skill-snap/app/database"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetIncomesAPI(c *fiber.Ctx) error {
	list, err := GetAllIncomes(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load incomes",
			"details": err.Error(),
		})
	}
	return c.JSON(list)
}

func CreateIncomeAPI(c *fiber.Ctx) error {
	var i models.Income
	if err := c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if i.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Income title is required"})
	}
	if i.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if i.Date.IsZero() {
		i.Date = time.Now()
	}

	if err := CreateIncome(config.GetDB(), &i); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create income"})
	}

	logAction(c, "create", i.ID, "Recorded income "+i.Title)
	return c.Status(fiber.StatusCreated).JSON(i)
}

func UpdateIncomeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var i models.Income
	if err := c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	i.ID = id
	if err := UpdateIncome(config.GetDB(), &i); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update income"})
	}
	return c.JSON(i)
}

func DeleteIncomeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteIncome(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete income"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetExpensesAPI(c *fiber.Ctx) error {
	expenses, err := GetAllExpenses(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load expenses",
			"details": err.Error(),
		})
	}
	return c.JSON(expenses)
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if e.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Expense title is required"})
	}
	if e.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	if err := CreateExpense(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	logAction(c, "create", e.ID, "Recorded expense "+e.Title)
	return c.Status(fiber.StatusCreated).JSON(e)
}

func UpdateExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	e.ID = id
	if err := UpdateExpense(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update expense"})
	}
	return c.JSON(e)
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteExpense(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetCategoriesAPI(c *fiber.Ctx) error {
	categories, err := GetAllCategories(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load categories",
			"details": err.Error(),
		})
	}
	return c.JSON(categories)
}

func CreateCategoryAPI(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if cat.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category name is required"})
	}

	if err := CreateCategory(config.GetDB(), &cat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func UpdateCategoryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	cat.ID = id
	if err := UpdateCategory(config.GetDB(), &cat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update category"})
	}
	return c.JSON(cat)
}

func DeleteCategoryAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteCategory(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))

	list, err := GetStudentPayments(config.GetDB(), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load student payments"})
	}
	return c.JSON(list)
}

func CreateStudentPaymentAPI(c *fiber.Ctx) error {
	var p models.StudentPayment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if p.StudentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student name is required"})
	}
	if p.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}

	if err := CreateStudentPayment(config.GetDB(), &p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record student payment"})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func DeleteStudentPaymentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteStudentPayment(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student payment"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetDebtsAPI(c *fiber.Ctx) error {
	includeSettled := c.QueryBool("include_settled", false)
	list, err := GetAllDebts(config.GetDB(), includeSettled)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load debts"})
	}
	return c.JSON(list)
}

func CreateDebtAPI(c *fiber.Ctx) error {
	var d models.Debt
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if d.StudentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student name is required"})
	}
	if d.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if d.IncurredAt.IsZero() {
		d.IncurredAt = time.Now()
	}

	if err := CreateDebt(config.GetDB(), &d); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record debt"})
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

func SettleDebtAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := SettleDebt(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to settle debt"})
	}

	logAction(c, "settle", id, "Settled student debt")
	return c.JSON(fiber.Map{"message": "Debt settled"})
}

func logAction(c *fiber.Ctx, action, entityID, details string) {
	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	database.LogActivity(config.GetDB(), &userID, userName, action, "finance", &entityID, &details)
}
