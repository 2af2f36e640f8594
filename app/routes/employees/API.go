package employees

import (
	"time"

	"skill-snap/app/config"
	"skill-snap/app/database"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetEmployeesAPI(c *fiber.Ctx) error {
	list, err := GetAllEmployees(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load employees",
			"details": err.Error(),
		})
	}
	return c.JSON(list)
}

func CreateEmployeeAPI(c *fiber.Ctx) error {
	var e models.Employee
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if e.FirstName == "" || e.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employee name is required"})
	}
	if e.MonthlySalary < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Salary cannot be negative"})
	}

	if err := CreateEmployee(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	logAction(c, "create", e.ID, "Created employee "+e.FirstName+" "+e.LastName)
	return c.Status(fiber.StatusCreated).JSON(e)
}

func UpdateEmployeeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var e models.Employee
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	e.ID = id
	if err := UpdateEmployee(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	return c.JSON(e)
}

func DeleteEmployeeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteEmployee(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employee"})
	}

	logAction(c, "delete", id, "Deactivated employee")
	return c.SendStatus(fiber.StatusNoContent)
}

func GetSalaryPaymentsAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))

	list, err := GetSalaryPayments(config.GetDB(), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load salary payments"})
	}
	return c.JSON(list)
}

func CreateSalaryPaymentAPI(c *fiber.Ctx) error {
	var p models.SalaryPayment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if p.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if p.Month < 1 || p.Month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month must be between 1 and 12"})
	}
	if p.Status == "" {
		p.Status = models.PaymentCompleted
	}

	if err := CreateSalaryPayment(config.GetDB(), &p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record salary payment"})
	}

	logAction(c, "create", p.ID, "Recorded salary payment")
	return c.Status(fiber.StatusCreated).JSON(p)
}

func CancelSalaryPaymentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := CancelSalaryPayment(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel salary payment"})
	}

	logAction(c, "cancel", id, "Cancelled salary payment")
	return c.JSON(fiber.Map{"message": "Salary payment cancelled"})
}

func logAction(c *fiber.Ctx, action, entityID, details string) {
	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	database.LogActivity(config.GetDB(), &userID, userName, action, "employee", &entityID, &details)
}
