package teachers

import (
	"time"

	"skill-snap/app/config"
	"skill-snap/app/database"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	list, err := GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load teachers",
			"details": err.Error(),
		})
	}
	return c.JSON(list)
}

func GetTeacherEarningsAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))

	earned, paid, err := GetTeacherEarnings(config.GetDB(), id, year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute earnings"})
	}

	return c.JSON(fiber.Map{
		"teacher_id": id,
		"year":       year,
		"month":      month,
		"earned":     earned,
		"paid":       paid,
		"remaining":  earned - paid,
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var t models.Teacher
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if t.FirstName == "" || t.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Teacher name is required"})
	}
	if t.SharePercent < 0 || t.SharePercent > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Share percent must be between 0 and 100"})
	}

	if err := CreateTeacher(config.GetDB(), &t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	logAction(c, "create", t.ID, "Created teacher "+t.FirstName+" "+t.LastName)
	return c.Status(fiber.StatusCreated).JSON(t)
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var t models.Teacher
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if t.SharePercent < 0 || t.SharePercent > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Share percent must be between 0 and 100"})
	}

	t.ID = id
	if err := UpdateTeacher(config.GetDB(), &t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update teacher"})
	}
	return c.JSON(t)
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteTeacher(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}

	logAction(c, "delete", id, "Deactivated teacher")
	return c.SendStatus(fiber.StatusNoContent)
}

func GetTeacherPaymentsAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))

	list, err := GetTeacherPayments(config.GetDB(), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load teacher payments"})
	}
	return c.JSON(list)
}

func CreateTeacherPaymentAPI(c *fiber.Ctx) error {
	var p models.TeacherPayment
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

	if err := CreateTeacherPayment(config.GetDB(), &p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record teacher payment"})
	}

	logAction(c, "create", p.ID, "Recorded teacher payout")
	return c.Status(fiber.StatusCreated).JSON(p)
}

func CancelTeacherPaymentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := CancelTeacherPayment(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel teacher payment"})
	}

	logAction(c, "cancel", id, "Cancelled teacher payout")
	return c.JSON(fiber.Map{"message": "Teacher payment cancelled"})
}

func logAction(c *fiber.Ctx, action, entityID, details string) {
	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	database.LogActivity(config.GetDB(), &userID, userName, action, "teacher", &entityID, &details)
}
