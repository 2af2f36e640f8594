package schools

import (
	"database/sql"

	"skill-snap/app/config"
	"skill-snap/app/database"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetSchoolsAPI(c *fiber.Ctx) error {
	schools, err := GetAllSchools(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load schools",
			"details": err.Error(),
		})
	}
	return c.JSON(schools)
}

func GetSchoolAPI(c *fiber.Ctx) error {
	school, err := GetSchoolByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "School not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load school"})
	}
	return c.JSON(school)
}

func CreateSchoolAPI(c *fiber.Ctx) error {
	var s models.School
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if s.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "School name is required"})
	}
	s.IsActive = true

	if err := CreateSchool(config.GetDB(), &s); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create school"})
	}

	logAction(c, "create", s.ID, "Created school "+s.Name)
	return c.Status(fiber.StatusCreated).JSON(s)
}

func UpdateSchoolAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var s models.School
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s.ID = id
	if err := UpdateSchool(config.GetDB(), &s); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update school"})
	}

	logAction(c, "update", s.ID, "Updated school "+s.Name)
	return c.JSON(s)
}

func DeleteSchoolAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteSchool(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete school"})
	}

	logAction(c, "delete", id, "Deactivated school")
	return c.SendStatus(fiber.StatusNoContent)
}

func logAction(c *fiber.Ctx, action, entityID, details string) {
	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	database.LogActivity(config.GetDB(), &userID, userName, action, "school", &entityID, &details)
}
