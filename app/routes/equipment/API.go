package equipment

import (
	"skill-snap/app/config"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetEquipmentAPI(c *fiber.Ctx) error {
	list, err := GetAllEquipment(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load equipment",
			"details": err.Error(),
		})
	}
	return c.JSON(list)
}

func CreateEquipmentAPI(c *fiber.Ctx) error {
	var e models.Equipment
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if e.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Equipment name is required"})
	}
	if e.Quantity <= 0 {
		e.Quantity = 1
	}
	if e.Condition == "" {
		e.Condition = "good"
	}

	if err := CreateEquipment(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create equipment"})
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func UpdateEquipmentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var e models.Equipment
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	e.ID = id
	if err := UpdateEquipment(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update equipment"})
	}
	return c.JSON(e)
}

func DeleteEquipmentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteEquipment(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete equipment"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
