package rooms

import (
	"skill-snap/app/config"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetRoomsAPI(c *fiber.Ctx) error {
	list, err := GetAllRooms(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load rooms",
			"details": err.Error(),
		})
	}
	return c.JSON(list)
}

func CreateRoomAPI(c *fiber.Ctx) error {
	var r models.Room
	if err := c.BodyParser(&r); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if r.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Room name is required"})
	}
	if r.Status == "" {
		r.Status = StatusAvailable
	}

	if err := CreateRoom(config.GetDB(), &r); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create room"})
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func UpdateRoomAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var r models.Room
	if err := c.BodyParser(&r); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	r.ID = id
	if err := UpdateRoom(config.GetDB(), &r); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room"})
	}
	return c.JSON(r)
}

func DeleteRoomAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteRoom(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete room"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
