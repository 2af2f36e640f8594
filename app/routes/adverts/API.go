package adverts

import (
	"time"

	"skill-snap/app/config"
	"skill-snap/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetAdvertsAPI(c *fiber.Ctx) error {
	list, err := GetAllAdverts(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load adverts",
			"details": err.Error(),
		})
	}
	return c.JSON(list)
}

func GetActiveAdvertsAPI(c *fiber.Ctx) error {
	list, err := GetActiveAdverts(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load adverts"})
	}
	return c.JSON(list)
}

func CreateAdvertAPI(c *fiber.Ctx) error {
	var a models.Advert
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if a.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Advert title is required"})
	}
	if a.StartsAt.IsZero() {
		a.StartsAt = time.Now()
	}
	if a.EndsAt != nil && !a.EndsAt.After(a.StartsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	if err := CreateAdvert(config.GetDB(), &a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create advert"})
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func UpdateAdvertAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var a models.Advert
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	a.ID = id
	if err := UpdateAdvert(config.GetDB(), &a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update advert"})
	}
	return c.JSON(a)
}

func DeleteAdvertAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteAdvert(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete advert"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
