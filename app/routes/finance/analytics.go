package finance

import (
	"time"

	"skill-snap/app/config"
	"skill-snap/app/database"
	"skill-snap/app/models"
	"skill-snap/app/reports"
	"skill-snap/app/routes/schools"

	"github.com/gofiber/fiber/v2"
)

// GetMonthlyAnalyticsAPI returns the aggregated report payload as JSON for
// the dashboard charts.
func GetMonthlyAnalyticsAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month must be between 1 and 12"})
	}

	payload, err := database.GetReportPayload(config.GetDB(), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to build analytics",
			"details": err.Error(),
		})
	}
	return c.JSON(payload)
}

// ExportMonthlyReportAPI renders the monthly financial report and streams
// it as a download. PDF normally, printable HTML when PDF rendering fails.
func ExportMonthlyReportAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month must be between 1 and 12"})
	}

	payload, err := database.GetReportPayload(config.GetDB(), year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report data"})
	}

	result, err := reports.ExportMonthly(payload, reportMeta(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export report"})
	}

	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	database.LogActivity(config.GetDB(), &userID, userName, "export", "report", nil, &result.Filename)

	c.Set("Content-Type", result.ContentType)
	c.Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Data)
}

// reportMeta assembles the document header from the active school profile
// and the requesting user. A missing school profile degrades to a generic
// header rather than blocking the export.
func reportMeta(c *fiber.Ctx) models.SchoolMeta {
	now := time.Now()
	meta := models.SchoolMeta{
		Name:       "Skill Snap",
		ReportDate: now.Format("02/01/2006"),
		ReportTime: now.Format("15:04"),
	}

	if school, err := schools.GetActiveSchool(config.GetDB()); err == nil {
		meta.Name = school.Name
		if school.Address != nil {
			meta.Address = *school.Address
		}
		if school.Phone != nil {
			meta.Phone = *school.Phone
		}
		if school.Email != nil {
			meta.Email = *school.Email
		}
		if school.LogoURL != nil {
			meta.LogoURL = *school.LogoURL
		}
	}

	if user, ok := c.Locals("user").(*models.User); ok {
		meta.GeneratedBy = user.FirstName + " " + user.LastName
		if len(user.Roles) > 0 {
			meta.UserRole = user.Roles[0].Name
		}
	}
	return meta
}
