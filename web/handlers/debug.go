package handlers

import (
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service and database status
func HealthCheck(c *fiber.Ctx) error {
	if err := database.CheckConnection(database.GetDB()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// GetSQLLogs returns SQL logs as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetRecentQueries(20)
	return c.JSON(queries)
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}
