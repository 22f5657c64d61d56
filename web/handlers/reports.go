package handlers

import (
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/Rishi4227/epos-data-pipeline/internal/reports"
	"github.com/gofiber/fiber/v2"
)

func reportService() *reports.Service {
	return reports.NewService(database.GetDB())
}

// listJSON wraps report rows in the standard list envelope
func listJSON(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(fiber.Map{
		"data":  data,
		"count": count,
	})
}

// DailySalesReport returns per-day sales aggregates
func DailySalesReport(c *fiber.Ctx) error {
	rows, err := reportService().DailySales()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// LocationPerformanceReport returns completed sales per location
func LocationPerformanceReport(c *fiber.Ctx) error {
	rows, err := reportService().LocationPerformance()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// CategoryAnalysisReport returns completed sales per product category
func CategoryAnalysisReport(c *fiber.Ctx) error {
	rows, err := reportService().CategoryAnalysis()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// HourlySalesReport returns completed sales per hour of day
func HourlySalesReport(c *fiber.Ctx) error {
	rows, err := reportService().HourlySalesPattern()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// EmployeePerformanceReport returns sales volume per employee
func EmployeePerformanceReport(c *fiber.Ctx) error {
	rows, err := reportService().EmployeePerformance()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// PaymentMethodReport returns the completed-sales payment method split
func PaymentMethodReport(c *fiber.Ctx) error {
	rows, err := reportService().PaymentMethodBreakdown()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// TopProductsReport returns the top products by completed revenue
func TopProductsReport(c *fiber.Ctx) error {
	rows, err := reportService().TopProducts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// RefundAnalysisReport returns refund volume per location
func RefundAnalysisReport(c *fiber.Ctx) error {
	rows, err := reportService().RefundAnalysis()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}

// MonthlyTrendReport returns completed revenue per calendar month
func MonthlyTrendReport(c *fiber.Ctx) error {
	rows, err := reportService().MonthlyTrend()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return listJSON(c, rows, len(rows))
}
