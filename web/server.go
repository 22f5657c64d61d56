package web

import (
	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/web/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server serving the reports API
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		AppName: "epos-data-pipeline",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			config.GetLogger().Errorf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Setup routes
	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	config.GetLogger().Infof("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown stops the server, letting in-flight requests finish
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber application for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HealthCheck)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	// Analytics reports
	reports := app.Group("/api/reports")
	reports.Get("/daily", handlers.DailySalesReport)
	reports.Get("/locations", handlers.LocationPerformanceReport)
	reports.Get("/categories", handlers.CategoryAnalysisReport)
	reports.Get("/hourly", handlers.HourlySalesReport)
	reports.Get("/employees", handlers.EmployeePerformanceReport)
	reports.Get("/payments", handlers.PaymentMethodReport)
	reports.Get("/products", handlers.TopProductsReport)
	reports.Get("/refunds", handlers.RefundAnalysisReport)
	reports.Get("/monthly", handlers.MonthlyTrendReport)
}
