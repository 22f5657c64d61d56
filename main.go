package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/Rishi4227/epos-data-pipeline/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		port    = flag.String("port", "", "Port to listen on (overrides APP_PORT)")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	log := config.GetLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Check database connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Run migration if requested
	if *migrate {
		log.Info("Running database migration...")
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Info("Migration completed successfully")
	}

	listenPort := cfg.App.Port
	if *port != "" {
		listenPort = *port
	}

	// Create and start web server
	server := web.NewServer()

	// Start server in a goroutine
	go func() {
		if err := server.Start(listenPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	log.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}

func showHelp() {
	fmt.Print(`
EPOS Data Pipeline API Server

Usage:
  go run main.go [options]

Options:
  -migrate  Run database migration on startup
  -port     Port to listen on (overrides APP_PORT, default 8080)
  -help     Show this help message

Examples:
  # Start server only
  go run main.go

  # Start server with migration
  go run main.go -migrate

  # Start on a different port
  go run main.go -port 9090

For full migration control, use:
  go run cmd/migrate/main.go

To generate and load data, use:
  go run cmd/generate/main.go
  go run cmd/load/main.go

`)
}
