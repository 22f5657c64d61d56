package main

import (
	"flag"
	"fmt"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/Rishi4227/epos-data-pipeline/internal/dataset"
)

func main() {
	// Command line flags
	var (
		dataDir  = flag.String("data", "data/raw", "Dataset directory to load")
		batch    = flag.Int("batch", database.DefaultBatchSize, "Transaction insert batch size")
		skipTxns = flag.Bool("skip-txns", false, "Load master data only")
		help     = flag.Bool("help", false, "Show help")
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
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	fmt.Println("🚀 Starting EPOS Data Loader")
	fmt.Printf("📊 Database: %s (%s)\n", cfg.Database.DBName, cfg.Database.Type)
	fmt.Printf("📂 Dataset: %s\n", *dataDir)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("❌ Database connection check failed: %v", err)
	}

	// Make sure the schema exists before loading
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	loader := database.NewLoader(database.DB, dataset.NewStore(*dataDir), *batch)
	if err := loader.LoadAll(*skipTxns); err != nil {
		log.Fatalf("❌ ETL failed: %v", err)
	}
}

func showHelp() {
	fmt.Print(`
ETL Loader for generated EPOS datasets

Usage:
  go run cmd/load/main.go [options]

Options:
  -data dir   Dataset directory to load (default data/raw)
  -batch n    Transaction insert batch size (default 1000)
  -skip-txns  Load master data only, leave transactions untouched
  -help       Show this help message

Examples:
  # Load the default dataset into the configured database
  go run cmd/load/main.go

  # Reload masters only
  go run cmd/load/main.go -data /tmp/epos -skip-txns

Environment:
  Requires .env file or environment variables for database configuration
  (DB_TYPE, DB_SQLITE_PATH or DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME)

`)
}
