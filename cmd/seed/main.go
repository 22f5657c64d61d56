package main

import (
	"flag"
	"fmt"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/Rishi4227/epos-data-pipeline/models"
)

func main() {
	// Define flags
	var (
		count     = flag.Int("count", 5000, "Number of transactions to seed")
		locations = flag.Int("locations", 4, "Number of locations")
		products  = flag.Int("products", 30, "Number of products")
		employees = flag.Int("employees", 12, "Number of employees")
		seed      = flag.Int64("seed", 42, "Random seed")
		force     = flag.Bool("force", false, "Seed even if transactions already exist")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	log := config.GetLogger()

	fmt.Println("🌱 Starting Database Seeding Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	fmt.Printf("📊 Database: %s (%s)\n\n", cfg.Database.DBName, cfg.Database.Type)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("❌ Database connection check failed: %v", err)
	}

	// Make sure the schema exists
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	// Check if data already exists
	if !*force {
		var existing int64
		database.DB.Model(&models.Transaction{}).Count(&existing)
		if existing > 0 {
			fmt.Println("Database already has data. Skipping seed. Use -force to reseed.")
			return
		}
	}

	// Generate a small deterministic dataset straight into the database
	gcfg := genconfig.Default()
	gcfg.Transactions = *count
	gcfg.Locations = *locations
	gcfg.Products = *products
	gcfg.Employees = *employees
	gcfg.Seed = *seed

	if err := gcfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	gen, err := generator.New(gcfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize generator: %v", err)
	}

	ds, err := gen.Generate()
	if err != nil {
		log.Fatalf("❌ Failed to generate transactions: %v", err)
	}

	loader := database.NewLoader(database.DB, nil, database.DefaultBatchSize)
	if err := loader.LoadDataset(ds, false); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	fmt.Println("\n✨ Seeding completed successfully!")
	fmt.Println("\n📝 Next Steps:")
	fmt.Println("1. Run the API server:")
	fmt.Println("   go run main.go")
	fmt.Println("\n2. Browse a report:")
	fmt.Println("   go run cmd/report/main.go -report daily")
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nSeeds the database with a small generated dataset, skipping the")
	fmt.Println("CSV intermediate step.")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/seed/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -count n      Number of transactions (default 5000)")
	fmt.Println("  -locations n  Number of locations (default 4)")
	fmt.Println("  -products n   Number of products (default 30)")
	fmt.Println("  -employees n  Number of employees (default 12)")
	fmt.Println("  -seed n       Random seed (default 42)")
	fmt.Println("  -force        Seed even if transactions already exist")
	fmt.Println("  -help         Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Seed empty database")
	fmt.Println("  go run cmd/seed/main.go")
	fmt.Println("\n  # Bigger run with a different seed")
	fmt.Println("  go run cmd/seed/main.go -count 20000 -seed 7 -force")
}
