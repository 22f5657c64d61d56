package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/Rishi4227/epos-data-pipeline/internal/reports"
)

func main() {
	// Command line flags
	var (
		name   = flag.String("report", "all", "Report to run ("+strings.Join(reports.Order, ", ")+" or all)")
		export = flag.String("export", "", "Export file (.csv or .xlsx); single report only")
		help   = flag.Bool("help", false, "Show help")
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

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	svc := reports.NewService(database.GetDB())

	if *name == "all" {
		if *export != "" {
			log.Fatal("❌ -export needs a single report, not all")
		}
		for _, n := range reports.Order {
			table, err := svc.Table(n)
			if err != nil {
				log.Fatalf("❌ Failed to run report %s: %v", n, err)
			}
			if err := table.Render(os.Stdout); err != nil {
				log.Fatalf("❌ Failed to render report %s: %v", n, err)
			}
			fmt.Println()
		}
		return
	}

	table, err := svc.Table(*name)
	if err != nil {
		log.Fatalf("❌ Failed to run report %s: %v", *name, err)
	}
	if err := table.Render(os.Stdout); err != nil {
		log.Fatalf("❌ Failed to render report: %v", err)
	}

	if *export != "" {
		if err := reports.Export(table, *export); err != nil {
			log.Fatalf("❌ Failed to export report: %v", err)
		}
		fmt.Printf("✅ Report saved to: %s\n", *export)
	}
}

func showHelp() {
	fmt.Println(`
Analytics CLI for loaded EPOS data

Usage:
  go run cmd/report/main.go [options]

Options:
  -report name  Report to run: ` + strings.Join(reports.Order, ", ") + `, or all
  -export file  Write the report to a .csv or .xlsx file (single report only)
  -help         Show this help message

Examples:
  # Print every report
  go run cmd/report/main.go

  # One report, exported to Excel
  go run cmd/report/main.go -report daily -export daily.xlsx

Environment:
  Requires .env file or environment variables for database configuration
`)
}
