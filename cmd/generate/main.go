package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/internal/dataset"
	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
)

func main() {
	// Command line flags
	var (
		count      = flag.Int("count", 0, "Number of transactions to generate")
		locations  = flag.Int("locations", 0, "Number of locations")
		products   = flag.Int("products", 0, "Number of products")
		employees  = flag.Int("employees", 0, "Number of employees")
		seed       = flag.Int64("seed", 0, "Random seed")
		start      = flag.String("start", "", "Window start date (YYYY-MM-DD)")
		end        = flag.String("end", "", "Window end date (YYYY-MM-DD)")
		configPath = flag.String("config", "", "Optional YAML config file")
		output     = flag.String("output", "", "Output directory for the dataset")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	log := config.GetLogger()

	cfg, err := genconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Explicit flags win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Transactions = *count
		case "locations":
			cfg.Locations = *locations
		case "products":
			cfg.Products = *products
		case "employees":
			cfg.Employees = *employees
		case "seed":
			cfg.Seed = *seed
		case "start":
			cfg.StartDate = *start
		case "end":
			cfg.EndDate = *end
		case "output":
			cfg.OutputDir = *output
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	log.Info("Starting EPOS data generation...")

	gen, err := generator.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize generator: %v", err)
	}

	ds, err := gen.Generate()
	if err != nil {
		log.Fatalf("❌ Failed to generate transactions: %v", err)
	}

	store := dataset.NewStore(cfg.OutputDir)
	if err := store.Write(ds, dataset.NewManifest(cfg)); err != nil {
		log.Fatalf("❌ Failed to save dataset: %v", err)
	}
	log.Infof("All data saved to %s", store.Dir())

	printSummary(ds)

	log.Info("Data generation completed successfully!")
}

func printSummary(ds *generator.Dataset) {
	var (
		minDate, maxDate string
		completedRevenue float64
	)
	statusCounts := make(map[string]int)
	methodCounts := make(map[string]int)
	categoryRevenue := make(map[string]float64)
	locationNames := make(map[string]bool)

	for _, t := range ds.Transactions {
		if minDate == "" || t.TransactionDate < minDate {
			minDate = t.TransactionDate
		}
		if t.TransactionDate > maxDate {
			maxDate = t.TransactionDate
		}
		if t.TransactionStatus == "completed" {
			completedRevenue += t.TotalAmount
			categoryRevenue[t.ProductCategory] += t.TotalAmount
		}
		statusCounts[t.TransactionStatus]++
		methodCounts[t.PaymentMethod]++
		locationNames[t.LocationName] = true
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DATA GENERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total Transactions: %d\n", len(ds.Transactions))
	fmt.Printf("Date Range: %s to %s\n", minDate, maxDate)
	fmt.Printf("Total Revenue: £%.2f\n", completedRevenue)
	fmt.Printf("\nLocations: %d\n", len(locationNames))
	fmt.Printf("Products: %d\n", len(ds.Products))
	fmt.Printf("Employees: %d\n", len(ds.Employees))

	fmt.Println("\nTransaction Status Distribution:")
	printCountsDesc(statusCounts)

	fmt.Println("\nPayment Method Distribution:")
	printCountsDesc(methodCounts)

	fmt.Println("\nTop 5 Categories by Revenue:")
	printRevenueDesc(categoryRevenue, 5)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

func printCountsDesc(counts map[string]int) {
	type entry struct {
		value string
		count int
	}

	sorted := make([]entry, 0, len(counts))
	for value, count := range counts {
		sorted = append(sorted, entry{value, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].value < sorted[j].value
	})

	for _, e := range sorted {
		fmt.Printf("  %-20s %d\n", e.value, e.count)
	}
}

func printRevenueDesc(revenue map[string]float64, top int) {
	type entry struct {
		value  string
		amount float64
	}

	sorted := make([]entry, 0, len(revenue))
	for value, amount := range revenue {
		sorted = append(sorted, entry{value, amount})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].amount != sorted[j].amount {
			return sorted[i].amount > sorted[j].amount
		}
		return sorted[i].value < sorted[j].value
	})

	if len(sorted) > top {
		sorted = sorted[:top]
	}
	for _, e := range sorted {
		fmt.Printf("  %-20s £%.2f\n", e.value, e.amount)
	}
}

func showHelp() {
	fmt.Print(`
EPOS Transaction Data Generator

Usage:
  go run cmd/generate/main.go [options]

Options:
  -count n      Number of transactions to generate
  -locations n  Number of locations
  -products n   Number of products
  -employees n  Number of employees
  -seed n       Random seed (runs with the same seed and config are identical)
  -start date   Window start date (YYYY-MM-DD)
  -end date     Window end date (YYYY-MM-DD)
  -config file  YAML config file overriding the built-in defaults
  -output dir   Output directory for the CSV dataset and manifest
  -help         Show this help message

Examples:
  # Generate with defaults (100000 transactions, seed 42)
  go run cmd/generate/main.go

  # Small deterministic run into a scratch directory
  go run cmd/generate/main.go -count 1000 -seed 7 -output /tmp/epos

Environment:
  Scalar settings can also come from EPOS_-prefixed variables,
  e.g. EPOS_TRANSACTIONS=50000 EPOS_SEED=7

`)
}
