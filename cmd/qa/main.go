package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/internal/dataset"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/Rishi4227/epos-data-pipeline/internal/quality"
)

func main() {
	// Command line flags
	var (
		dataDir = flag.String("data", "data/raw", "Dataset directory to check")
		summary = flag.Bool("summary", false, "Print verification statistics after the checks")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	log := config.GetLogger()

	store := dataset.NewStore(*dataDir)
	ds, manifest, err := store.Read()
	if err != nil {
		log.Fatalf("❌ Failed to read dataset: %v", err)
	}

	// The manifest carries the run's own constraints
	params := quality.Params{
		StartDate: manifest.StartDate,
		EndDate:   manifest.EndDate,
		OpenHour:  manifest.OpenHour,
		CloseHour: manifest.CloseHour,
	}

	results, allPassed := quality.NewChecker(ds, params).RunAll()

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DATA QUALITY TEST SUITE")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	passed, failed := 0, 0
	for _, r := range results {
		if r.Passed {
			fmt.Printf("✅ PASS: %s\n", r.Name)
			passed++
		} else {
			fmt.Printf("❌ FAIL: %s - %s\n", r.Name, r.Detail)
			failed++
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("RESULTS: %d passed, %d failed\n", passed, failed)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if *summary {
		printVerification(ds, store)
	}

	if allPassed {
		fmt.Println("✅ All quality checks passed!")
		return
	}

	fmt.Println("❌ Some quality checks failed!")
	os.Exit(1)
}

func printVerification(ds *generator.Dataset, store *dataset.Store) {
	transactions := ds.Transactions

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DATA VERIFICATION REPORT")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n✅ Transactions: %d rows\n", len(transactions))
	fmt.Printf("✅ Locations: %d rows\n", len(ds.Locations))
	fmt.Printf("✅ Products: %d rows\n", len(ds.Products))
	fmt.Printf("✅ Employees: %d rows\n", len(ds.Employees))

	fmt.Println("\n⏰ Transactions by hour:")
	hourly := make(map[int]int)
	for _, t := range transactions {
		hourly[t.Timestamp.Hour()]++
	}
	hours := make([]int, 0, len(hourly))
	for h := range hourly {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	for _, h := range hours {
		fmt.Printf("  %02d: %d\n", h, hourly[h])
	}

	fmt.Println("\n📍 Transactions by location:")
	locationCounts := make(map[string]int)
	for _, t := range transactions {
		locationCounts[t.LocationName]++
	}
	for _, e := range sortedDesc(locationCounts) {
		fmt.Printf("  %-24s %d\n", e.value, e.count)
	}

	fmt.Println("\n💰 Revenue by transaction status:")
	statusRevenue := make(map[string]float64)
	statusCounts := make(map[string]int)
	for _, t := range transactions {
		statusRevenue[t.TransactionStatus] += t.TotalAmount
		statusCounts[t.TransactionStatus]++
	}
	statuses := make([]string, 0, len(statusRevenue))
	for s := range statusRevenue {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		mean := statusRevenue[s] / float64(statusCounts[s])
		fmt.Printf("  %-12s £%12.2f  %6d  £%8.2f\n", s, statusRevenue[s], statusCounts[s], mean)
	}

	fmt.Println("\n🔄 Refund analysis:")
	refundCount := statusCounts["refunded"]
	fmt.Printf("Total refunds: %d\n", refundCount)
	fmt.Printf("Refund amount: £%.2f\n", statusRevenue["refunded"])
	if refundCount > 0 {
		fmt.Printf("Average refund: £%.2f\n", statusRevenue["refunded"]/float64(refundCount))
	}

	fmt.Println("\n❌ Error analysis:")
	errorCount := statusCounts["error"]
	fmt.Printf("Total errors: %d\n", errorCount)
	if len(transactions) > 0 {
		fmt.Printf("Error rate: %.2f%%\n", float64(errorCount)/float64(len(transactions))*100)
	}

	fmt.Println("\n💳 Payment method breakdown:")
	methodCounts := make(map[string]int)
	for _, t := range transactions {
		methodCounts[t.PaymentMethod]++
	}
	for _, e := range sortedDesc(methodCounts) {
		pct := float64(e.count) / float64(len(transactions)) * 100
		fmt.Printf("%-20s: %6d (%5.2f%%)\n", e.value, e.count, pct)
	}

	fmt.Println("\n📅 Date coverage:")
	minDate, maxDate := "", ""
	days := make(map[string]bool)
	for _, t := range transactions {
		if minDate == "" || t.TransactionDate < minDate {
			minDate = t.TransactionDate
		}
		if t.TransactionDate > maxDate {
			maxDate = t.TransactionDate
		}
		days[t.TransactionDate] = true
	}
	fmt.Printf("Start: %s\n", minDate)
	fmt.Printf("End: %s\n", maxDate)
	fmt.Printf("Days covered: %d\n", len(days))

	fmt.Println("\n💾 File sizes:")
	if info, err := os.Stat(filepath.Join(store.Dir(), dataset.TransactionsFile)); err == nil {
		fmt.Printf("CSV: %.2f MB\n", float64(info.Size())/(1024*1024))
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("✅ DATA VERIFICATION COMPLETE")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

type countEntry struct {
	value string
	count int
}

func sortedDesc(counts map[string]int) []countEntry {
	sorted := make([]countEntry, 0, len(counts))
	for value, count := range counts {
		sorted = append(sorted, countEntry{value, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].value < sorted[j].value
	})
	return sorted
}

func showHelp() {
	fmt.Print(`
Data Quality Checker for generated EPOS datasets

Usage:
  go run cmd/qa/main.go [options]

Options:
  -data dir   Dataset directory to check (default data/raw)
  -summary    Print a verification report after the checks
  -help       Show this help message

Exit status:
  0 when every check passes, 1 otherwise

Examples:
  go run cmd/qa/main.go -data data/raw
  go run cmd/qa/main.go -data /tmp/epos -summary

`)
}
