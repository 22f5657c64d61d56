package quality

import (
	"fmt"
	"math"

	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/Rishi4227/epos-data-pipeline/models"
)

// CheckResult is the outcome of one quality check
type CheckResult struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Violations int    `json:"violations"`
	Detail     string `json:"detail,omitempty"`
}

// Params carries the run constraints the checker verifies against
type Params struct {
	StartDate string
	EndDate   string
	OpenHour  int
	CloseHour int
}

// Checker runs a fixed battery of independent assertions over a materialized
// dataset. It only reads; findings are data, not errors.
type Checker struct {
	ds     *generator.Dataset
	params Params

	locationIDs map[string]bool
	employeeIDs map[string]bool
	productIDs  map[string]bool
}

// NewChecker indexes the master tables and prepares the check battery
func NewChecker(ds *generator.Dataset, params Params) *Checker {
	c := &Checker{
		ds:          ds,
		params:      params,
		locationIDs: make(map[string]bool, len(ds.Locations)),
		employeeIDs: make(map[string]bool, len(ds.Employees)),
		productIDs:  make(map[string]bool, len(ds.Products)),
	}

	for _, l := range ds.Locations {
		c.locationIDs[l.LocationID] = true
	}
	for _, e := range ds.Employees {
		c.employeeIDs[e.EmployeeID] = true
	}
	for _, p := range ds.Products {
		c.productIDs[p.ProductID] = true
	}

	return c
}

// RunAll executes every check and reports whether all of them passed.
// Checks are independent; one failing never short-circuits the rest.
func (c *Checker) RunAll() ([]CheckResult, bool) {
	results := []CheckResult{
		c.checkUniqueIDs(),
		c.checkNonNegativeAmounts(),
		c.checkBusinessHours(),
		c.checkReferentialIntegrity(),
		c.checkArithmetic(),
		c.checkStatusConsistency(),
		c.checkDateRange(),
	}

	allPassed := true
	for _, r := range results {
		if !r.Passed {
			allPassed = false
		}
	}

	return results, allPassed
}

func (c *Checker) checkUniqueIDs() CheckResult {
	seen := make(map[string]bool, len(c.ds.Transactions))
	duplicates := 0
	for _, t := range c.ds.Transactions {
		if seen[t.TransactionID] {
			duplicates++
			continue
		}
		seen[t.TransactionID] = true
	}

	return result("Unique transaction IDs", duplicates, "Found %d duplicate IDs")
}

func (c *Checker) checkNonNegativeAmounts() CheckResult {
	negative := 0
	for _, t := range c.ds.Transactions {
		if t.Subtotal < 0 || t.TaxTotal < 0 || t.DiscountTotal < 0 || t.TipAmount < 0 || t.TotalAmount < 0 {
			negative++
		}
	}

	return result("No negative amounts", negative, "Found %d negative amounts")
}

func (c *Checker) checkBusinessHours() CheckResult {
	outside := 0
	for _, t := range c.ds.Transactions {
		hour := t.Timestamp.Hour()
		if hour < c.params.OpenHour || hour > c.params.CloseHour {
			outside++
		}
	}

	return result("Valid business hours", outside, "Found %d outside hours")
}

func (c *Checker) checkReferentialIntegrity() CheckResult {
	invalid := 0
	for _, t := range c.ds.Transactions {
		if !c.locationIDs[t.LocationID] {
			invalid++
		}
		if !c.employeeIDs[t.EmployeeID] {
			invalid++
		}
		if !c.productIDs[t.ProductID] {
			invalid++
		}
	}

	return result("Referential integrity", invalid, "Found %d invalid references")
}

func (c *Checker) checkArithmetic() CheckResult {
	errors := 0
	for _, t := range c.ds.Transactions {
		expected := t.Subtotal + t.TaxTotal - t.DiscountTotal + t.TipAmount
		expected = math.Round(expected*100) / 100
		if math.Abs(t.TotalAmount-expected) > 0.01 {
			errors++
		}
	}

	return result("Transaction math accuracy", errors, "Found %d calculation errors")
}

func (c *Checker) checkStatusConsistency() CheckResult {
	// The mapping is re-stated here on purpose; the checker must not trust
	// the synthesizer's own implementation of it
	expected := map[string]string{
		string(models.StatusCompleted): string(models.PaymentCaptured),
		string(models.StatusRefunded):  string(models.PaymentRefunded),
		string(models.StatusError):     string(models.PaymentFailed),
		string(models.StatusVoided):    string(models.PaymentVoided),
	}

	inconsistent := 0
	for _, t := range c.ds.Transactions {
		want, ok := expected[t.TransactionStatus]
		if !ok || t.PaymentStatus != want {
			inconsistent++
		}
	}

	return result("Status consistency", inconsistent, "Found %d inconsistencies")
}

func (c *Checker) checkDateRange() CheckResult {
	outOfRange := 0
	for _, t := range c.ds.Transactions {
		// ISO dates compare lexicographically
		if t.TransactionDate < c.params.StartDate || t.TransactionDate > c.params.EndDate {
			outOfRange++
		}
	}

	return result("Valid date range", outOfRange, "Found %d out of range")
}

func result(name string, violations int, failFormat string) CheckResult {
	r := CheckResult{
		Name:       name,
		Passed:     violations == 0,
		Violations: violations,
	}
	if !r.Passed {
		r.Detail = fmt.Sprintf(failFormat, violations)
	}
	return r
}
