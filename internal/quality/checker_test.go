package quality_test

import (
	"testing"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/internal/genconfig"
	"github.com/Rishi4227/epos-data-pipeline/internal/generator"
	"github.com/Rishi4227/epos-data-pipeline/internal/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkNames = []string{
	"Unique transaction IDs",
	"No negative amounts",
	"Valid business hours",
	"Referential integrity",
	"Transaction math accuracy",
	"Status consistency",
	"Valid date range",
}

func testParams() quality.Params {
	return quality.Params{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		OpenHour:  10,
		CloseHour: 23,
	}
}

// consistentDataset builds a small dataset that satisfies every check,
// covering all four status pairs
func consistentDataset() *generator.Dataset {
	mk := func(id, number string, day, hour int, status, payment string) generator.Transaction {
		stamp := time.Date(2024, 3, day, hour, 15, 0, 0, time.UTC)
		return generator.Transaction{
			TransactionID:     id,
			TransactionNumber: number,
			Timestamp:         stamp,
			TransactionDate:   stamp.Format("2006-01-02"),
			TransactionTime:   stamp.Format("15:04:05"),
			LocationID:        "LOC-001",
			EmployeeID:        "EMP-0001",
			ProductID:         "PRD-00001",
			NumItems:          2,
			Quantity:          2,
			UnitPrice:         5.00,
			Subtotal:          10.00,
			TaxTotal:          2.00,
			TotalAmount:       12.00,
			PaymentMethod:     "cash",
			PaymentStatus:     payment,
			TransactionStatus: status,
		}
	}

	return &generator.Dataset{
		Locations: []generator.Location{
			{LocationID: "LOC-001", LocationName: "Downtown Taproom", LocationType: "bar", City: "Manchester"},
		},
		Products: []generator.Product{
			{ProductID: "PRD-00001", ProductName: "Lager", ProductCategory: "Beer", BasePrice: 5.00},
		},
		Employees: []generator.Employee{
			{EmployeeID: "EMP-0001", FirstName: "Oliver", LastName: "Taylor", Role: "cashier", LocationID: "LOC-001"},
		},
		Transactions: []generator.Transaction{
			mk("TXN-00000001", "#100001", 5, 12, "completed", "captured"),
			mk("TXN-00000002", "#100002", 6, 18, "refunded", "refunded"),
			mk("TXN-00000003", "#100003", 7, 22, "voided", "voided"),
			mk("TXN-00000004", "#100004", 8, 10, "error", "failed"),
		},
	}
}

func TestAllChecksPassOnConsistentData(t *testing.T) {
	checker := quality.NewChecker(consistentDataset(), testParams())
	results, allPassed := checker.RunAll()

	require.True(t, allPassed)
	require.Len(t, results, len(checkNames))

	for i, r := range results {
		assert.Equal(t, checkNames[i], r.Name)
		assert.True(t, r.Passed, "%s failed: %s", r.Name, r.Detail)
		assert.Zero(t, r.Violations)
		assert.Empty(t, r.Detail)
	}
}

func TestEachCheckCatchesItsViolation(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(ds *generator.Dataset)
		check      string
		violations int
	}{
		{
			name: "duplicate transaction id",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[1].TransactionID = ds.Transactions[0].TransactionID
			},
			check:      "Unique transaction IDs",
			violations: 1,
		},
		{
			name: "negative discount",
			mutate: func(ds *generator.Dataset) {
				// Keep the arithmetic consistent so only the sign check fires
				ds.Transactions[0].DiscountTotal = -1.00
				ds.Transactions[0].TotalAmount = 13.00
			},
			check:      "No negative amounts",
			violations: 1,
		},
		{
			name: "negative amounts on two records",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[0].DiscountTotal = -1.00
				ds.Transactions[0].TotalAmount = 13.00
				ds.Transactions[1].TipAmount = -2.00
				ds.Transactions[1].TotalAmount = 10.00
			},
			check:      "No negative amounts",
			violations: 2,
		},
		{
			name: "sale before opening",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[0].Timestamp = time.Date(2024, 3, 5, 8, 15, 0, 0, time.UTC)
			},
			check:      "Valid business hours",
			violations: 1,
		},
		{
			name: "unknown location reference",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[2].LocationID = "LOC-999"
			},
			check:      "Referential integrity",
			violations: 1,
		},
		{
			name: "total does not match parts",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[3].TotalAmount += 5.00
			},
			check:      "Transaction math accuracy",
			violations: 1,
		},
		{
			name: "captured payment on a refund",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[1].PaymentStatus = "captured"
			},
			check:      "Status consistency",
			violations: 1,
		},
		{
			name: "unknown transaction status",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[2].TransactionStatus = "pending"
			},
			check:      "Status consistency",
			violations: 1,
		},
		{
			name: "date outside the window",
			mutate: func(ds *generator.Dataset) {
				ds.Transactions[3].TransactionDate = "2024-04-02"
			},
			check:      "Valid date range",
			violations: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := consistentDataset()
			tc.mutate(ds)

			results, allPassed := quality.NewChecker(ds, testParams()).RunAll()
			require.False(t, allPassed)
			require.Len(t, results, len(checkNames))

			for _, r := range results {
				if r.Name == tc.check {
					assert.False(t, r.Passed)
					assert.Equal(t, tc.violations, r.Violations)
					assert.NotEmpty(t, r.Detail)
					continue
				}
				// One bad field must not bleed into unrelated checks
				assert.True(t, r.Passed, "%s unexpectedly failed: %s", r.Name, r.Detail)
			}
		})
	}
}

func TestGeneratedDataPassesAllChecks(t *testing.T) {
	cfg := genconfig.Default()
	cfg.Transactions = 1000
	cfg.Locations = 2
	cfg.Products = 10
	cfg.Employees = 3
	cfg.Seed = 42

	g, err := generator.New(cfg)
	require.NoError(t, err)
	ds, err := g.Generate()
	require.NoError(t, err)

	checker := quality.NewChecker(ds, quality.Params{
		StartDate: cfg.StartDate,
		EndDate:   cfg.EndDate,
		OpenHour:  cfg.OpenHour,
		CloseHour: cfg.CloseHour,
	})

	results, allPassed := checker.RunAll()
	require.Len(t, results, len(checkNames))
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Detail)
	}
	assert.True(t, allPassed)
}
