package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rishi4227/epos-data-pipeline/config"
	"github.com/Rishi4227/epos-data-pipeline/database"
	"github.com/Rishi4227/epos-data-pipeline/models"
	"github.com/Rishi4227/epos-data-pipeline/web"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupServer wires the fiber app to a fresh sqlite database holding one
// completed sale and one refund
func setupServer(t *testing.T, queryLog bool) *fiber.App {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "web_test.db"),
	}
	require.NoError(t, database.InitializeWithOptions(cfg, !queryLog))
	t.Cleanup(func() { database.Close() })

	db := database.GetDB()
	require.NoError(t, database.AutoMigrate(db))
	seedWebData(t, db)

	return web.NewServer().App()
}

func seedWebData(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Location{
		LocationID: "LOC-001", OrganizationID: "ORG-001", LocationName: "Downtown Taproom",
		LocationType: "bar", City: "Manchester", Timezone: "Europe/London", Status: "active",
	}).Error)
	require.NoError(t, db.Create(&models.Employee{
		EmployeeID: "EMP-0001", FirstName: "Oliver", LastName: "Taylor",
		Role: "cashier", LocationID: "LOC-001", Status: "active",
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		ProductID: "PRD-00001", ProductName: "Blackwater IPA", ProductCategory: "Beer",
		SKU: "SKU-00001", BasePrice: 4.50, CostPrice: 1.20, TaxRate: 0.20, IsTaxable: true, Status: "active",
	}).Error)

	transactions := []models.Transaction{
		{
			TransactionID: "TXN-00000001", TransactionNumber: "#100001",
			Timestamp:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			TransactionDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			TransactionTime: "12:00:00",
			LocationID:      "LOC-001", EmployeeID: "EMP-0001",
			Subtotal: 25.50, TotalAmount: 25.50, NumItems: 1,
			TransactionStatus: models.StatusCompleted, PaymentStatus: models.PaymentCaptured,
			PaymentMethod: models.MethodCreditCard,
		},
		{
			TransactionID: "TXN-00000002", TransactionNumber: "#100002",
			Timestamp:       time.Date(2024, 5, 2, 19, 0, 0, 0, time.UTC),
			TransactionDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			TransactionTime: "19:00:00",
			LocationID:      "LOC-001", EmployeeID: "EMP-0001",
			Subtotal: 10.00, TotalAmount: 10.00, NumItems: 1,
			TransactionStatus: models.StatusRefunded, PaymentStatus: models.PaymentRefunded,
			PaymentMethod: models.MethodDebitCard,
		},
	}
	require.NoError(t, db.Create(&transactions).Error)
}

func TestHealthEndpoint(t *testing.T) {
	app := setupServer(t, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestReportEndpointsReturnListEnvelope(t *testing.T) {
	app := setupServer(t, false)

	paths := []string{
		"/api/reports/daily",
		"/api/reports/locations",
		"/api/reports/categories",
		"/api/reports/hourly",
		"/api/reports/employees",
		"/api/reports/payments",
		"/api/reports/products",
		"/api/reports/refunds",
		"/api/reports/monthly",
	}

	for _, path := range paths {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json", path)

		var envelope struct {
			Data  []map[string]interface{} `json:"data"`
			Count int                      `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope), path)
		resp.Body.Close()

		assert.Equal(t, len(envelope.Data), envelope.Count, path)
		assert.GreaterOrEqual(t, envelope.Count, 1, "seeded database must produce rows for %s", path)
	}
}

func TestDailyReportReflectsSeededSales(t *testing.T) {
	app := setupServer(t, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/daily", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []struct {
			TransactionDate  string  `json:"transaction_date"`
			TransactionCount int64   `json:"transaction_count"`
			TotalRevenue     float64 `json:"total_revenue"`
			RefundedAmount   float64 `json:"refunded_amount"`
		} `json:"data"`
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	require.Equal(t, 2, envelope.Count)
	assert.Equal(t, "2024-05-01", envelope.Data[0].TransactionDate)
	assert.InDelta(t, 25.50, envelope.Data[0].TotalRevenue, 0.001)
	assert.Equal(t, "2024-05-02", envelope.Data[1].TransactionDate)
	assert.InDelta(t, 10.00, envelope.Data[1].RefundedAmount, 0.001)
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	app := setupServer(t, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "Cannot GET")
}

func TestSQLDebugEndpoints(t *testing.T) {
	app := setupServer(t, true)
	database.SQLLogger.Clear()

	// A report request must leave a trace in the query log
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/daily", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/debug/sql", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []database.QueryLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	resp.Body.Close()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].SQL, "transactions")

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/debug/sql", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/debug/sql", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	logs = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	resp.Body.Close()
	assert.Empty(t, logs)
}
