package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dataset_explorer/internal/analytics"
	"dataset_explorer/internal/dataset"
)

func fixtureRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	day := func(s string, hour int) time.Time {
		ts, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		require.NoError(t, err)
		return ts.Add(time.Duration(hour) * time.Hour)
	}
	txs := []dataset.Transaction{
		{TransactionID: 1, Timestamp: day("2024-03-01", 9), CustomerID: 111, Category: "Books", Region: "Midwest", Status: "Completed", PaymentMethod: "PayPal", City: "Chicago", Total: 10.50},
		{TransactionID: 2, Timestamp: day("2024-03-01", 23), CustomerID: 222, Category: "Books", Region: "Northeast", Status: "Pending", PaymentMethod: "PayPal", City: "New York", Total: 20.00},
		{TransactionID: 3, Timestamp: day("2024-03-02", 0), CustomerID: 111, Category: "Electronics", Region: "Midwest", Status: "Completed", PaymentMethod: "Gift Card", City: "Chicago", Total: 99.99},
		{TransactionID: 4, Timestamp: day("2024-03-04", 12), CustomerID: 333, Category: "Grocery", Region: "Southwest", Status: "Refunded", PaymentMethod: "PayPal", City: "Phoenix", Total: 5.25},
	}

	manifest := dataset.NewManifest(len(txs), 42)
	router := gin.New()
	InitRoutes(router, dataset.NewMemoryStorage(txs), &manifest, zaptest.NewLogger(t))
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	w := doGet(t, fixtureRouter(t), "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestGetSummary(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/api/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var summary analytics.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 4, summary.Transactions)
	assert.Equal(t, "135.74", summary.Revenue.String())
	assert.Equal(t, 3, summary.UniqueCustomers)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetSummary_Filtered(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/api/summary?start=2024-03-01&end=2024-03-02&categories=Books,Electronics")
	require.Equal(t, http.StatusOK, w.Code)

	var summary analytics.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Transactions)
	assert.Equal(t, "130.49", summary.Revenue.String())
}

func TestGetSummary_BadRequests(t *testing.T) {
	router := fixtureRouter(t)

	for _, path := range []string{
		"/api/summary?start=03/01/2024",
		"/api/summary?start=2024-03-05&end=2024-03-01",
		"/api/summary?categories=NotACategory",
		"/api/summary?statuses=Lost",
	} {
		w := doGet(t, router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), "error", "path %s", path)
	}
}

func TestGetDailyRevenue(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/api/daily-revenue?start=2024-03-01&end=2024-03-02")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Days []analytics.DayRevenue `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2024-03-01", resp.Days[0].Date)
	assert.Equal(t, "30.5", resp.Days[0].Revenue.String())
	assert.Equal(t, "2024-03-02", resp.Days[1].Date)
	assert.Equal(t, "99.99", resp.Days[1].Revenue.String())
}

func TestGetTransactions_LimitIsHonored(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/api/transactions?limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transactions []dataset.Transaction `json:"transactions"`
		Count        int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, int64(1), resp.Transactions[0].TransactionID)

	w = doGet(t, router, "/api/transactions?limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInfo(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/api/info")
	require.Equal(t, http.StatusOK, w.Code)

	var info struct {
		Rows     int              `json:"rows"`
		Columns  []string         `json:"columns"`
		Manifest dataset.Manifest `json:"manifest"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, 4, info.Rows)
	assert.Equal(t, dataset.Columns, info.Columns)
	assert.NotEmpty(t, info.Manifest.DatasetID)
}

func TestGetStatusesAndPayments(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/api/statuses")
	require.Equal(t, http.StatusOK, w.Code)
	var statuses struct {
		Statuses []analytics.StatusBreakdown `json:"statuses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statuses))
	require.Len(t, statuses.Statuses, 3)
	assert.Equal(t, "Completed", statuses.Statuses[0].Status)
	assert.InDelta(t, 50.0, statuses.Statuses[0].Percent, 0.001)

	w = doGet(t, router, "/api/payments")
	require.Equal(t, http.StatusOK, w.Code)
	var payments struct {
		Payments []analytics.PaymentSummary `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments.Payments, 2)
	assert.Equal(t, "Gift Card", payments.Payments[0].PaymentMethod, "highest revenue method first")
}

func TestDashboardPage(t *testing.T) {
	router := fixtureRouter(t)

	w := doGet(t, router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Dataset Explorer")
	assert.Contains(t, body, "Electronics")
	// Date pickers span the loaded rows, not the generator's window.
	assert.Contains(t, body, `value="2024-03-01"`)
	assert.Contains(t, body, `value="2024-03-04"`)
	assert.NotContains(t, body, "2025-12-31")
	// Every statistics table from the API has a home on the page.
	assert.Contains(t, body, "Payment Method Breakdown")
	assert.Contains(t, body, "Top 10 Days by Revenue")
	assert.Contains(t, body, "/api/payments")
	assert.Contains(t, body, "/api/top-days")
}
