package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finboard/internal/handlers"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/models"
	"finboard/internal/services"
	"finboard/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Transaction{},
		&models.UserSettings{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	transactionService := services.NewTransactionService(db)
	settingsService := services.NewSettingsService(db, "")
	dashboardService := services.NewDashboardService(transactionService, settingsService)
	auditService := services.NewAuditService(db)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)

	v1.GET("/summary", dashboardHandler.GetSummary)
	v1.GET("/analytics", dashboardHandler.GetAnalytics)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createTransaction records a transaction through the API and returns its ID.
func (app *testApp) createTransaction(t *testing.T, description, txType string, amount float64, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"description":%q,"amount":%g,"date":%q,"type":%q}`, description, amount, date, txType)
	rec := app.request("POST", "/api/v1/transactions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	return tx["id"].(string)
}

// updateSettings applies a partial settings update through the API.
func (app *testApp) updateSettings(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("PUT", "/api/v1/settings", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("update settings failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["settings"].(map[string]interface{})
}

// getSummary fetches the dashboard summary through the API.
func (app *testApp) getSummary(t *testing.T) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get summary failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["summary"].(map[string]interface{})
}
