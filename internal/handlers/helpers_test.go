package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/services"
	"finboard/internal/validator"
)

// --- mock services ---

type mockTransactionService struct {
	createFn  func(draft services.TransactionDraft) (*models.Transaction, error)
	listAllFn func() ([]models.Transaction, error)
	listFn    func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getByIDFn func(id string) (*models.Transaction, error)
	updateFn  func(id string, fields services.TransactionUpdate) (*models.Transaction, error)
	deleteFn  func(id string) error
}

func (m *mockTransactionService) Create(draft services.TransactionDraft) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(draft)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListAll() ([]models.Transaction, error) {
	if m.listAllFn != nil {
		return m.listAllFn()
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) List(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetByID(id string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) Update(id string, fields services.TransactionUpdate) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockSettingsService struct {
	getFn    func() (*models.UserSettings, error)
	updateFn func(fields services.SettingsUpdate) (*models.UserSettings, error)
}

func (m *mockSettingsService) Get() (*models.UserSettings, error) {
	if m.getFn != nil {
		return m.getFn()
	}
	return &models.UserSettings{UserID: models.DefaultUserID, Currency: "USD"}, nil
}

func (m *mockSettingsService) Update(fields services.SettingsUpdate) (*models.UserSettings, error) {
	if m.updateFn != nil {
		return m.updateFn(fields)
	}
	return &models.UserSettings{UserID: models.DefaultUserID, Currency: "USD"}, nil
}

var _ services.SettingsServicer = (*mockSettingsService)(nil)

type mockDashboardService struct {
	getSummaryFn   func(ctx context.Context, now time.Time) (*services.DashboardSummary, error)
	getAnalyticsFn func(ctx context.Context, now time.Time) (*services.AnalyticsReport, error)
}

func (m *mockDashboardService) GetSummary(ctx context.Context, now time.Time) (*services.DashboardSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(ctx, now)
	}
	return &services.DashboardSummary{}, nil
}

func (m *mockDashboardService) GetAnalytics(ctx context.Context, now time.Time) (*services.AnalyticsReport, error) {
	if m.getAnalyticsFn != nil {
		return m.getAnalyticsFn(ctx, now)
	}
	return &services.AnalyticsReport{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

type mockAuditService struct{}

func (m *mockAuditService) Log(_, _, _, _ string, _ map[string]interface{}) {}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
