package services

import (
	"context"
	"time"

	"finboard/internal/metrics"
	"finboard/internal/models"
	"finboard/internal/pagination"
)

// TransactionDraft holds the fields a caller supplies when creating a
// transaction. The store assigns identity and timestamps.
type TransactionDraft struct {
	Description string
	Amount      float64
	Date        string // YYYY-MM-DD
	Type        models.TransactionType
}

// TransactionUpdate holds optional replacement fields for an existing
// transaction. Nil fields are left unchanged.
type TransactionUpdate struct {
	Description *string
	Amount      *float64
	Date        *string
	Type        *models.TransactionType
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Month    *string // YYYY-MM
	FromDate *string // YYYY-MM-DD inclusive
	ToDate   *string // YYYY-MM-DD inclusive
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	Create(draft TransactionDraft) (*models.Transaction, error)
	ListAll() ([]models.Transaction, error)
	List(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetByID(id string) (*models.Transaction, error)
	Update(id string, fields TransactionUpdate) (*models.Transaction, error)
	Delete(id string) error
}

// SettingsUpdate holds optional replacement fields for the settings record.
// Any subset of fields may be updated; nil fields are left unchanged.
type SettingsUpdate struct {
	TotalBalance    *float64
	MonthlyIncome   *float64
	MonthlyExpenses *float64
	Currency        *string
}

// SettingsServicer defines the contract for the singleton settings record.
type SettingsServicer interface {
	Get() (*models.UserSettings, error)
	Update(fields SettingsUpdate) (*models.UserSettings, error)
}

// DashboardSummary combines the aggregator's summary with the derived
// ratios the presentation layer renders next to it.
type DashboardSummary struct {
	metrics.Summary
	SavingsRate        float64 `json:"savingsRate"`
	BudgetUsage        float64 `json:"budgetUsage"`
	EmergencyFundRatio float64 `json:"emergencyFundRatio"`
	Currency           string  `json:"currency"`
	CurrencySymbol     string  `json:"currencySymbol"`
}

// AnalyticsReport holds the chart series and health figures for the
// analytics view.
type AnalyticsReport struct {
	HealthScore        int                      `json:"healthScore"`
	SavingsRate        float64                  `json:"savingsRate"`
	ExpenseRatio       float64                  `json:"expenseRatio"`
	EmergencyFundRatio float64                  `json:"emergencyFundRatio"`
	TransactionCount   int                      `json:"transactionCount"`
	Categories         []metrics.CategoryTotal  `json:"categories"`
	MonthlyTrend       []metrics.MonthlyFlow    `json:"monthlyTrend"`
	DailyFlow          []metrics.DailyFlowEntry `json:"dailyFlow"`
}

// DashboardServicer reloads the full transaction list plus settings and
// recomputes the derived figures. The reference instant is an explicit
// parameter so callers control what "current month" means.
type DashboardServicer interface {
	GetSummary(ctx context.Context, now time.Time) (*DashboardSummary, error)
	GetAnalytics(ctx context.Context, now time.Time) (*AnalyticsReport, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
