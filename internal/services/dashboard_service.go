package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "finboard/internal/errors"
	"finboard/internal/metrics"
	"finboard/internal/models"
)

// Trailing windows the analytics charts cover.
const (
	trendMonths   = 6
	dailyFlowDays = 30
)

// dashboardService reloads the full transaction list plus settings after
// every mutation cycle and recomputes the derived figures. It holds no
// aggregation state between calls.
type dashboardService struct {
	transactions TransactionServicer
	settings     SettingsServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(transactions TransactionServicer, settings SettingsServicer) DashboardServicer {
	return &dashboardService{transactions: transactions, settings: settings}
}

// load fetches transactions and settings concurrently. If either store is
// unreachable the computation is not attempted.
func (s *dashboardService) load(ctx context.Context) ([]models.Transaction, *models.UserSettings, error) {
	var (
		transactions []models.Transaction
		settings     *models.UserSettings
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactions.ListAll()
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settings.Get()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrSourceUnavailable, err)
	}
	return transactions, settings, nil
}

// GetSummary computes the dashboard summary and its companion ratios.
func (s *dashboardService) GetSummary(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	transactions, settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	summary := metrics.ComputeSummary(transactions, *settings, now)
	return &DashboardSummary{
		Summary:            summary,
		SavingsRate:        metrics.SavingsRate(summary.MonthlyIncomeTarget, summary.MonthlyExpenseTarget),
		BudgetUsage:        metrics.BudgetUsage(summary.MonthlyExpenseActual, summary.MonthlyExpenseTarget),
		EmergencyFundRatio: metrics.EmergencyFundRatio(summary.TotalBalance, summary.MonthlyExpenseTarget),
		Currency:           settings.Currency,
		CurrencySymbol:     metrics.CurrencySymbol(settings.Currency),
	}, nil
}

// GetAnalytics computes the chart series and health figures for the
// analytics view.
func (s *dashboardService) GetAnalytics(ctx context.Context, now time.Time) (*AnalyticsReport, error) {
	transactions, settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	summary := metrics.ComputeSummary(transactions, *settings, now)
	return &AnalyticsReport{
		HealthScore:        metrics.HealthScore(summary.TotalBalance, summary.MonthlyExpenseTarget),
		SavingsRate:        metrics.SavingsRate(summary.MonthlyIncomeTarget, summary.MonthlyExpenseTarget),
		ExpenseRatio:       metrics.ExpenseRatio(summary.MonthlyExpenseTarget, summary.MonthlyIncomeTarget),
		EmergencyFundRatio: metrics.EmergencyFundRatio(summary.TotalBalance, summary.MonthlyExpenseTarget),
		TransactionCount:   len(transactions),
		Categories:         metrics.CategoryBreakdown(transactions),
		MonthlyTrend:       metrics.MonthlyTrend(transactions, now, trendMonths),
		DailyFlow:          metrics.DailyFlow(transactions, dailyFlowDays),
	}, nil
}
