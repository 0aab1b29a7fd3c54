// Package metrics computes the derived figures shown across the dashboard
// from the raw transaction list and the user-configured settings. Everything
// in this package is a pure function over in-memory data: no I/O, no clock
// access, no shared state. The reference instant is always an explicit
// parameter so "current month" is testable.
package metrics

import (
	"time"

	"finboard/internal/models"
)

// Summary is the recomputed-on-demand set of aggregate figures. Actuals are
// sums over real transactions in the current calendar month; targets come
// straight from settings and are never overridden by actuals.
type Summary struct {
	TotalBalance         float64 `json:"totalBalance"`
	MonthlyIncomeActual  float64 `json:"monthlyIncomeActual"`
	MonthlyExpenseActual float64 `json:"monthlyExpenseActual"`
	MonthlyIncomeTarget  float64 `json:"monthlyIncomeTarget"`
	MonthlyExpenseTarget float64 `json:"monthlyExpenseTarget"`
}

// ComputeSummary derives the dashboard summary from the full transaction
// list, the settings record, and the reference instant.
//
// The total balance folds over all transactions regardless of date, starting
// from the configured starting balance: income adds, expense subtracts.
// Monthly actuals are restricted to transactions whose date falls in now's
// calendar month and year.
//
// A transaction with an unparseable date still contributes to the total
// balance (its type is known) but is skipped by the monthly sums. One bad
// record must not blank the whole dashboard.
func ComputeSummary(transactions []models.Transaction, settings models.UserSettings, now time.Time) Summary {
	var incomeTotal, expenseTotal float64
	var monthlyIncome, monthlyExpense float64

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			incomeTotal += t.Amount
		case models.TransactionTypeExpense:
			expenseTotal += t.Amount
		default:
			continue
		}

		date, err := time.Parse(models.DateLayout, t.Date)
		if err != nil || !sameMonth(date, now) {
			continue
		}
		if t.Type == models.TransactionTypeIncome {
			monthlyIncome += t.Amount
		} else {
			monthlyExpense += t.Amount
		}
	}

	return Summary{
		TotalBalance:         settings.TotalBalance + incomeTotal - expenseTotal,
		MonthlyIncomeActual:  monthlyIncome,
		MonthlyExpenseActual: monthlyExpense,
		MonthlyIncomeTarget:  settings.MonthlyIncome,
		MonthlyExpenseTarget: settings.MonthlyExpenses,
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
