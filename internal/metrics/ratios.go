package metrics

import "math"

// SavingsRate returns the percentage of the monthly income target left after
// the monthly expense budget. Defined as 0 when the income target is not
// positive to avoid division by zero.
func SavingsRate(incomeTarget, expenseTarget float64) float64 {
	if incomeTarget <= 0 {
		return 0
	}
	return (incomeTarget - expenseTarget) / incomeTarget * 100
}

// ExpenseRatio returns the monthly expense budget as a percentage of the
// monthly income target. Defined as 0 when the income target is not positive.
func ExpenseRatio(expenseTarget, incomeTarget float64) float64 {
	if incomeTarget <= 0 {
		return 0
	}
	return expenseTarget / incomeTarget * 100
}

// BudgetUsage returns the current month's actual spend as a percentage of
// the monthly expense budget. Defined as 0 when the budget is not positive.
func BudgetUsage(expenseActual, expenseBudget float64) float64 {
	if expenseBudget <= 0 {
		return 0
	}
	return expenseActual / expenseBudget * 100
}

// EmergencyFundRatio returns the total balance expressed in months of runway
// at the configured expense budget. Defined as 0 when the budget is not
// positive.
func EmergencyFundRatio(totalBalance, expenseBudget float64) float64 {
	if expenseBudget <= 0 {
		return 0
	}
	return totalBalance / expenseBudget
}

// HealthScore condenses balance-to-expenses coverage into a 0-100 score:
// 20 points per month of expenses the balance covers, clamped to the range.
// A budget of zero counts as one unit so a positive balance still scores.
func HealthScore(totalBalance, expenseBudget float64) int {
	divisor := math.Max(expenseBudget, 1)
	score := math.Round(totalBalance / divisor * 20)
	return int(math.Min(100, math.Max(0, score)))
}
