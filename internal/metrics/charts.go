package metrics

import (
	"sort"
	"strings"
	"time"

	"finboard/internal/models"
)

// CategoryTotal is one slice of the expense-category chart.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// categoryRule maps description keywords to a display category. Order
// matters: the first matching rule wins.
type categoryRule struct {
	name     string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Housing", []string{"rent", "mortgage"}},
	{"Food", []string{"grocery", "food", "restaurant"}},
	{"Transportation", []string{"gas", "transport", "uber"}},
	{"Utilities", []string{"utility", "electric", "water"}},
	{"Shopping", []string{"shopping", "clothes", "amazon"}},
	{"Entertainment", []string{"entertainment", "movie", "game"}},
}

// CategoryBreakdown groups expense transactions into display categories by
// case-insensitive keyword matching on the description. This is a placeholder
// heuristic, not a classification engine: anything unmatched lands in "Other".
// Results are sorted by value descending, then name, for stable output.
func CategoryBreakdown(transactions []models.Transaction) []CategoryTotal {
	totals := make(map[string]float64)

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		totals[categorize(t.Description)] += t.Amount
	}

	result := make([]CategoryTotal, 0, len(totals))
	for name, value := range totals {
		result = append(result, CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func categorize(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.name
			}
		}
	}
	return "Other"
}

// MonthlyFlow is one month's income and expense totals in a trend series.
type MonthlyFlow struct {
	Month    string  `json:"month"` // short month name, e.g. "Jan"
	Year     int     `json:"year"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// MonthlyTrend sums income and expenses per calendar month for the trailing
// `months` months ending at now's month, oldest first. Transactions with
// unparseable dates are skipped.
func MonthlyTrend(transactions []models.Transaction, now time.Time, months int) []MonthlyFlow {
	if months <= 0 {
		return []MonthlyFlow{}
	}

	trend := make([]MonthlyFlow, months)
	index := make(map[string]int, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		index[m.Format("2006-01")] = i
		trend[i] = MonthlyFlow{Month: m.Format("Jan"), Year: m.Year()}
	}

	for _, t := range transactions {
		date, err := time.Parse(models.DateLayout, t.Date)
		if err != nil {
			continue
		}
		i, ok := index[date.Format("2006-01")]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			trend[i].Income += t.Amount
		case models.TransactionTypeExpense:
			trend[i].Expenses += t.Amount
		}
	}
	return trend
}

// DailyFlowEntry is one day's cash flow in the daily chart.
type DailyFlowEntry struct {
	Date     string  `json:"date"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// DailyFlow buckets transactions by calendar date, computing income,
// expenses, and net per day. It returns the most recent `days` days that
// have activity, sorted ascending by date. Unparseable dates are skipped.
func DailyFlow(transactions []models.Transaction, days int) []DailyFlowEntry {
	buckets := make(map[string]*DailyFlowEntry)

	for _, t := range transactions {
		if _, err := time.Parse(models.DateLayout, t.Date); err != nil {
			continue
		}
		entry, ok := buckets[t.Date]
		if !ok {
			entry = &DailyFlowEntry{Date: t.Date}
			buckets[t.Date] = entry
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			entry.Income += t.Amount
		case models.TransactionTypeExpense:
			entry.Expenses += t.Amount
		}
		entry.Net = entry.Income - entry.Expenses
	}

	flow := make([]DailyFlowEntry, 0, len(buckets))
	for _, entry := range buckets {
		flow = append(flow, *entry)
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Slice(flow, func(i, j int) bool { return flow[i].Date < flow[j].Date })

	if days > 0 && len(flow) > days {
		flow = flow[len(flow)-days:]
	}
	return flow
}
