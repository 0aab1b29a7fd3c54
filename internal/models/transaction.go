package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DateLayout is the calendar-date format transactions are stored in.
// Dates carry no time component.
const DateLayout = "2006-01-02"

// Transaction represents a single dated income or expense record.
//
// Amount is always a positive magnitude; directionality comes from Type
// at aggregation time and is never encoded by negating the stored value.
// JSON field names are part of the API contract consumed by the dashboard.
type Transaction struct {
	Base
	Description string          `gorm:"size:200;not null" json:"description"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Date        string          `gorm:"size:10;not null;index" json:"date"`
	Type        TransactionType `gorm:"size:10;not null;index" json:"type"`
}
