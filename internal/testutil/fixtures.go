package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"finboard/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction of the given type, amount, and date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Amount:      amount,
		Date:        date,
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestTransactionWithDescription creates a transaction with a specific description.
func CreateTestTransactionWithDescription(t *testing.T, db *gorm.DB, description string, txType models.TransactionType, amount float64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: description,
		Amount:      amount,
		Date:        date,
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSettings creates the singleton settings record with the given targets.
func CreateTestSettings(t *testing.T, db *gorm.DB, totalBalance, monthlyIncome, monthlyExpenses float64) *models.UserSettings {
	t.Helper()

	settings := &models.UserSettings{
		UserID:          models.DefaultUserID,
		TotalBalance:    totalBalance,
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		Currency:        "USD",
	}
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}
