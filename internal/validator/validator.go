// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finboard/internal/metrics"
	"finboard/internal/models"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("txdate", validateTxDate)
		_ = v.RegisterValidation("currency", validateCurrency)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return true
	}
	return false
}

// validateTxDate accepts calendar dates in YYYY-MM-DD form. The regex keeps
// out RFC3339 timestamps that time.Parse would otherwise reject with a less
// helpful error.
func validateTxDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return metrics.IsSupportedCurrency(fl.Field().String())
}
