package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// Create validates a draft and stores it. Drafts are rejected before they
// reach the store: amounts must be strictly positive magnitudes (sign is
// implied by type, never stored), descriptions non-empty and at most 200
// characters, dates well-formed calendar dates.
func (s *transactionService) Create(draft TransactionDraft) (*models.Transaction, error) {
	if err := validateDescription(draft.Description); err != nil {
		return nil, err
	}
	if err := validateAmount(draft.Amount); err != nil {
		return nil, err
	}
	if err := validateDate(draft.Date); err != nil {
		return nil, err
	}
	if err := validateType(draft.Type); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Description: strings.TrimSpace(draft.Description),
		Amount:      draft.Amount,
		Date:        draft.Date,
		Type:        draft.Type,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// ListAll returns every transaction, newest date first. The aggregator
// always works from a full reload rather than incremental deltas.
func (s *transactionService) ListAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date DESC, created_at DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSourceUnavailable, err)
	}
	return transactions, nil
}

// List retrieves a paginated, filtered page of transactions for the history view.
func (s *transactionService) List(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSourceUnavailable, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSourceUnavailable, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	// Dates are YYYY-MM-DD strings, so lexicographic comparison is date order.
	if f.Month != nil {
		q = q.Where("date LIKE ?", *f.Month+"-%")
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	return q
}

// GetByID retrieves a transaction by ID.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Update replaces any provided subset of a transaction's fields in place.
// Replacement values go through the same validation as drafts.
func (s *transactionService) Update(id string, fields TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Description != nil {
		if err := validateDescription(*fields.Description); err != nil {
			return nil, err
		}
		updates["description"] = strings.TrimSpace(*fields.Description)
	}
	if fields.Amount != nil {
		if err := validateAmount(*fields.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *fields.Amount
	}
	if fields.Date != nil {
		if err := validateDate(*fields.Date); err != nil {
			return nil, err
		}
		updates["date"] = *fields.Date
	}
	if fields.Type != nil {
		if err := validateType(*fields.Type); err != nil {
			return nil, err
		}
		updates["type"] = *fields.Type
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// Delete permanently removes a transaction. There is no soft-delete or
// history retention.
func (s *transactionService) Delete(id string) error {
	transaction, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	// Characters, not bytes, matching the binding-layer max=200 rule.
	if utf8.RuneCountInString(trimmed) > 200 {
		return apperrors.WithMessage(apperrors.ErrValidation, "description cannot exceed 200 characters")
	}
	return nil
}

func validateAmount(amount float64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return apperrors.WithMessage(apperrors.ErrValidation, "date must be in YYYY-MM-DD format")
	}
	return nil
}

func validateType(transactionType models.TransactionType) error {
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return nil
	}
	return apperrors.ErrInvalidTransactionType
}
