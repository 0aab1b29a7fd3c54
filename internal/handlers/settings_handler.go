package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// SettingsHandler handles requests for the singleton settings record.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// GetSettings handles the retrieval of the settings record
// @Summary     Get settings
// @Description Get the user's configured targets. A zeroed default is created on first read.
// @Tags        settings
// @Accept      json
// @Produce     json
// @Success     200 {object} models.UserSettings "Settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettingsRequest represents the request payload for updating settings.
// Any subset of the fields may be provided. The starting balance may be
// negative; the monthly targets may not.
type UpdateSettingsRequest struct {
	TotalBalance    *float64 `json:"totalBalance"`
	MonthlyIncome   *float64 `json:"monthlyIncome" binding:"omitempty,gte=0"`
	MonthlyExpenses *float64 `json:"monthlyExpenses" binding:"omitempty,gte=0"`
	Currency        *string  `json:"currency" binding:"omitempty,currency"`
}

// UpdateSettings handles partial updates of the settings record
// @Summary     Update settings
// @Description Upsert any subset of the user's configured targets
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body UpdateSettingsRequest true "Fields to update"
// @Success     200 {object} models.UserSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	settings, err := h.settingsService.Update(services.SettingsUpdate{
		TotalBalance:    req.TotalBalance,
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		Currency:        req.Currency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_SETTINGS", "settings", settings.UserID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
