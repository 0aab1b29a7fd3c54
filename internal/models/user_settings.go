package models

import "time"

// DefaultUserID keys the singleton settings record in this single-user system.
const DefaultUserID = "default_user"

// UserSettings holds the user-configured targets shown across the dashboard:
// the starting balance the total-balance fold begins from, the monthly income
// target, and the monthly expense budget. Exactly one record exists; it is
// created lazily with zero values on first read and never deleted.
type UserSettings struct {
	UserID          string    `gorm:"primaryKey;size:64" json:"userId"`
	TotalBalance    float64   `gorm:"not null;default:0" json:"totalBalance"`
	MonthlyIncome   float64   `gorm:"not null;default:0" json:"monthlyIncome"`
	MonthlyExpenses float64   `gorm:"not null;default:0" json:"monthlyExpenses"`
	Currency        string    `gorm:"size:3;not null;default:'USD'" json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
