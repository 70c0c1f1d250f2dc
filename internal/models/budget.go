package models

import "time"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a budget plan for a category
type Budget struct {
	Base
	UserID     uint         `gorm:"not null;index" json:"user_id"`
	Amount     float64      `gorm:"not null" json:"amount"`
	Name       string       `gorm:"not null" json:"name"`
	Period     BudgetPeriod `gorm:"not null" json:"period"`
	StartDate  time.Time    `gorm:"not null" json:"start_date"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
	CategoryID uint         `gorm:"not null" json:"category_id"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
