package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultCurrency is assigned when a transaction is created or replaced
// without an explicit currency.
const DefaultCurrency = "INR"

// Transaction represents a financial transaction in the system
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Type        TransactionType `gorm:"not null" json:"type"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	Currency    string          `gorm:"not null;default:'INR'" json:"currency"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
