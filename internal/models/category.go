package models

// DefaultCategoryColor is assigned when a category is created or replaced
// without an explicit color.
const DefaultCategoryColor = "#6c5ce7"

// Category represents a transaction category
type Category struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null;index" json:"name"`
	Color  string `gorm:"not null;default:'#6c5ce7'" json:"color"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}
