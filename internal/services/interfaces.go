// Package services contains the business logic layer. Every operation on
// user-owned resources takes the owner's user id and scopes all queries by
// it, so a caller can never observe or touch another user's rows.
package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// CategoryInput carries the full set of writable category fields. The same
// shape is used for create and update: updates replace every stored field.
type CategoryInput struct {
	Name  string
	Color string
}

// TransactionInput carries the full set of writable transaction fields.
type TransactionInput struct {
	Amount      float64
	Description string
	Date        time.Time
	Type        models.TransactionType
	CategoryID  *uint
	Currency    string
}

// BudgetInput carries the full set of writable budget fields.
type BudgetInput struct {
	Amount     float64
	Name       string
	Period     models.BudgetPeriod
	StartDate  time.Time
	EndDate    *time.Time
	CategoryID uint
}

// TransactionFilter narrows a transaction listing. All set fields are
// combined with AND; the date bounds are inclusive.
type TransactionFilter struct {
	CategoryID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
	Type       *models.TransactionType
}

// UserServicer defines the interface for user operations
type UserServicer interface {
	Register(email, password, firstName, lastName string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

// CategoryServicer defines the interface for category operations
type CategoryServicer interface {
	Create(userID uint, input CategoryInput) (*models.Category, error)
	GetByID(userID, id uint) (*models.Category, error)
	List(userID uint, params pagination.Params) ([]models.Category, error)
	Update(userID, id uint, input CategoryInput) (*models.Category, error)
	Delete(userID, id uint) error
}

// TransactionServicer defines the interface for transaction operations
type TransactionServicer interface {
	Create(userID uint, input TransactionInput) (*models.Transaction, error)
	GetByID(userID, id uint) (*models.Transaction, error)
	List(userID uint, filter TransactionFilter, params pagination.Params) ([]models.Transaction, error)
	Update(userID, id uint, input TransactionInput) (*models.Transaction, error)
	Delete(userID, id uint) error
}

// BudgetServicer defines the interface for budget operations
type BudgetServicer interface {
	Create(userID uint, input BudgetInput) (*models.Budget, error)
	GetByID(userID, id uint) (*models.Budget, error)
	List(userID uint, params pagination.Params) ([]models.Budget, error)
	Update(userID, id uint, input BudgetInput) (*models.Budget, error)
	Delete(userID, id uint) error
}

// AuditServicer defines the interface for audit log operations
type AuditServicer interface {
	Record(userID uint, action, resourceType string, resourceID uint, ipAddress string)
}
