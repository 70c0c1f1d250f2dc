package testutil

import (
	"fmt"
	"testing"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

var userCounter int

// CreateTestUser inserts a user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	userCounter++
	user := &models.User{
		Email:     fmt.Sprintf("user%d@example.com", userCounter),
		Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory inserts a category for the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  models.DefaultCategoryColor,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction inserts a transaction for the given user.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:   userID,
		Amount:   amount,
		Date:     date,
		Type:     models.TransactionTypeExpense,
		Currency: models.DefaultCurrency,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestBudget inserts a budget for the given user and category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:     userID,
		Amount:     amount,
		Name:       "Test Budget",
		Period:     models.BudgetPeriodMonthly,
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: categoryID,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
