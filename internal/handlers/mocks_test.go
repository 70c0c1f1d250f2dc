package handlers

import (
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// Function-field mocks for the service interfaces. Tests set only the
// fields they exercise.

type mockUserService struct {
	registerFn     func(email, password, firstName, lastName string) (*models.User, error)
	authenticateFn func(email, password string) (*models.User, error)
	getByIDFn      func(id uint) (*models.User, error)
}

func (m *mockUserService) Register(email, password, firstName, lastName string) (*models.User, error) {
	return m.registerFn(email, password, firstName, lastName)
}

func (m *mockUserService) Authenticate(email, password string) (*models.User, error) {
	return m.authenticateFn(email, password)
}

func (m *mockUserService) GetByID(id uint) (*models.User, error) {
	return m.getByIDFn(id)
}

type mockCategoryService struct {
	createFn  func(userID uint, input services.CategoryInput) (*models.Category, error)
	getByIDFn func(userID, id uint) (*models.Category, error)
	listFn    func(userID uint, params pagination.Params) ([]models.Category, error)
	updateFn  func(userID, id uint, input services.CategoryInput) (*models.Category, error)
	deleteFn  func(userID, id uint) error
}

func (m *mockCategoryService) Create(userID uint, input services.CategoryInput) (*models.Category, error) {
	return m.createFn(userID, input)
}

func (m *mockCategoryService) GetByID(userID, id uint) (*models.Category, error) {
	return m.getByIDFn(userID, id)
}

func (m *mockCategoryService) List(userID uint, params pagination.Params) ([]models.Category, error) {
	return m.listFn(userID, params)
}

func (m *mockCategoryService) Update(userID, id uint, input services.CategoryInput) (*models.Category, error) {
	return m.updateFn(userID, id, input)
}

func (m *mockCategoryService) Delete(userID, id uint) error {
	return m.deleteFn(userID, id)
}

type mockTransactionService struct {
	createFn  func(userID uint, input services.TransactionInput) (*models.Transaction, error)
	getByIDFn func(userID, id uint) (*models.Transaction, error)
	listFn    func(userID uint, filter services.TransactionFilter, params pagination.Params) ([]models.Transaction, error)
	updateFn  func(userID, id uint, input services.TransactionInput) (*models.Transaction, error)
	deleteFn  func(userID, id uint) error
}

func (m *mockTransactionService) Create(userID uint, input services.TransactionInput) (*models.Transaction, error) {
	return m.createFn(userID, input)
}

func (m *mockTransactionService) GetByID(userID, id uint) (*models.Transaction, error) {
	return m.getByIDFn(userID, id)
}

func (m *mockTransactionService) List(userID uint, filter services.TransactionFilter, params pagination.Params) ([]models.Transaction, error) {
	return m.listFn(userID, filter, params)
}

func (m *mockTransactionService) Update(userID, id uint, input services.TransactionInput) (*models.Transaction, error) {
	return m.updateFn(userID, id, input)
}

func (m *mockTransactionService) Delete(userID, id uint) error {
	return m.deleteFn(userID, id)
}

type mockBudgetService struct {
	createFn  func(userID uint, input services.BudgetInput) (*models.Budget, error)
	getByIDFn func(userID, id uint) (*models.Budget, error)
	listFn    func(userID uint, params pagination.Params) ([]models.Budget, error)
	updateFn  func(userID, id uint, input services.BudgetInput) (*models.Budget, error)
	deleteFn  func(userID, id uint) error
}

func (m *mockBudgetService) Create(userID uint, input services.BudgetInput) (*models.Budget, error) {
	return m.createFn(userID, input)
}

func (m *mockBudgetService) GetByID(userID, id uint) (*models.Budget, error) {
	return m.getByIDFn(userID, id)
}

func (m *mockBudgetService) List(userID uint, params pagination.Params) ([]models.Budget, error) {
	return m.listFn(userID, params)
}

func (m *mockBudgetService) Update(userID, id uint, input services.BudgetInput) (*models.Budget, error) {
	return m.updateFn(userID, id, input)
}

func (m *mockBudgetService) Delete(userID, id uint) error {
	return m.deleteFn(userID, id)
}
