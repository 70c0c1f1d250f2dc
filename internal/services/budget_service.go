package services

import (
	"errors"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"

	"gorm.io/gorm"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new budget service
func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// Create stores a new budget owned by userID. The referenced category must
// belong to the same user.
func (s *BudgetService) Create(userID uint, input BudgetInput) (*models.Budget, error) {
	if err := s.checkCategory(userID, input.CategoryID); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:     userID,
		Amount:     input.Amount,
		Name:       input.Name,
		Period:     input.Period,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetByID fetches a budget by id, scoped to its owner.
func (s *BudgetService) GetByID(userID, id uint) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// List returns the owner's budgets with skip/limit applied.
func (s *BudgetService) List(userID uint, params pagination.Params) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Scopes(pagination.Paginate(params)).
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// Update replaces every writable field of the budget with the input.
// The id and owner are never touched.
func (s *BudgetService) Update(userID, id uint, input BudgetInput) (*models.Budget, error) {
	budget, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(userID, input.CategoryID); err != nil {
		return nil, err
	}

	budget.Amount = input.Amount
	budget.Name = input.Name
	budget.Period = input.Period
	budget.StartDate = input.StartDate
	budget.EndDate = input.EndDate
	budget.CategoryID = input.CategoryID

	if err := s.db.Save(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// Delete permanently removes the budget.
func (s *BudgetService) Delete(userID, id uint) error {
	budget, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *BudgetService) checkCategory(userID, categoryID uint) error {
	var count int64
	err := s.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
