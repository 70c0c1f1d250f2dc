package services

import (
	"errors"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"

	"gorm.io/gorm"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new transaction service
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Create stores a new transaction owned by userID. If a category is
// referenced it must belong to the same user.
func (s *TransactionService) Create(userID uint, input TransactionInput) (*models.Transaction, error) {
	if err := s.checkCategory(userID, input.CategoryID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Currency:    input.Currency,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetByID fetches a transaction by id, scoped to its owner.
func (s *TransactionService) GetByID(userID, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// List returns the owner's transactions, newest date first, with all set
// filter fields ANDed together and skip/limit applied after filtering.
func (s *TransactionService) List(userID uint, filter TransactionFilter, params pagination.Params) ([]models.Transaction, error) {
	query := s.db.Where("user_id = ?", userID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	var transactions []models.Transaction
	err := query.
		Order("date DESC, id DESC").
		Scopes(pagination.Paginate(params)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Update replaces every writable field of the transaction with the input.
// The id and owner are never touched.
func (s *TransactionService) Update(userID, id uint, input TransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(userID, input.CategoryID); err != nil {
		return nil, err
	}

	transaction.Amount = input.Amount
	transaction.Description = input.Description
	transaction.Date = input.Date
	transaction.Type = input.Type
	transaction.CategoryID = input.CategoryID
	transaction.Currency = input.Currency

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// Delete permanently removes the transaction.
func (s *TransactionService) Delete(userID, id uint) error {
	transaction, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// checkCategory verifies that a referenced category exists and belongs to
// the user. A nil category id is valid.
func (s *TransactionService) checkCategory(userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	var count int64
	err := s.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", *categoryID, userID).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
