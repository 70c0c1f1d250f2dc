package services

import (
	"errors"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"

	"gorm.io/gorm"
)

// CategoryService handles category business logic.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create stores a new category owned by userID.
func (s *CategoryService) Create(userID uint, input CategoryInput) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   input.Name,
		Color:  input.Color,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetByID fetches a category by id, scoped to its owner.
func (s *CategoryService) GetByID(userID, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// List returns the owner's categories with skip/limit applied.
func (s *CategoryService) List(userID uint, params pagination.Params) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Scopes(pagination.Paginate(params)).
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// Update replaces every writable field of the category with the input.
// The id and owner are never touched.
func (s *CategoryService) Update(userID, id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Color = input.Color

	if err := s.db.Save(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// Delete permanently removes the category.
func (s *CategoryService) Delete(userID, id uint) error {
	category, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
