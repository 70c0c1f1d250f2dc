package handlers

import (
	"net/http"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category CRUD endpoints.
type CategoryHandler struct {
	service services.CategoryServicer
	audit   services.AuditServicer
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service services.CategoryServicer, audit services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{service: service, audit: audit}
}

// categoryRequest is the create/update payload. Updates use the same shape:
// every stored field is replaced, and an omitted color falls back to the
// default just as it does on create.
type categoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hex_color"`
}

func (r *categoryRequest) toInput() services.CategoryInput {
	color := r.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}
	return services.CategoryInput{Name: r.Name, Color: color}
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

func toCategoryResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:     cat.ID,
		UserID: cat.UserID,
		Name:   cat.Name,
		Color:  cat.Color,
	}
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body categoryRequest true "Category fields"
// @Success 200 {object} CategoryResponse
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	category, err := h.service.Create(userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "create", "category", category.ID, c.ClientIP())
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// List godoc
// @Summary List the caller's categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} CategoryResponse
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}
	params.Defaults()

	categories, err := h.service.List(userID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.service.GetByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Update godoc
// @Summary Replace a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body categoryRequest true "Replacement fields"
// @Success 200 {object} CategoryResponse
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	category, err := h.service.Update(userID, id, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "update", "category", category.ID, c.ClientIP())
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.service.Delete(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "delete", "category", id, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
