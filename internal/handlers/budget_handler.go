package handlers

import (
	"net/http"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget CRUD endpoints.
type BudgetHandler struct {
	service services.BudgetServicer
	audit   services.AuditServicer
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(service services.BudgetServicer, audit services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{service: service, audit: audit}
}

// budgetRequest is the create/update payload. Updates replace every stored
// field; an omitted start date falls back to today, an omitted end date
// clears any stored one.
type budgetRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Period     string  `json:"period" binding:"required,budget_period"`
	StartDate  string  `json:"start_date" binding:"omitempty"`
	EndDate    string  `json:"end_date" binding:"omitempty"`
	CategoryID uint    `json:"category_id" binding:"required"`
}

func (r *budgetRequest) toInput() (services.BudgetInput, error) {
	start := today()
	if r.StartDate != "" {
		parsed, err := parseFlexibleTime(r.StartDate)
		if err != nil {
			return services.BudgetInput{}, apperrors.WithDetail(apperrors.ErrValidation, "Invalid start_date format")
		}
		start = parsed
	}

	var end *time.Time
	if r.EndDate != "" {
		parsed, err := parseFlexibleTime(r.EndDate)
		if err != nil {
			return services.BudgetInput{}, apperrors.WithDetail(apperrors.ErrValidation, "Invalid end_date format")
		}
		end = &parsed
	}

	return services.BudgetInput{
		Amount:     r.Amount,
		Name:       r.Name,
		Period:     models.BudgetPeriod(r.Period),
		StartDate:  start,
		EndDate:    end,
		CategoryID: r.CategoryID,
	}, nil
}

// BudgetResponse is the wire representation of a budget.
type BudgetResponse struct {
	ID         uint    `json:"id"`
	UserID     uint    `json:"user_id"`
	Amount     float64 `json:"amount"`
	Name       string  `json:"name"`
	Period     string  `json:"period"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
	CategoryID uint    `json:"category_id"`
}

func toBudgetResponse(b *models.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		Amount:     b.Amount,
		Name:       b.Name,
		Period:     string(b.Period),
		StartDate:  formatDate(b.StartDate),
		CategoryID: b.CategoryID,
	}
	if b.EndDate != nil {
		end := formatDate(*b.EndDate)
		resp.EndDate = &end
	}
	return resp
}

// Create godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body budgetRequest true "Budget fields"
// @Success 200 {object} BudgetResponse
// @Router /api/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.service.Create(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "create", "budget", budget.ID, c.ClientIP())
	c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// List godoc
// @Summary List the caller's budgets
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} BudgetResponse
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
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

	budgets, err := h.service.List(userID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, toBudgetResponse(&budgets[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a budget by id
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 200 {object} BudgetResponse
// @Router /api/budgets/{id} [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.service.GetByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// Update godoc
// @Summary Replace a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Param request body budgetRequest true "Replacement fields"
// @Success 200 {object} BudgetResponse
// @Router /api/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.service.Update(userID, id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "update", "budget", budget.ID, c.ClientIP())
	c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// Delete godoc
// @Summary Delete a budget
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 200 {object} map[string]string
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
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

	h.audit.Record(userID, "delete", "budget", id, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
