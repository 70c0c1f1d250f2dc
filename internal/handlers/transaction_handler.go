package handlers

import (
	"net/http"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction CRUD endpoints.
type TransactionHandler struct {
	service services.TransactionServicer
	audit   services.AuditServicer
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service services.TransactionServicer, audit services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{service: service, audit: audit}
}

// transactionRequest is the create/update payload. Updates replace every
// stored field; omitted optionals fall back to their create defaults
// (date to today, currency to INR, category to none).
type transactionRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"omitempty"`
	Type        string  `json:"type" binding:"required,transaction_type"`
	CategoryID  *uint   `json:"category_id"`
	Currency    string  `json:"currency" binding:"omitempty,iso4217"`
}

func (r *transactionRequest) toInput() (services.TransactionInput, error) {
	date := today()
	if r.Date != "" {
		parsed, err := parseFlexibleTime(r.Date)
		if err != nil {
			return services.TransactionInput{}, apperrors.WithDetail(apperrors.ErrValidation, "Invalid date format")
		}
		date = parsed
	}

	currency := r.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return services.TransactionInput{
		Amount:      r.Amount,
		Description: r.Description,
		Date:        date,
		Type:        models.TransactionType(r.Type),
		CategoryID:  r.CategoryID,
		Currency:    currency,
	}, nil
}

// transactionListQuery carries the list filters alongside pagination.
type transactionListQuery struct {
	pagination.Params
	CategoryID *uint  `form:"category_id" binding:"omitempty"`
	DateFrom   string `form:"date_from" binding:"omitempty"`
	DateTo     string `form:"date_to" binding:"omitempty"`
	Type       string `form:"type" binding:"omitempty,transaction_type"`
}

func (q *transactionListQuery) toFilter() (services.TransactionFilter, error) {
	filter := services.TransactionFilter{CategoryID: q.CategoryID}

	if q.DateFrom != "" {
		from, err := parseFlexibleTime(q.DateFrom)
		if err != nil {
			return filter, apperrors.WithDetail(apperrors.ErrValidation, "Invalid date_from format")
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := parseFlexibleTime(q.DateTo)
		if err != nil {
			return filter, apperrors.WithDetail(apperrors.ErrValidation, "Invalid date_to format")
		}
		filter.DateTo = &to
	}
	if q.Type != "" {
		typ := models.TransactionType(q.Type)
		filter.Type = &typ
	}
	return filter, nil
}

// TransactionResponse is the wire representation of a transaction.
type TransactionResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	CategoryID  *uint   `json:"category_id"`
	Currency    string  `json:"currency"`
}

func toTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        formatDate(tx.Date),
		Type:        string(tx.Type),
		CategoryID:  tx.CategoryID,
		Currency:    tx.Currency,
	}
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body transactionRequest true "Transaction fields"
// @Success 200 {object} TransactionResponse
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.service.Create(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "create", "transaction", transaction.ID, c.ClientIP())
	c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// List godoc
// @Summary List the caller's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Param category_id query int false "Filter by category"
// @Param date_from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param type query string false "Filter by type (income or expense)"
// @Success 200 {array} TransactionResponse
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var query transactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}
	query.Defaults()

	filter, err := query.toFilter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.service.List(userID, filter, query.Params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, toTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a transaction by id
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.service.GetByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// Update godoc
// @Summary Replace a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body transactionRequest true "Replacement fields"
// @Success 200 {object} TransactionResponse
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.service.Update(userID, id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Record(userID, "update", "transaction", transaction.ID, c.ClientIP())
	c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
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

	h.audit.Record(userID, "delete", "transaction", id, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
