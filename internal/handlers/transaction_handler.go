package handlers

import (
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"net/http"
	"strconv"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction stores a new transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction fields"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	fields, reqErr := bindTransactionRequest(c)
	if reqErr != nil {
		return reqErr.send(c)
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), fields)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction replaces every field of an existing transaction
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID or VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	fields, reqErr := bindTransactionRequest(c)
	if reqErr != nil {
		return reqErr.send(c)
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request().Context(), id, fields)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// GetTransaction returns one transaction
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Param include query string false "account,category (default) or none"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID or TRANSACTION_006 - Invalid include"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	var query dto.GetTransactionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.TransactionInvalidInclude, errors.WithDetails(validation.Details(err)...))
	}

	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), id, query.Preload())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// ListTransactions returns all transactions, optionally for a single account
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param account_id query int false "Only transactions of this account"
// @Param include query string false "account,category (default) or none"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_001 - Invalid account ID or TRANSACTION_006 - Invalid include"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.ListTransactionsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		details := validation.Details(err)
		if failedField(err, "account_id") {
			return SendError(c, errors.AccountInvalidID, errors.WithDetails(details...))
		}
		return SendError(c, errors.TransactionInvalidInclude, errors.WithDetails(details...))
	}

	filters, err := query.ToFilters()
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionService.GetTransactions(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions))
}

// GetTransactionsByCategory sums transaction amounts per category
// @Summary Category totals
// @Description Every category is returned; categories without transactions in range have a null amount
// @Tags Transactions
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD), requires end_date"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD), requires start_date"
// @Success 200 {object} dto.CategoryTotalsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date, TRANSACTION_004 - Incomplete range or TRANSACTION_005 - Invalid range"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/by-category [get]
func (h *TransactionHandler) GetTransactionsByCategory(c echo.Context) error {
	var params dto.CategoryTotalsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(validation.Details(err)...))
	}

	query, err := params.ToModel()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	totals, err := h.transactionService.GetTransactionsByCategory(c.Request().Context(), query)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryTotalsResponse(totals, query))
}

// DeleteTransaction removes a transaction. Deleting an unknown ID succeeds.
// @Summary Delete transaction
// @Tags Transactions
// @Param id path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// requestError is a rejected request body, not yet written
type requestError struct {
	code    errors.ErrorCode
	details []string
}

func (e *requestError) send(c echo.Context) error {
	return SendError(c, e.code, errors.WithDetails(e.details...))
}

// bindTransactionRequest decodes and validates a create or update body
func bindTransactionRequest(c echo.Context) (models.TransactionFields, *requestError) {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return models.TransactionFields{}, &requestError{code: errors.ValidationInvalidFormat, details: []string{"Invalid request body"}}
	}

	if err := c.Validate(&req); err != nil {
		code := errors.ValidationGeneral
		if failedField(err, "amount") {
			code = errors.TransactionInvalidAmount
		}
		return models.TransactionFields{}, &requestError{code: code, details: validation.Details(err)}
	}

	fields, err := req.ToFields()
	if err != nil {
		return models.TransactionFields{}, &requestError{code: errors.ValidationInvalidFormat, details: []string{err.Error()}}
	}

	return fields, nil
}

func parseTransactionID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// failedField reports whether a validation error names field
func failedField(err error, field string) bool {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return false
	}
	for _, fe := range validationErrs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}

// sendServiceError maps service errors to API error responses
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, models.ErrIncompleteDateRange):
		return SendError(c, errors.TransactionIncompleteDateRange)
	case stderrors.Is(err, models.ErrInvalidDateRange):
		return SendError(c, errors.TransactionInvalidDateRange)
	case stderrors.Is(err, sql.ErrConnDone), stderrors.Is(err, driver.ErrBadConn):
		return SendDatabaseError(c, err)
	default:
		return SendSystemError(c, err)
	}
}
