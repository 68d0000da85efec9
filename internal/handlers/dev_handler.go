package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	generator services.SampleGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(generator services.SampleGeneratorInterface) *DevHandler {
	return &DevHandler{generator: generator}
}

// GenerateSampleTransactions stores a batch of fake transactions
//
// Method: POST /api/v1/dev/sample-transactions
// Environment: Development only
//
// Request body:
//   - count: Number of transactions to generate (1 to 500)
//   - account_ids: Accounts to spread the transactions over
//   - category_ids: Categories to spread the transactions over
//   - start_date, end_date: Inclusive date range (YYYY-MM-DD)
//
// Success Response: 201 Created
//   - created: Number of transactions stored
//   - transactions: The stored transactions
//
// Error Responses:
//   - 400: Invalid request body
//   - 500: Internal server error, including unknown account or category IDs
func (h *DevHandler) GenerateSampleTransactions(c echo.Context) error {
	var req dto.GenerateSampleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	opts, err := req.ToOptions()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transactions, err := h.generator.Populate(c.Request().Context(), opts)
	if err != nil {
		if isSampleOptionsError(err) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GenerateSampleResponse{
		Created:      len(transactions),
		Transactions: dto.NewListTransactionsResponse(transactions).Transactions,
	})
}

func isSampleOptionsError(err error) bool {
	return stderrors.Is(err, services.ErrInvalidSampleCount) ||
		stderrors.Is(err, services.ErrNoSampleAccounts) ||
		stderrors.Is(err, services.ErrNoSampleCategories) ||
		stderrors.Is(err, models.ErrInvalidDateRange)
}
