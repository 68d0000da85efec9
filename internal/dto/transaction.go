package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = time.DateOnly

// TransactionRequest is the body of create and update requests. Updates
// replace every field, so all of them are sent both times.
type TransactionRequest struct {
	TxnDate    string `json:"txn_date" validate:"required,datetime=2006-01-02"`
	Payee      string `json:"payee" validate:"max=255"`
	Memo       string `json:"memo"`
	Amount     string `json:"amount" validate:"required,money"`
	AccountID  uint   `json:"account_id" validate:"required,gt=0"`
	CategoryID uint   `json:"category_id" validate:"required,gt=0"`
}

// ToFields converts a validated request into service input
func (r TransactionRequest) ToFields() (models.TransactionFields, error) {
	txnDate, err := time.Parse(DateLayout, r.TxnDate)
	if err != nil {
		return models.TransactionFields{}, fmt.Errorf("invalid txn_date: %w", err)
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.TransactionFields{}, fmt.Errorf("invalid amount: %w", err)
	}

	return models.TransactionFields{
		TxnDate:    txnDate,
		Payee:      r.Payee,
		Memo:       r.Memo,
		Amount:     amount,
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
	}, nil
}

// GetTransactionQuery holds the query parameters of a single-transaction read
type GetTransactionQuery struct {
	Include string `query:"include" validate:"include"`
}

// Preload translates the include parameter
func (q GetTransactionQuery) Preload() models.Preload {
	return ParseInclude(q.Include)
}

// ListTransactionsQuery holds the query parameters of a transaction listing
type ListTransactionsQuery struct {
	AccountID string `query:"account_id" validate:"omitempty,number"`
	Include   string `query:"include" validate:"include"`
}

// ToFilters converts a validated query into repository filters
func (q ListTransactionsQuery) ToFilters() (models.TransactionFilters, error) {
	filters := models.TransactionFilters{Preload: ParseInclude(q.Include)}

	if q.AccountID != "" {
		id, err := strconv.ParseUint(q.AccountID, 10, 0)
		if err != nil {
			return models.TransactionFilters{}, fmt.Errorf("invalid account_id: %w", err)
		}
		accountID := uint(id)
		filters.AccountID = &accountID
	}

	return filters, nil
}

// CategoryTotalsQuery holds the optional inclusive date range of the
// per-category aggregation.
type CategoryTotalsQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ToModel converts a validated query. Range completeness is checked by the
// service.
func (q CategoryTotalsQuery) ToModel() (models.CategoryTotalsQuery, error) {
	var query models.CategoryTotalsQuery

	if q.StartDate != "" {
		start, err := time.Parse(DateLayout, q.StartDate)
		if err != nil {
			return query, fmt.Errorf("invalid start_date: %w", err)
		}
		query.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := time.Parse(DateLayout, q.EndDate)
		if err != nil {
			return query, fmt.Errorf("invalid end_date: %w", err)
		}
		query.EndDate = &end
	}

	return query, nil
}

// ParseInclude maps the include parameter to relation loading. An empty
// value loads both relations.
func ParseInclude(include string) models.Preload {
	include = strings.TrimSpace(include)
	switch include {
	case "":
		return models.PreloadAll
	case "none":
		return models.PreloadNone
	}

	var preload models.Preload
	for _, part := range strings.Split(include, ",") {
		switch strings.TrimSpace(part) {
		case "account":
			preload.Account = true
		case "category":
			preload.Category = true
		}
	}
	return preload
}

// ReferenceResponse is an embedded account or category
type ReferenceResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TransactionResponse is the API representation of a transaction
type TransactionResponse struct {
	ID         uint               `json:"id"`
	TxnDate    string             `json:"txn_date"`
	Payee      string             `json:"payee"`
	Memo       string             `json:"memo"`
	Amount     string             `json:"amount"`
	AccountID  uint               `json:"account_id"`
	CategoryID uint               `json:"category_id"`
	Account    *ReferenceResponse `json:"account,omitempty"`
	Category   *ReferenceResponse `json:"category,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewTransactionResponse converts a model into its API representation
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:         t.ID,
		TxnDate:    t.TxnDate.Format(DateLayout),
		Payee:      t.Payee,
		Memo:       t.Memo,
		Amount:     t.Amount.StringFixed(2),
		AccountID:  t.AccountID,
		CategoryID: t.CategoryID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}

	if t.Account != nil {
		response.Account = &ReferenceResponse{ID: t.Account.ID, Name: t.Account.Name}
	}
	if t.Category != nil {
		response.Category = &ReferenceResponse{ID: t.Category.ID, Name: t.Category.Name}
	}

	return response
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// NewListTransactionsResponse converts a list of models
func NewListTransactionsResponse(transactions []models.Transaction) ListTransactionsResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}
	return ListTransactionsResponse{Transactions: items, Count: len(items)}
}

// CategoryTotalResponse is one category of the aggregation. Amount is null
// when the category has no transactions in range.
type CategoryTotalResponse struct {
	CategoryID uint    `json:"category_id"`
	Name       string  `json:"name"`
	Amount     *string `json:"amount"`
}

// CategoryTotalsResponse represents the response of the per-category aggregation
type CategoryTotalsResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
	StartDate  string                  `json:"start_date,omitempty"`
	EndDate    string                  `json:"end_date,omitempty"`
}

// NewCategoryTotalsResponse converts aggregation rows and echoes the range
func NewCategoryTotalsResponse(totals []models.CategoryTotal, query models.CategoryTotalsQuery) CategoryTotalsResponse {
	items := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		item := CategoryTotalResponse{CategoryID: total.CategoryID, Name: total.Name}
		if total.Amount.Valid {
			amount := total.Amount.Decimal.StringFixed(2)
			item.Amount = &amount
		}
		items = append(items, item)
	}

	response := CategoryTotalsResponse{Categories: items}
	if query.HasRange() {
		start, end := query.Bounds()
		response.StartDate = start.Format(DateLayout)
		response.EndDate = end.Format(DateLayout)
	}
	return response
}
