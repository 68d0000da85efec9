package services

import (
	"context"
	"time"

	"finance-tracker/internal/models"
)

// TransactionServiceInterface defines the transaction operations exposed to callers
type TransactionServiceInterface interface {
	// CreateTransaction inserts a new transaction and returns it with its assigned ID
	CreateTransaction(ctx context.Context, fields models.TransactionFields) (*models.Transaction, error)

	// UpdateTransaction replaces every field of an existing transaction
	UpdateTransaction(ctx context.Context, id uint, fields models.TransactionFields) (*models.Transaction, error)

	// GetTransaction returns one transaction with the requested relations attached
	GetTransaction(ctx context.Context, id uint, preload models.Preload) (*models.Transaction, error)

	// GetTransactions lists transactions, optionally restricted to one account
	GetTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)

	// GetTransactionsByCategory sums transaction amounts per category
	GetTransactionsByCategory(ctx context.Context, query models.CategoryTotalsQuery) ([]models.CategoryTotal, error)

	// DeleteTransaction removes a transaction by ID
	DeleteTransaction(ctx context.Context, id uint) error
}

// TransactionLoggerInterface provides structured logging of transaction events
type TransactionLoggerInterface interface {
	LogTransactionCreated(ctx context.Context, transaction *models.Transaction)
	LogTransactionUpdated(ctx context.Context, transaction *models.Transaction)
	LogTransactionDeleted(ctx context.Context, transactionID uint)
	LogCategoryTotalsComputed(ctx context.Context, query models.CategoryTotalsQuery, categories int, durationMs int64)
	LogOperationFailed(ctx context.Context, operation string, err error)
}

// MetricsRecorderInterface provides metrics recording capabilities
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleGeneratorInterface produces fake transactions for development databases
type SampleGeneratorInterface interface {
	GenerateFields(opts SampleOptions) ([]models.TransactionFields, error)
	Populate(ctx context.Context, opts SampleOptions) ([]models.Transaction, error)
}
