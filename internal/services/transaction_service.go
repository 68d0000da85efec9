package services

import (
	"context"
	"errors"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

// Operation names used for metrics and failure logs
const (
	OperationCreate     = "create"
	OperationUpdate     = "update"
	OperationGet        = "get"
	OperationList       = "list"
	OperationByCategory = "by_category"
	OperationDelete     = "delete"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          TransactionLoggerInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a transaction service over the given repository
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger TransactionLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, fields models.TransactionFields) (*models.Transaction, error) {
	start := time.Now()

	transaction, err := s.transactionRepo.Insert(ctx, fields)
	s.observe(ctx, OperationCreate, start, err)
	if err != nil {
		return nil, err
	}

	s.logger.LogTransactionCreated(ctx, transaction)
	return transaction, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id uint, fields models.TransactionFields) (*models.Transaction, error) {
	start := time.Now()

	transaction, err := s.transactionRepo.UpdateByID(ctx, id, fields)
	s.observe(ctx, OperationUpdate, start, err)
	if err != nil {
		return nil, err
	}

	s.logger.LogTransactionUpdated(ctx, transaction)
	return transaction, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id uint, preload models.Preload) (*models.Transaction, error) {
	start := time.Now()

	transaction, err := s.transactionRepo.GetByID(ctx, id, preload)
	s.observe(ctx, OperationGet, start, err)
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	start := time.Now()

	transactions, err := s.transactionRepo.List(ctx, filters)
	s.observe(ctx, OperationList, start, err)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// GetTransactionsByCategory validates the date range before querying, so a
// half-open range never reaches the store.
func (s *transactionService) GetTransactionsByCategory(ctx context.Context, query models.CategoryTotalsQuery) ([]models.CategoryTotal, error) {
	if err := query.Validate(); err != nil {
		s.metrics.IncrementCounter(MetricTransactionOperation, map[string]string{
			"operation": OperationByCategory,
			"status":    "invalid",
		})
		return nil, err
	}

	start := time.Now()

	totals, err := s.transactionRepo.SumByCategory(ctx, query)
	s.observe(ctx, OperationByCategory, start, err)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordGauge(MetricCategoryTotalsRows, float64(len(totals)), nil)
	s.logger.LogCategoryTotalsComputed(ctx, query, len(totals), time.Since(start).Milliseconds())
	return totals, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id uint) error {
	start := time.Now()

	err := s.transactionRepo.DeleteByID(ctx, id)
	s.observe(ctx, OperationDelete, start, err)
	if err != nil {
		return err
	}

	s.logger.LogTransactionDeleted(ctx, id)
	return nil
}

// observe records the outcome of one repository call. Store errors are
// logged here; callers return them unchanged.
func (s *transactionService) observe(ctx context.Context, operation string, start time.Time, err error) {
	s.metrics.RecordProcessingTime(operation, time.Since(start))

	status := "success"
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		status = "not_found"
	case err != nil:
		status = "failed"
		s.logger.LogOperationFailed(ctx, operation, err)
	}

	s.metrics.IncrementCounter(MetricTransactionOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}
