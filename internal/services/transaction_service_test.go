package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	service         services.TransactionServiceInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	logger          *service_mocks.MockTransactionLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.logger = service_mocks.NewMockTransactionLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.service = services.NewTransactionService(s.transactionRepo, s.logger, s.metrics)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) expectOutcome(operation, status string) {
	s.metrics.EXPECT().RecordProcessingTime(operation, gomock.Any()).Times(1)
	s.metrics.EXPECT().IncrementCounter(services.MetricTransactionOperation, map[string]string{
		"operation": operation,
		"status":    status,
	}).Times(1)
}

func (s *TransactionServiceTestSuite) newFields() models.TransactionFields {
	return models.TransactionFields{
		TxnDate:    time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Payee:      gofakeit.Company(),
		Memo:       gofakeit.Sentence(5),
		Amount:     decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2).Neg(),
		AccountID:  1,
		CategoryID: 2,
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	fields := s.newFields()
	stored := fields.NewTransaction()
	stored.ID = 17

	s.transactionRepo.EXPECT().Insert(s.ctx, fields).Return(stored, nil).Times(1)
	s.expectOutcome(services.OperationCreate, "success")
	s.logger.EXPECT().LogTransactionCreated(s.ctx, stored).Times(1)

	transaction, err := s.service.CreateTransaction(s.ctx, fields)

	s.NoError(err)
	s.Equal(uint(17), transaction.ID)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_StoreErrorIsReturnedUnchanged() {
	fields := s.newFields()
	storeErr := errors.New("failed to create transaction: FOREIGN KEY constraint failed")

	s.transactionRepo.EXPECT().Insert(s.ctx, fields).Return(nil, storeErr).Times(1)
	s.expectOutcome(services.OperationCreate, "failed")
	s.logger.EXPECT().LogOperationFailed(s.ctx, services.OperationCreate, storeErr).Times(1)

	transaction, err := s.service.CreateTransaction(s.ctx, fields)

	s.Nil(transaction)
	s.Same(storeErr, err)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	fields := s.newFields()
	stored := fields.NewTransaction()
	stored.ID = 5

	s.transactionRepo.EXPECT().UpdateByID(s.ctx, uint(5), fields).Return(stored, nil).Times(1)
	s.expectOutcome(services.OperationUpdate, "success")
	s.logger.EXPECT().LogTransactionUpdated(s.ctx, stored).Times(1)

	transaction, err := s.service.UpdateTransaction(s.ctx, 5, fields)

	s.NoError(err)
	s.Equal(uint(5), transaction.ID)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	fields := s.newFields()

	s.transactionRepo.EXPECT().UpdateByID(s.ctx, uint(99), fields).Return(nil, repositories.ErrTransactionNotFound).Times(1)
	s.expectOutcome(services.OperationUpdate, "not_found")

	transaction, err := s.service.UpdateTransaction(s.ctx, 99, fields)

	s.Nil(transaction)
	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_PassesPreload() {
	stored := &models.Transaction{ID: 3, Account: &models.Account{ID: 1}, Category: &models.Category{ID: 2}}

	s.transactionRepo.EXPECT().GetByID(s.ctx, uint(3), models.PreloadAll).Return(stored, nil).Times(1)
	s.expectOutcome(services.OperationGet, "success")

	transaction, err := s.service.GetTransaction(s.ctx, 3, models.PreloadAll)

	s.NoError(err)
	s.Same(stored, transaction)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	s.transactionRepo.EXPECT().GetByID(s.ctx, uint(3), models.PreloadNone).Return(nil, repositories.ErrTransactionNotFound).Times(1)
	s.expectOutcome(services.OperationGet, "not_found")

	transaction, err := s.service.GetTransaction(s.ctx, 3, models.PreloadNone)

	s.Nil(transaction)
	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestGetTransactions_WithAccountFilter() {
	accountID := uint(4)
	filters := models.TransactionFilters{AccountID: &accountID, Preload: models.PreloadAll}
	stored := []models.Transaction{{ID: 1, AccountID: 4}, {ID: 2, AccountID: 4}}

	s.transactionRepo.EXPECT().List(s.ctx, filters).Return(stored, nil).Times(1)
	s.expectOutcome(services.OperationList, "success")

	transactions, err := s.service.GetTransactions(s.ctx, filters)

	s.NoError(err)
	s.Len(transactions, 2)
}

func (s *TransactionServiceTestSuite) TestGetTransactions_StoreError() {
	storeErr := errors.New("failed to get transactions: connection refused")

	s.transactionRepo.EXPECT().List(s.ctx, models.TransactionFilters{}).Return(nil, storeErr).Times(1)
	s.expectOutcome(services.OperationList, "failed")
	s.logger.EXPECT().LogOperationFailed(s.ctx, services.OperationList, storeErr).Times(1)

	transactions, err := s.service.GetTransactions(s.ctx, models.TransactionFilters{})

	s.Nil(transactions)
	s.Same(storeErr, err)
}

func (s *TransactionServiceTestSuite) TestGetTransactionsByCategory_Success() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	query := models.CategoryTotalsQuery{StartDate: &start, EndDate: &end}
	totals := []models.CategoryTotal{
		{CategoryID: 1, Name: "Groceries", Amount: decimal.NewNullDecimal(decimal.NewFromInt(-50))},
		{CategoryID: 2, Name: "Salary"},
	}

	s.transactionRepo.EXPECT().SumByCategory(s.ctx, query).Return(totals, nil).Times(1)
	s.expectOutcome(services.OperationByCategory, "success")
	s.metrics.EXPECT().RecordGauge(services.MetricCategoryTotalsRows, float64(2), gomock.Nil()).Times(1)
	s.logger.EXPECT().LogCategoryTotalsComputed(s.ctx, query, 2, gomock.Any()).Times(1)

	result, err := s.service.GetTransactionsByCategory(s.ctx, query)

	s.NoError(err)
	s.Equal(totals, result)
}

func (s *TransactionServiceTestSuite) TestGetTransactionsByCategory_RejectsHalfRange() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	s.metrics.EXPECT().IncrementCounter(services.MetricTransactionOperation, map[string]string{
		"operation": services.OperationByCategory,
		"status":    "invalid",
	}).Times(1)

	result, err := s.service.GetTransactionsByCategory(s.ctx, models.CategoryTotalsQuery{StartDate: &start})

	s.Nil(result)
	s.ErrorIs(err, models.ErrIncompleteDateRange)
}

func (s *TransactionServiceTestSuite) TestGetTransactionsByCategory_RejectsInvertedRange() {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	s.metrics.EXPECT().IncrementCounter(services.MetricTransactionOperation, gomock.Any()).Times(1)

	_, err := s.service.GetTransactionsByCategory(s.ctx, models.CategoryTotalsQuery{StartDate: &start, EndDate: &end})

	s.ErrorIs(err, models.ErrInvalidDateRange)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	s.transactionRepo.EXPECT().DeleteByID(s.ctx, uint(8)).Return(nil).Times(1)
	s.expectOutcome(services.OperationDelete, "success")
	s.logger.EXPECT().LogTransactionDeleted(s.ctx, uint(8)).Times(1)

	s.NoError(s.service.DeleteTransaction(s.ctx, 8))
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_StoreError() {
	storeErr := errors.New("failed to delete transaction: database is locked")

	s.transactionRepo.EXPECT().DeleteByID(s.ctx, uint(8)).Return(storeErr).Times(1)
	s.expectOutcome(services.OperationDelete, "failed")
	s.logger.EXPECT().LogOperationFailed(s.ctx, services.OperationDelete, storeErr).Times(1)

	s.Same(storeErr, s.service.DeleteTransaction(s.ctx, 8))
}
