package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SampleGeneratorTestSuite struct {
	suite.Suite
	ctx                context.Context
	ctrl               *gomock.Controller
	transactionService *service_mocks.MockTransactionServiceInterface
	generator          services.SampleGeneratorInterface
	opts               services.SampleOptions
}

func TestSampleGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SampleGeneratorTestSuite))
}

func (s *SampleGeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.generator = services.NewSampleGenerator(s.transactionService, 42)
	s.opts = services.SampleOptions{
		Count:       50,
		AccountIDs:  []uint{1, 2},
		CategoryIDs: []uint{3, 4, 5},
		StartDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (s *SampleGeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SampleGeneratorTestSuite) TestGenerateFields_StaysWithinOptions() {
	fields, err := s.generator.GenerateFields(s.opts)

	s.Require().NoError(err)
	s.Len(fields, 50)
	for _, f := range fields {
		s.Contains(s.opts.AccountIDs, f.AccountID)
		s.Contains(s.opts.CategoryIDs, f.CategoryID)
		s.False(f.TxnDate.Before(s.opts.StartDate), "date %s before range", f.TxnDate)
		s.False(f.TxnDate.After(s.opts.EndDate), "date %s after range", f.TxnDate)
		s.Equal(models.NormalizeDate(f.TxnDate), f.TxnDate)
		s.NotEmpty(f.Payee)
		s.False(f.Amount.IsZero())
		s.True(f.Amount.Equal(f.Amount.Round(2)))
	}
}

func (s *SampleGeneratorTestSuite) TestGenerateFields_SingleDay() {
	s.opts.EndDate = s.opts.StartDate
	s.opts.Count = 5

	fields, err := s.generator.GenerateFields(s.opts)

	s.Require().NoError(err)
	for _, f := range fields {
		s.True(s.opts.StartDate.Equal(f.TxnDate))
	}
}

func (s *SampleGeneratorTestSuite) TestGenerateFields_InvalidOptions() {
	tests := []struct {
		name    string
		mutate  func(o *services.SampleOptions)
		wantErr error
	}{
		{name: "zero count", mutate: func(o *services.SampleOptions) { o.Count = 0 }, wantErr: services.ErrInvalidSampleCount},
		{name: "too many", mutate: func(o *services.SampleOptions) { o.Count = 501 }, wantErr: services.ErrInvalidSampleCount},
		{name: "no accounts", mutate: func(o *services.SampleOptions) { o.AccountIDs = nil }, wantErr: services.ErrNoSampleAccounts},
		{name: "no categories", mutate: func(o *services.SampleOptions) { o.CategoryIDs = nil }, wantErr: services.ErrNoSampleCategories},
		{name: "inverted range", mutate: func(o *services.SampleOptions) { o.EndDate = o.StartDate.AddDate(0, 0, -1) }, wantErr: models.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			opts := s.opts
			tt.mutate(&opts)

			fields, err := s.generator.GenerateFields(opts)

			s.Nil(fields)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *SampleGeneratorTestSuite) TestPopulate_StoresEveryTransaction() {
	s.opts.Count = 3
	var nextID uint

	s.transactionService.EXPECT().CreateTransaction(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, fields models.TransactionFields) (*models.Transaction, error) {
			nextID++
			transaction := fields.NewTransaction()
			transaction.ID = nextID
			return transaction, nil
		}).Times(3)

	created, err := s.generator.Populate(s.ctx, s.opts)

	s.Require().NoError(err)
	s.Len(created, 3)
	s.Equal(uint(3), created[2].ID)
}

func (s *SampleGeneratorTestSuite) TestPopulate_StopsAtFirstFailure() {
	s.opts.Count = 3
	storeErr := errors.New("FOREIGN KEY constraint failed")

	gomock.InOrder(
		s.transactionService.EXPECT().CreateTransaction(s.ctx, gomock.Any()).Return(&models.Transaction{ID: 1}, nil),
		s.transactionService.EXPECT().CreateTransaction(s.ctx, gomock.Any()).Return(nil, storeErr),
	)

	created, err := s.generator.Populate(s.ctx, s.opts)

	s.Nil(created)
	s.ErrorIs(err, storeErr)
	s.Contains(err.Error(), "sample transaction 2 of 3")
}
