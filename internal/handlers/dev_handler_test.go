package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockGenerator *service_mocks.MockSampleGeneratorInterface
	handler       *DevHandler
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockGenerator = service_mocks.NewMockSampleGeneratorInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockGenerator)
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/sample-transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GenerateSampleTransactions(c))
	return rec
}

func (s *DevHandlerTestSuite) TestGenerateSampleTransactions_Success() {
	s.mockGenerator.EXPECT().
		Populate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts services.SampleOptions) ([]models.Transaction, error) {
			s.Equal(2, opts.Count)
			s.Equal([]uint{1, 2}, opts.AccountIDs)
			s.Equal([]uint{3}, opts.CategoryIDs)
			s.True(opts.StartDate.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
			s.True(opts.EndDate.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))

			created := make([]models.Transaction, 0, opts.Count)
			for i := 0; i < opts.Count; i++ {
				created = append(created, models.Transaction{
					ID:         uint(i + 1),
					TxnDate:    opts.StartDate,
					Amount:     decimal.NewFromInt(int64(-10 * (i + 1))),
					AccountID:  opts.AccountIDs[i%len(opts.AccountIDs)],
					CategoryID: opts.CategoryIDs[0],
				})
			}
			return created, nil
		})

	rec := s.post(`{"count":2,"account_ids":[1,2],"category_ids":[3],"start_date":"2024-01-01","end_date":"2024-03-31"}`)

	s.Equal(http.StatusCreated, rec.Code)
	var response dto.GenerateSampleResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Created)
	s.Len(response.Transactions, 2)
	s.Equal("-20.00", response.Transactions[1].Amount)
}

func (s *DevHandlerTestSuite) TestGenerateSampleTransactions_InvalidRequest() {
	testCases := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"count":`, "VALIDATION_003"},
		{"count too large", `{"count":501,"account_ids":[1],"category_ids":[1],"start_date":"2024-01-01","end_date":"2024-01-31"}`, "VALIDATION_001"},
		{"no accounts", `{"count":5,"account_ids":[],"category_ids":[1],"start_date":"2024-01-01","end_date":"2024-01-31"}`, "VALIDATION_001"},
		{"zero category id", `{"count":5,"account_ids":[1],"category_ids":[0],"start_date":"2024-01-01","end_date":"2024-01-31"}`, "VALIDATION_001"},
		{"missing end", `{"count":5,"account_ids":[1],"category_ids":[1],"start_date":"2024-01-01"}`, "VALIDATION_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.post(tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			var response ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(tc.code, response.Error.Code)
		})
	}
}

func (s *DevHandlerTestSuite) TestGenerateSampleTransactions_InvertedRange() {
	s.mockGenerator.EXPECT().
		Populate(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidDateRange)

	rec := s.post(`{"count":5,"account_ids":[1],"category_ids":[1],"start_date":"2024-02-01","end_date":"2024-01-01"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *DevHandlerTestSuite) TestGenerateSampleTransactions_StoreError() {
	storeErr := fmt.Errorf("failed to store sample transaction 1 of 5: %w", stderrors.New("FOREIGN KEY constraint failed"))
	s.mockGenerator.EXPECT().
		Populate(gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	rec := s.post(`{"count":5,"account_ids":[1],"category_ids":[1],"start_date":"2024-01-01","end_date":"2024-01-31"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
}
