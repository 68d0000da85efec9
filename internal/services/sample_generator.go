package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	maxSampleCount    = 500
	incomeProbability = 0.15
)

var (
	ErrInvalidSampleCount = fmt.Errorf("sample count must be between 1 and %d", maxSampleCount)
	ErrNoSampleAccounts   = errors.New("at least one account ID is required")
	ErrNoSampleCategories = errors.New("at least one category ID is required")
)

// SampleOptions describes a batch of generated transactions
type SampleOptions struct {
	Count       int
	AccountIDs  []uint
	CategoryIDs []uint
	StartDate   time.Time
	EndDate     time.Time
}

func (o SampleOptions) validate() error {
	if o.Count < 1 || o.Count > maxSampleCount {
		return ErrInvalidSampleCount
	}
	if len(o.AccountIDs) == 0 {
		return ErrNoSampleAccounts
	}
	if len(o.CategoryIDs) == 0 {
		return ErrNoSampleCategories
	}
	if o.EndDate.Before(o.StartDate) {
		return models.ErrInvalidDateRange
	}
	return nil
}

type sampleGenerator struct {
	transactionService TransactionServiceInterface
	faker              *gofakeit.Faker
	payeePool          []string
}

// NewSampleGenerator creates a generator that stores its output through
// transactionService. A zero seed picks a random one.
func NewSampleGenerator(transactionService TransactionServiceInterface, seed uint64) SampleGeneratorInterface {
	return &sampleGenerator{
		transactionService: transactionService,
		faker:              gofakeit.New(seed),
		payeePool:          initializePayeePool(),
	}
}

func initializePayeePool() []string {
	return []string{
		"Whole Foods Market", "Trader Joe's", "Kroger", "Costco Wholesale",
		"Starbucks", "Chipotle Mexican Grill", "Panera Bread",
		"Shell", "Chevron", "Uber", "Metro Transit",
		"Amazon.com", "Home Depot", "IKEA",
		"Netflix", "Spotify", "AMC Theaters",
		"Comcast Xfinity", "PG&E", "Water Department",
		"CVS Pharmacy", "Walgreens",
	}
}

// GenerateFields returns opts.Count random transactions spread over the
// accounts, categories and date range in opts.
func (g *sampleGenerator) GenerateFields(opts SampleOptions) ([]models.TransactionFields, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	fields := make([]models.TransactionFields, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		fields = append(fields, models.TransactionFields{
			TxnDate:    g.generateDate(opts.StartDate, opts.EndDate),
			Payee:      g.generatePayee(),
			Memo:       g.faker.Sentence(4),
			Amount:     g.generateAmount(),
			AccountID:  opts.AccountIDs[g.faker.Number(0, len(opts.AccountIDs)-1)],
			CategoryID: opts.CategoryIDs[g.faker.Number(0, len(opts.CategoryIDs)-1)],
		})
	}

	return fields, nil
}

// Populate generates and stores transactions, stopping at the first failure
func (g *sampleGenerator) Populate(ctx context.Context, opts SampleOptions) ([]models.Transaction, error) {
	fields, err := g.GenerateFields(opts)
	if err != nil {
		return nil, err
	}

	created := make([]models.Transaction, 0, len(fields))
	for _, f := range fields {
		transaction, err := g.transactionService.CreateTransaction(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("failed to store sample transaction %d of %d: %w", len(created)+1, len(fields), err)
		}
		created = append(created, *transaction)
	}

	return created, nil
}

func (g *sampleGenerator) generateDate(start, end time.Time) time.Time {
	start = models.NormalizeDate(start)
	end = models.NormalizeDate(end)
	if !end.After(start) {
		return start
	}
	return models.NormalizeDate(g.faker.DateRange(start, end))
}

func (g *sampleGenerator) generatePayee() string {
	if g.faker.Bool() {
		return g.payeePool[g.faker.Number(0, len(g.payeePool)-1)]
	}
	return g.faker.Company()
}

// generateAmount returns mostly small expenses with the occasional larger
// income entry.
func (g *sampleGenerator) generateAmount() decimal.Decimal {
	if g.faker.Float64() < incomeProbability {
		return decimal.NewFromFloat(g.faker.Price(500, 5000)).Round(2)
	}
	return decimal.NewFromFloat(g.faker.Price(3, 250)).Round(2).Neg()
}
