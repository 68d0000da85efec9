package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Insert stores a new transaction and returns it with its assigned ID
func (r *transactionRepository) Insert(ctx context.Context, fields models.TransactionFields) (*models.Transaction, error) {
	transaction := fields.NewTransaction()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

// UpdateByID replaces every caller-supplied column of the transaction with
// the given ID and returns the stored row.
func (r *transactionRepository) UpdateByID(ctx context.Context, id uint, fields models.TransactionFields) (*models.Transaction, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{ID: id}).
		Select(models.UpdatableColumns).
		Updates(fields.NewTransaction())

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrTransactionNotFound
	}

	return r.GetByID(ctx, id, models.PreloadNone)
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uint, preload models.Preload) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := withPreload(r.db.WithContext(ctx), preload).First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List retrieves transactions ordered by date, optionally limited to one account
func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)

	query := withPreload(r.db.WithContext(ctx), filters.Preload)
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}

	if err := query.Order("txn_date ASC").Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, nil
}

// SumByCategory returns one row per category with the sum of its
// transaction amounts. The date range sits in the join condition so that
// categories without matching transactions keep a row with a null amount.
func (r *transactionRepository) SumByCategory(ctx context.Context, query models.CategoryTotalsQuery) ([]models.CategoryTotal, error) {
	totals := make([]models.CategoryTotal, 0)

	stmt := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id AS category_id, categories.name AS name, SUM(transactions.amount) AS amount")

	if query.HasRange() {
		start, end := query.Bounds()
		stmt = stmt.Joins("LEFT JOIN transactions ON transactions.category_id = categories.id AND transactions.txn_date BETWEEN ? AND ?", start, end)
	} else {
		stmt = stmt.Joins("LEFT JOIN transactions ON transactions.category_id = categories.id")
	}

	if err := stmt.Group("categories.id, categories.name").
		Order("categories.id ASC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	// SQLite sums decimal columns as REAL.
	for i := range totals {
		if totals[i].Amount.Valid {
			totals[i].Amount.Decimal = totals[i].Amount.Decimal.Round(models.AmountScale)
		}
	}

	return totals, nil
}

// DeleteByID removes the transaction with the given ID. Deleting a
// transaction that does not exist is not an error.
func (r *transactionRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Transaction{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func withPreload(db *gorm.DB, preload models.Preload) *gorm.DB {
	if preload.Account {
		db = db.Preload("Account")
	}
	if preload.Category {
		db = db.Preload("Category")
	}
	return db
}
