package repositories

import (
	"context"

	"finance-tracker/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Insert(ctx context.Context, fields models.TransactionFields) (*models.Transaction, error)
	UpdateByID(ctx context.Context, id uint, fields models.TransactionFields) (*models.Transaction, error)
	GetByID(ctx context.Context, id uint, preload models.Preload) (*models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
	SumByCategory(ctx context.Context, query models.CategoryTotalsQuery) ([]models.CategoryTotal, error)
	DeleteByID(ctx context.Context, id uint) error
}
