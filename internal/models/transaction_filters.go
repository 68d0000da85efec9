package models

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	AccountID *uint
	Preload   Preload
}
