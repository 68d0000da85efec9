package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places stored for amounts.
const AmountScale = 2

// Transaction is a single signed money movement on an account.
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	TxnDate    time.Time       `gorm:"column:txn_date;type:date;not null;index" json:"txn_date"`
	Payee      string          `gorm:"type:varchar(255)" json:"payee"`
	Memo       string          `gorm:"type:text" json:"memo"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	AccountID  uint            `gorm:"not null;index" json:"account_id"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account  *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// TransactionFields holds every caller-supplied column of a transaction.
// It has no identifier: inserts get one from the store and updates take it
// as a separate argument.
type TransactionFields struct {
	TxnDate    time.Time
	Payee      string
	Memo       string
	Amount     decimal.Decimal
	AccountID  uint
	CategoryID uint
}

// NewTransaction builds an unsaved Transaction from the given fields.
func (f TransactionFields) NewTransaction() *Transaction {
	return &Transaction{
		TxnDate:    NormalizeDate(f.TxnDate),
		Payee:      f.Payee,
		Memo:       f.Memo,
		Amount:     f.Amount,
		AccountID:  f.AccountID,
		CategoryID: f.CategoryID,
	}
}

// Fields returns the caller-supplied columns of the transaction.
func (t *Transaction) Fields() TransactionFields {
	return TransactionFields{
		TxnDate:    t.TxnDate,
		Payee:      t.Payee,
		Memo:       t.Memo,
		Amount:     t.Amount,
		AccountID:  t.AccountID,
		CategoryID: t.CategoryID,
	}
}

// UpdatableColumns are the columns replaced by a full-row update.
var UpdatableColumns = []string{"txn_date", "payee", "memo", "amount", "account_id", "category_id"}

// Preload selects which associations are loaded together with a transaction.
type Preload struct {
	Account  bool
	Category bool
}

var (
	PreloadNone = Preload{}
	PreloadAll  = Preload{Account: true, Category: true}
)

// NormalizeDate truncates t to midnight UTC of its calendar date.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
