package models

import "time"

// Account is the ledger a transaction is booked against. The transaction
// service only reads accounts.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}
