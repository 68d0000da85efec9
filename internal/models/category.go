package models

import "time"

// Category groups transactions for reporting. The transaction service only
// reads categories.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
