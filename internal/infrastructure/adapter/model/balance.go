package model

import "time"

// Balance represents the database model for a user's balance
type Balance struct {
	Username  string    `gorm:"primaryKey"`
	Amount    int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}
