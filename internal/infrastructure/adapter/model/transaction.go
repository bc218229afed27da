package model

import (
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
)

// Transaction represents the database model for ledger records
type Transaction struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"not null;index"`
	Type           string `gorm:"not null"`
	Detail         string `gorm:"not null;default:''"`
	Amount         int64  `gorm:"not null"`
	State          string `gorm:"not null"`
	Preimage       string `gorm:"not null;default:''"`
	PaymentAddr    string `gorm:"not null;default:''"`
	PaymentRequest string `gorm:"not null;default:''"`
	PaymentHash    string `gorm:"not null;default:''"`
	ChallengeID    *int64
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionFromEntity converts a ledger record to its database model
func TransactionFromEntity(t *entity.TransactionRecord) *Transaction {
	return &Transaction{
		ID:             t.ID,
		Username:       t.Username,
		Type:           string(t.Type),
		Detail:         t.Detail,
		Amount:         t.Amount,
		State:          string(t.State),
		Preimage:       t.Preimage,
		PaymentAddr:    t.PaymentAddr,
		PaymentRequest: t.PaymentRequest,
		PaymentHash:    t.PaymentHash,
		ChallengeID:    t.ChallengeID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToEntity converts the model to a ledger record
func (m *Transaction) ToEntity() *entity.TransactionRecord {
	return &entity.TransactionRecord{
		ID:             m.ID,
		Username:       m.Username,
		Type:           entity.TransactionType(m.Type),
		Detail:         m.Detail,
		Amount:         m.Amount,
		State:          entity.TransactionState(m.State),
		Preimage:       m.Preimage,
		PaymentAddr:    m.PaymentAddr,
		PaymentRequest: m.PaymentRequest,
		PaymentHash:    m.PaymentHash,
		ChallengeID:    m.ChallengeID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
