package entity

import "time"

// Balance is a user's spendable satoshis together with what is reserved by
// withdrawals that have not been confirmed yet
type Balance struct {
	Username           string
	Amount             int64
	PendingWithdrawals int64 // magnitude of OPEN withdrawal records
	UpdatedAt          time.Time
}

// Available returns the amount that can still be committed to new debits
func (b Balance) Available() int64 {
	return b.Amount - b.PendingWithdrawals
}
