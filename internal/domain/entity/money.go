package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

// Amounts are integer satoshis everywhere in the ledger.

// MaxAmount caps any single stake, invoice or payment (21M BTC in satoshis)
const MaxAmount int64 = 21_000_000 * 100_000_000

// FeePercent is the house share taken from a settled challenge, applied to one stake
const FeePercent int64 = 2

// ValidateAmount checks that amount is a positive satoshi value within MaxAmount
func ValidateAmount(field string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", errs.ErrInvalidAmount, field, amount)
	}
	if amount > MaxAmount {
		return fmt.Errorf("%w: %s exceeds %d", errs.ErrAmountOverflow, field, MaxAmount)
	}
	return nil
}

// CalculateFee returns floor(2% of stake) rounded down to an even number so that
// a draw splits it evenly between both players
func CalculateFee(stake int64) int64 {
	if stake <= 0 {
		return 0
	}
	fee := stake * FeePercent / 100
	fee -= fee % 2
	return fee
}

// SafeAdd adds two amounts and reports overflow instead of wrapping
func SafeAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}
