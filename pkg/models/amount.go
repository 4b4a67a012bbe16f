package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amounts are stored as integer minor units (paise). Major units only exist
// at the API boundary and in human-readable descriptions.
const minorExponent = 2

// MaxAmount is the largest single amount, in minor units, accepted from a caller.
const MaxAmount int64 = 10_000_000_000_000

var (
	ErrFractionalAmount = errors.New("amount has more than two decimal places")
	ErrAmountOutOfRange = errors.New("amount is out of range")
)

var maxAmount = decimal.NewFromInt(MaxAmount)

// ToMinor converts a major-unit decimal to minor units. Amounts whose
// magnitude exceeds MaxAmount are rejected with ErrAmountOutOfRange.
func ToMinor(d decimal.Decimal) (int64, error) {
	shifted := d.Shift(minorExponent)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, ErrFractionalAmount
	}
	if shifted.Abs().GreaterThan(maxAmount) {
		return 0, ErrAmountOutOfRange
	}
	return shifted.IntPart(), nil
}

// FromMinor converts minor units to a major-unit decimal.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorExponent)
}

// FormatAmount renders minor units as a fixed two-place major amount.
func FormatAmount(minor int64) string {
	return FromMinor(minor).StringFixed(minorExponent)
}
