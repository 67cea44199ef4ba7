package rounding

import "github.com/shopspring/decimal"

// Base is the rounding unit: every expense is rounded up to the next
// multiple of 100 and the difference becomes the savings contribution.
const Base = 100

// CeilTo rounds amount up to the next multiple of unit and returns the
// ceiling together with the remanent (ceiling - amount).
// Total for all real inputs: zero maps to (0, 0) and a negative amount
// yields the least multiple of unit at or above it (which may be <= 0).
// For amount >= 0 the remanent is guaranteed to be in [0, unit).
func CeilTo(amount decimal.Decimal, unit int64) (ceiling, remanent decimal.Decimal) {
	u := decimal.NewFromInt(unit)
	ceiling = amount.Div(u).Ceil().Mul(u)
	remanent = ceiling.Sub(amount)

	return ceiling, remanent
}

// Ceil rounds amount up to the next multiple of the default Base unit.
func Ceil(amount decimal.Decimal) (ceiling, remanent decimal.Decimal) {
	return CeilTo(amount, Base)
}
