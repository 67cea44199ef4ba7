package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QPeriod is a time-bounded override rule: a transaction dated inside
// [Start, End] has its remanent replaced by Fixed.
// Overlapping q periods are resolved by the period engine (latest start
// wins, then input order).
type QPeriod struct {
	Start time.Time
	End   time.Time
	Fixed decimal.Decimal
	Label string
}

// PPeriod is a time-bounded additive rule: every matching p period
// contributes Extra on top of the remanent.
type PPeriod struct {
	Start time.Time
	End   time.Time
	Extra decimal.Decimal
	Label string
}

// KPeriod is a time-bounded tag with no monetary effect, used to mark
// group membership on transactions.
type KPeriod struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether at falls inside the period, bounds inclusive.
// A period with Start == End matches that exact instant only.
func (q QPeriod) Contains(at time.Time) bool { return inRange(at, q.Start, q.End) }

// Contains reports whether at falls inside the period, bounds inclusive.
func (p PPeriod) Contains(at time.Time) bool { return inRange(at, p.Start, p.End) }

// Contains reports whether at falls inside the period, bounds inclusive.
func (k KPeriod) Contains(at time.Time) bool { return inRange(at, k.Start, k.End) }

func inRange(at, start, end time.Time) bool {
	return !at.Before(start) && !at.After(end)
}
