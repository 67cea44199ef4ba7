package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical timestamp format for transactions and periods:
// fixed-width, zero-padded, second precision, no timezone.
const DateLayout = "2006-01-02 15:04:05"

// dateLayouts lists the accepted input formats, most specific first.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04",
}

// ParseDate parses a transaction or period timestamp.
// Returns an error describing the expected format if no layout matches.
func ParseDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("Cannot parse datetime: '%s'. Expected format: YYYY-MM-DD HH:mm:ss", raw)
}

// Transaction represents a raw recorded expense.
// Identity is the Date string: two transactions sharing the exact same
// date string are duplicates regardless of amount.
type Transaction struct {
	Date   string
	Amount decimal.Decimal
}

// ValidatedTransaction is a transaction that passed validation,
// enriched with its rounding ceiling and remanent.
// Invariant: Remanent is in [0, rounding base) for non-negative amounts.
type ValidatedTransaction struct {
	Date     string
	When     time.Time
	Amount   decimal.Decimal
	Ceiling  decimal.Decimal
	Remanent decimal.Decimal
}

// InvalidTransaction is a transaction rejected by validation,
// paired with a human-readable reason.
type InvalidTransaction struct {
	Date    string
	Amount  decimal.Decimal
	Message string
}

// AdjustedTransaction is a validated transaction after the q/p period
// rules have been applied to its remanent, plus k-period membership.
type AdjustedTransaction struct {
	Date      string
	When      time.Time
	Amount    decimal.Decimal
	Ceiling   decimal.Decimal
	Remanent  decimal.Decimal
	InKPeriod bool
	KLabels   []string
}
