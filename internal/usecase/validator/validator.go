package validator

import (
	"github.com/omrawal/blackrock-challenge/internal/domain"
	"github.com/omrawal/blackrock-challenge/internal/usecase/rounding"
)

// Rejection messages surfaced to callers alongside the offending record.
const (
	MsgNegativeAmount     = "Negative amounts are not allowed"
	MsgDuplicateTimestamp = "Duplicate timestamp"
)

// Result splits a batch of transactions into valid and invalid records.
// Both slices preserve the relative input order.
type Result struct {
	Valid   []domain.ValidatedTransaction
	Invalid []domain.InvalidTransaction
}

// Validate classifies transactions against the business rules: amounts
// must be non-negative and date strings must be unique within the batch.
// Invalid records never abort the batch; each carries a human-readable
// reason. Duplicate detection scans in input order: the first occurrence
// of a date stays valid, later occurrences are flagged, and the earlier
// one is not retroactively invalidated.
func Validate(transactions []domain.Transaction) Result {
	result := Result{
		Valid:   make([]domain.ValidatedTransaction, 0, len(transactions)),
		Invalid: make([]domain.InvalidTransaction, 0),
	}

	seen := make(map[string]bool, len(transactions))

	for _, tx := range transactions {
		when, err := domain.ParseDate(tx.Date)
		if err != nil {
			result.Invalid = append(result.Invalid, domain.InvalidTransaction{
				Date:    tx.Date,
				Amount:  tx.Amount,
				Message: err.Error(),
			})

			continue
		}

		if tx.Amount.IsNegative() {
			result.Invalid = append(result.Invalid, domain.InvalidTransaction{
				Date:    tx.Date,
				Amount:  tx.Amount,
				Message: MsgNegativeAmount,
			})

			continue
		}

		if seen[tx.Date] {
			result.Invalid = append(result.Invalid, domain.InvalidTransaction{
				Date:    tx.Date,
				Amount:  tx.Amount,
				Message: MsgDuplicateTimestamp,
			})

			continue
		}

		seen[tx.Date] = true

		ceiling, remanent := rounding.Ceil(tx.Amount)
		result.Valid = append(result.Valid, domain.ValidatedTransaction{
			Date:     tx.Date,
			When:     when,
			Amount:   tx.Amount,
			Ceiling:  ceiling,
			Remanent: remanent,
		})
	}

	return result
}
