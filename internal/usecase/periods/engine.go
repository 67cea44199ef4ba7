package periods

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omrawal/blackrock-challenge/internal/domain"
)

// Apply runs the temporal rule pipeline over validated transactions and
// returns freshly built adjusted transactions. The composition order is
// fixed: q resolves first (authoritative override of the remanent), then
// p (supplementary additions layered on top), then k (tagging only, no
// monetary effect). Inputs are never mutated.
//
// An empty period list for any category means no rule applies for that
// category.
func Apply(
	valid []domain.ValidatedTransaction,
	qPeriods []domain.QPeriod,
	pPeriods []domain.PPeriod,
	kPeriods []domain.KPeriod,
) []domain.AdjustedTransaction {
	adjusted := make([]domain.AdjustedTransaction, 0, len(valid))

	for _, tx := range valid {
		remanent := applyQ(tx.Remanent, tx.When, qPeriods)
		remanent = applyP(remanent, tx.When, pPeriods)
		labels := matchK(tx.When, kPeriods)

		adjusted = append(adjusted, domain.AdjustedTransaction{
			Date:      tx.Date,
			When:      tx.When,
			Amount:    tx.Amount,
			Ceiling:   tx.Ceiling,
			Remanent:  remanent,
			InKPeriod: labels != nil,
			KLabels:   nonEmpty(labels),
		})
	}

	return adjusted
}

// applyQ selects the winning q period over the full set of matches:
// the latest start wins, and on a start tie the period appearing first
// in the input list wins. The winner's fixed value replaces the remanent
// entirely. With no match the remanent is returned unchanged.
func applyQ(remanent decimal.Decimal, at time.Time, qPeriods []domain.QPeriod) decimal.Decimal {
	winner := -1

	for i, q := range qPeriods {
		if !q.Contains(at) {
			continue
		}

		if winner < 0 || q.Start.After(qPeriods[winner].Start) {
			winner = i
		}
	}

	if winner < 0 {
		return remanent
	}

	return qPeriods[winner].Fixed
}

// applyP adds the extra value of every matching p period to the remanent.
// All matches contribute; there is no winner selection.
func applyP(remanent decimal.Decimal, at time.Time, pPeriods []domain.PPeriod) decimal.Decimal {
	total := remanent

	for _, p := range pPeriods {
		if p.Contains(at) {
			total = total.Add(p.Extra)
		}
	}

	return total
}

// matchK returns the labels of every k period containing at, or nil when
// the transaction falls outside all k periods. Unlabeled matches are
// recorded as empty strings so membership is still observable.
func matchK(at time.Time, kPeriods []domain.KPeriod) []string {
	var labels []string

	for _, k := range kPeriods {
		if k.Contains(at) {
			labels = append(labels, k.Label)
		}
	}

	return labels
}

// nonEmpty strips unlabeled matches, keeping the label set nil unless at
// least one matched k period actually carries a label.
func nonEmpty(labels []string) []string {
	var out []string

	for _, l := range labels {
		if l != "" {
			out = append(out, l)
		}
	}

	return out
}
