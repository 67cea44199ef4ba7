package projector

import "github.com/shopspring/decimal"

// taxSlab is one band of the progressive tax table: the marginal rate
// applies to the portion of income above Floor, capped by the next
// band's floor.
type taxSlab struct {
	Floor decimal.Decimal
	Rate  decimal.Decimal
}

// taxSlabs is the simplified Indian slab table, ordered by ascending
// floor. New brackets slot in without touching the computation.
var taxSlabs = []taxSlab{
	{Floor: decimal.Zero, Rate: decimal.Zero},
	{Floor: decimal.NewFromInt(700_000), Rate: decimal.RequireFromString("0.10")},
	{Floor: decimal.NewFromInt(1_000_000), Rate: decimal.RequireFromString("0.15")},
	{Floor: decimal.NewFromInt(1_200_000), Rate: decimal.RequireFromString("0.20")},
	{Floor: decimal.NewFromInt(1_500_000), Rate: decimal.RequireFromString("0.30")},
}

// Tax computes income tax by folding the slab table cumulatively: each
// band taxes only the portion of income inside it. The result is
// continuous and non-decreasing in income; income at or below the first
// taxable floor owes nothing.
func Tax(income decimal.Decimal) decimal.Decimal {
	total := decimal.Zero

	for i, slab := range taxSlabs {
		if income.LessThanOrEqual(slab.Floor) {
			break
		}

		portion := income.Sub(slab.Floor)
		if i+1 < len(taxSlabs) {
			ceiling := taxSlabs[i+1].Floor.Sub(slab.Floor)
			if portion.GreaterThan(ceiling) {
				portion = ceiling
			}
		}

		total = total.Add(portion.Mul(slab.Rate))
	}

	return total
}

// taxBenefit is the NPS deduction benefit: the tax delta from deducting
// the invested amount, capped at 10% of annual income and the absolute
// deduction ceiling. Always >= 0 since Tax is monotonic.
func taxBenefit(invested, annualIncome decimal.Decimal) decimal.Decimal {
	deduction := decimal.Min(invested, annualIncome.Mul(npsMaxDeductionPct), npsMaxDeduction)

	return Tax(annualIncome).Sub(Tax(annualIncome.Sub(deduction)))
}
