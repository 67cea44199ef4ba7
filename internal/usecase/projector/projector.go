package projector

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omrawal/blackrock-challenge/internal/domain"
)

const (
	// RetirementAge is the age the investment horizon runs to.
	RetirementAge = 60
	// MinYears floors the horizon so projections stay meaningful for
	// callers at or past retirement age.
	MinYears = 5
)

var (
	npsRate            = decimal.RequireFromString("0.0711")
	indexRate          = decimal.RequireFromString("0.1449")
	npsMaxDeduction    = decimal.NewFromInt(200_000)
	npsMaxDeductionPct = decimal.RequireFromString("0.10")

	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	months  = decimal.NewFromInt(12)
)

// Input carries everything a projection depends on.
// Wage is MONTHLY: annual income is derived as Wage * 12 for both the
// NPS deduction cap and the tax-benefit delta.
type Input struct {
	Transactions []domain.AdjustedTransaction
	Age          int
	Wage         decimal.Decimal
	InflationPct decimal.Decimal
	Vehicle      domain.Vehicle
}

// Years returns the investment horizon for the given age: years until
// retirement, never less than MinYears.
func Years(age int) int {
	if y := RetirementAge - age; y > MinYears {
		return y
	}

	return MinYears
}

// Project aggregates adjusted remanents into calendar-year buckets,
// compounds each bucket forward at the vehicle rate, deflates the result
// by inflation, and computes the per-bucket NPS tax benefit. Earlier
// buckets compound longer; buckets past the horizon are dropped so the
// output never exceeds Years(age) windows.
func Project(in Input) (*domain.ProjectionResult, error) {
	if in.Age < 0 {
		return nil, fmt.Errorf("%w: age must be non-negative", domain.ErrInvalidInput)
	}

	if in.Wage.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: wage must be positive", domain.ErrInvalidInput)
	}

	rate, err := vehicleRate(in.Vehicle)
	if err != nil {
		return nil, err
	}

	years := Years(in.Age)
	annualIncome := in.Wage.Mul(months)
	inflationFactor := one.Add(in.InflationPct.Div(hundred))
	growthFactor := one.Add(rate)

	totalAmount := decimal.Zero
	totalCeiling := decimal.Zero

	for _, tx := range in.Transactions {
		totalAmount = totalAmount.Add(tx.Amount)
		totalCeiling = totalCeiling.Add(tx.Ceiling)
	}

	windows := make([]domain.SavingsWindow, 0, len(in.Transactions))

	for i, bucket := range bucketByYear(in.Transactions) {
		if i >= years {
			break
		}

		t := decimal.NewFromInt(int64(years - i))
		nominal := bucket.Amount.Mul(growthFactor.Pow(t))
		real := nominal.Div(inflationFactor.Pow(t))

		benefit := decimal.Zero
		if in.Vehicle == domain.VehicleNPS {
			benefit = taxBenefit(bucket.Amount, annualIncome).Round(2)
		}

		windows = append(windows, domain.SavingsWindow{
			Start:      bucket.Start,
			End:        bucket.End,
			Amount:     bucket.Amount,
			Profit:     real.Sub(bucket.Amount).Round(2),
			TaxBenefit: benefit,
		})
	}

	return &domain.ProjectionResult{
		TotalTransactionAmount: totalAmount.Round(2),
		TotalCeiling:           totalCeiling.Round(2),
		SavingsByDates:         windows,
	}, nil
}

// yearBucket is an ephemeral calendar-year aggregation of adjusted
// remanents, bounded by the first and last instant of the year.
type yearBucket struct {
	Start  time.Time
	End    time.Time
	Amount decimal.Decimal
}

// bucketByYear groups adjusted remanents by the calendar year of their
// transaction date and returns the buckets in chronological order.
func bucketByYear(transactions []domain.AdjustedTransaction) []yearBucket {
	byYear := make(map[int]decimal.Decimal)

	for _, tx := range transactions {
		year := tx.When.Year()
		byYear[year] = byYear[year].Add(tx.Remanent)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}

	sort.Ints(years)

	buckets := make([]yearBucket, 0, len(years))
	for _, year := range years {
		buckets = append(buckets, yearBucket{
			Start:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
			Amount: byYear[year].Round(2),
		})
	}

	return buckets
}

// vehicleRate maps a vehicle tag to its annual compounding rate.
func vehicleRate(v domain.Vehicle) (decimal.Decimal, error) {
	switch v {
	case domain.VehicleNPS:
		return npsRate, nil
	case domain.VehicleIndex:
		return indexRate, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidVehicle, string(v))
	}
}
