package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle selects the investment vehicle for a projection.
type Vehicle string

const (
	// VehicleNPS is the tax-advantaged retirement vehicle (7.11% annually,
	// capped deduction).
	VehicleNPS Vehicle = "NPS"
	// VehicleIndex is the unrestricted index fund vehicle (14.49% annually,
	// no tax benefit).
	VehicleIndex Vehicle = "INDEX"
)

// SavingsWindow is one calendar-year slice of a projection: the nominal
// contribution invested in that year, the inflation-adjusted gain at the
// end of the horizon, and the NPS tax benefit (zero for the index vehicle).
type SavingsWindow struct {
	Start      time.Time
	End        time.Time
	Amount     decimal.Decimal
	Profit     decimal.Decimal
	TaxBenefit decimal.Decimal
}

// ProjectionResult is the output of a full investment-return projection.
type ProjectionResult struct {
	TotalTransactionAmount decimal.Decimal
	TotalCeiling           decimal.Decimal
	SavingsByDates         []SavingsWindow
}
