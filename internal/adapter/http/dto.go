package http

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omrawal/blackrock-challenge/internal/domain"
)

// Wire types. Amounts travel as JSON numbers and dates as fixed-format
// strings (YYYY-MM-DD HH:mm:ss); decimals exist only inside the core.

type transactionPayload struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type qPeriodPayload struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Fixed float64 `json:"fixed"`
	Label string  `json:"label,omitempty"`
}

type pPeriodPayload struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Extra float64 `json:"extra"`
	Label string  `json:"label,omitempty"`
}

type kPeriodPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label,omitempty"`
}

type validateRequest struct {
	Wage         float64              `json:"wage"`
	Transactions []transactionPayload `json:"transactions"`
}

type filterRequest struct {
	Age          *int                 `json:"age"`
	Wage         float64              `json:"wage"`
	Inflation    float64              `json:"inflation"`
	Q            []qPeriodPayload     `json:"q"`
	P            []pPeriodPayload     `json:"p"`
	K            []kPeriodPayload     `json:"k"`
	Transactions []transactionPayload `json:"transactions"`
}

type returnsRequest struct {
	Age          *int                 `json:"age"`
	Wage         *float64             `json:"wage"`
	Inflation    float64              `json:"inflation"`
	Q            []qPeriodPayload     `json:"q"`
	P            []pPeriodPayload     `json:"p"`
	K            []kPeriodPayload     `json:"k"`
	Transactions []transactionPayload `json:"transactions"`
}

type parsedTransaction struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Ceiling  float64 `json:"ceiling"`
	Remanent float64 `json:"remanent"`
}

type invalidTransaction struct {
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

type validateResponse struct {
	Valid   []parsedTransaction  `json:"valid"`
	Invalid []invalidTransaction `json:"invalid"`
}

type filteredTransaction struct {
	Date      string   `json:"date"`
	Amount    float64  `json:"amount"`
	Ceiling   float64  `json:"ceiling"`
	Remanent  float64  `json:"remanent"`
	InKPeriod bool     `json:"inkPeriod"`
	KLabels   []string `json:"kLabels,omitempty"`
}

type filterResponse struct {
	Valid   []filteredTransaction `json:"valid"`
	Invalid []invalidTransaction  `json:"invalid"`
}

type savingsWindowPayload struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Amount     float64 `json:"amount"`
	Profit     float64 `json:"profit"`
	TaxBenefit float64 `json:"taxBenefit"`
}

type returnsResponse struct {
	TotalTransactionAmount float64                `json:"totalTransactionAmount"`
	TotalCeiling           float64                `json:"totalCeiling"`
	SavingsByDates         []savingsWindowPayload `json:"savingsByDates"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toDomainTransactions(payloads []transactionPayload) []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(payloads))
	for _, p := range payloads {
		transactions = append(transactions, domain.Transaction{
			Date:   p.Date,
			Amount: decimal.NewFromFloat(p.Amount),
		})
	}

	return transactions
}

// Period bounds are top-level request data, so a malformed bound fails
// the whole request rather than a single record.

func toQPeriods(payloads []qPeriodPayload) ([]domain.QPeriod, error) {
	periods := make([]domain.QPeriod, 0, len(payloads))

	for _, p := range payloads {
		start, end, err := parseBounds(p.Start, p.End)
		if err != nil {
			return nil, err
		}

		periods = append(periods, domain.QPeriod{
			Start: start,
			End:   end,
			Fixed: decimal.NewFromFloat(p.Fixed),
			Label: p.Label,
		})
	}

	return periods, nil
}

func toPPeriods(payloads []pPeriodPayload) ([]domain.PPeriod, error) {
	periods := make([]domain.PPeriod, 0, len(payloads))

	for _, p := range payloads {
		start, end, err := parseBounds(p.Start, p.End)
		if err != nil {
			return nil, err
		}

		periods = append(periods, domain.PPeriod{
			Start: start,
			End:   end,
			Extra: decimal.NewFromFloat(p.Extra),
			Label: p.Label,
		})
	}

	return periods, nil
}

func toKPeriods(payloads []kPeriodPayload) ([]domain.KPeriod, error) {
	periods := make([]domain.KPeriod, 0, len(payloads))

	for _, p := range payloads {
		start, end, err := parseBounds(p.Start, p.End)
		if err != nil {
			return nil, err
		}

		periods = append(periods, domain.KPeriod{
			Start: start,
			End:   end,
			Label: p.Label,
		})
	}

	return periods, nil
}

func parseBounds(startRaw, endRaw string) (start, end time.Time, err error) {
	start, err = domain.ParseDate(startRaw)
	if err != nil {
		return start, end, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	end, err = domain.ParseDate(endRaw)
	if err != nil {
		return start, end, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	return start, end, nil
}

func toValidResponse(valid []domain.ValidatedTransaction) []parsedTransaction {
	out := make([]parsedTransaction, 0, len(valid))
	for _, tx := range valid {
		out = append(out, parsedTransaction{
			Date:     tx.Date,
			Amount:   tx.Amount.InexactFloat64(),
			Ceiling:  tx.Ceiling.InexactFloat64(),
			Remanent: tx.Remanent.Round(2).InexactFloat64(),
		})
	}

	return out
}

func toInvalidResponse(invalid []domain.InvalidTransaction) []invalidTransaction {
	out := make([]invalidTransaction, 0, len(invalid))
	for _, tx := range invalid {
		out = append(out, invalidTransaction{
			Date:    tx.Date,
			Amount:  tx.Amount.InexactFloat64(),
			Message: tx.Message,
		})
	}

	return out
}

func toFilteredResponse(adjusted []domain.AdjustedTransaction) []filteredTransaction {
	out := make([]filteredTransaction, 0, len(adjusted))
	for _, tx := range adjusted {
		out = append(out, filteredTransaction{
			Date:      tx.Date,
			Amount:    tx.Amount.InexactFloat64(),
			Ceiling:   tx.Ceiling.InexactFloat64(),
			Remanent:  tx.Remanent.Round(2).InexactFloat64(),
			InKPeriod: tx.InKPeriod,
			KLabels:   tx.KLabels,
		})
	}

	return out
}

func toReturnsResponse(result *domain.ProjectionResult) returnsResponse {
	windows := make([]savingsWindowPayload, 0, len(result.SavingsByDates))
	for _, w := range result.SavingsByDates {
		windows = append(windows, savingsWindowPayload{
			Start:      w.Start.Format(domain.DateLayout),
			End:        w.End.Format(domain.DateLayout),
			Amount:     w.Amount.InexactFloat64(),
			Profit:     w.Profit.InexactFloat64(),
			TaxBenefit: w.TaxBenefit.InexactFloat64(),
		})
	}

	return returnsResponse{
		TotalTransactionAmount: result.TotalTransactionAmount.InexactFloat64(),
		TotalCeiling:           result.TotalCeiling.InexactFloat64(),
		SavingsByDates:         windows,
	}
}
