// Package http is the transport adapter: it decodes request bodies into
// the core data model, invokes the pure usecases, and serializes results
// back to the wire format of the original service.
package http

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/omrawal/blackrock-challenge/internal/domain"
	"github.com/omrawal/blackrock-challenge/internal/usecase/periods"
	"github.com/omrawal/blackrock-challenge/internal/usecase/projector"
	"github.com/omrawal/blackrock-challenge/internal/usecase/rounding"
	"github.com/omrawal/blackrock-challenge/internal/usecase/validator"
)

const apiPrefix = "/blackrock/challenge/v1"

// Server wires the savings-calculator usecases to Fiber routes.
type Server struct {
	logger  *zap.Logger
	started time.Time
}

// NewServer creates a transport server. The start time anchors the
// uptime figure on the performance endpoint.
func NewServer(logger *zap.Logger) *Server {
	return &Server{
		logger:  logger,
		started: time.Now(),
	}
}

// RegisterRoutes mounts all endpoints on the app. Colons in the original
// API paths are escaped so Fiber treats them as literals, not params.
func (s *Server) RegisterRoutes(app *fiber.App) {
	app.Use(RequestLogger(s.logger))

	app.Post(apiPrefix+`/transactions\:parse`, s.handleParse)
	app.Post(apiPrefix+`/transactions\:validator`, s.handleValidate)
	app.Post(apiPrefix+`/transactions\:filter`, s.handleFilter)
	app.Post(apiPrefix+`/returns\:nps`, s.handleReturns(domain.VehicleNPS))
	app.Post(apiPrefix+`/returns\:index`, s.handleReturns(domain.VehicleIndex))
	app.Get(apiPrefix+"/performance", s.handlePerformance)
	app.Get("/health", s.handleHealth)
}

// handleParse enriches raw expenses with ceiling and remanent values.
// No validation happens here; every record is enriched as-is.
func (s *Server) handleParse(c *fiber.Ctx) error {
	var payloads []transactionPayload
	if err := c.BodyParser(&payloads); err != nil {
		return badRequest(c, "Invalid JSON body")
	}

	out := make([]parsedTransaction, 0, len(payloads))
	for _, tx := range toDomainTransactions(payloads) {
		ceiling, remanent := rounding.Ceil(tx.Amount)
		out = append(out, parsedTransaction{
			Date:     tx.Date,
			Amount:   tx.Amount.InexactFloat64(),
			Ceiling:  ceiling.InexactFloat64(),
			Remanent: remanent.Round(2).InexactFloat64(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// handleValidate splits a batch into valid and invalid records. Wage is
// accepted for interface compatibility but does not affect per-record
// validity; it is consumed by the returns endpoints.
func (s *Server) handleValidate(c *fiber.Ctx) error {
	var req validateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON body")
	}

	result := validator.Validate(toDomainTransactions(req.Transactions))

	return c.Status(fiber.StatusOK).JSON(validateResponse{
		Valid:   toValidResponse(result.Valid),
		Invalid: toInvalidResponse(result.Invalid),
	})
}

// handleFilter validates, then applies the q/p/k period rules. Invalid
// records are reported alongside the adjusted valid ones.
func (s *Server) handleFilter(c *fiber.Ctx) error {
	var req filterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON body")
	}

	q, p, k, err := parsePeriods(req.Q, req.P, req.K)
	if err != nil {
		return s.mapError(c, err)
	}

	result := validator.Validate(toDomainTransactions(req.Transactions))
	adjusted := periods.Apply(result.Valid, q, p, k)

	return c.Status(fiber.StatusOK).JSON(filterResponse{
		Valid:   toFilteredResponse(adjusted),
		Invalid: toInvalidResponse(result.Invalid),
	})
}

// handleReturns runs the full pipeline for the given vehicle: validate,
// apply period rules, then project returns. Invalid transactions are
// excluded from monetary aggregation.
func (s *Server) handleReturns(vehicle domain.Vehicle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req returnsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid JSON body")
		}

		if req.Age == nil {
			return s.mapError(c, fmt.Errorf("%w: age is required", domain.ErrInvalidInput))
		}

		if req.Wage == nil {
			return s.mapError(c, fmt.Errorf("%w: wage is required", domain.ErrInvalidInput))
		}

		q, p, k, err := parsePeriods(req.Q, req.P, req.K)
		if err != nil {
			return s.mapError(c, err)
		}

		result := validator.Validate(toDomainTransactions(req.Transactions))
		adjusted := periods.Apply(result.Valid, q, p, k)

		projection, err := projector.Project(projector.Input{
			Transactions: adjusted,
			Age:          *req.Age,
			Wage:         decimal.NewFromFloat(*req.Wage),
			InflationPct: decimal.NewFromFloat(req.Inflation),
			Vehicle:      vehicle,
		})
		if err != nil {
			return s.mapError(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(toReturnsResponse(projection))
	}
}

// handlePerformance reports process uptime, heap usage and goroutine
// count (the Go analogue of the original's thread count).
func (s *Server) handlePerformance(c *fiber.Ctx) error {
	uptime := time.Since(s.started)
	h := int(uptime.Hours())
	m := int(uptime.Minutes()) % 60
	sec := int(uptime.Seconds()) % 60
	ms := int(uptime.Milliseconds()) % 1000

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"time":    fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, sec, ms),
		"memory":  fmt.Sprintf("%.2f MB", float64(mem.Alloc)/(1024*1024)),
		"threads": runtime.NumGoroutine(),
	})
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": "blackrock-retirement-api",
	})
}

// mapError converts core error kinds to HTTP responses so the caller
// can distinguish bad input from an unknown vehicle from a server fault.
func (s *Server) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidVehicle):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error:   "Invalid Vehicle",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Error:   "Bad Request",
		Message: message,
	})
}

func parsePeriods(
	q []qPeriodPayload, p []pPeriodPayload, k []kPeriodPayload,
) ([]domain.QPeriod, []domain.PPeriod, []domain.KPeriod, error) {
	qPeriods, err := toQPeriods(q)
	if err != nil {
		return nil, nil, nil, err
	}

	pPeriods, err := toPPeriods(p)
	if err != nil {
		return nil, nil, nil, err
	}

	kPeriods, err := toKPeriods(k)
	if err != nil {
		return nil, nil, nil, err
	}

	return qPeriods, pPeriods, kPeriods, nil
}
