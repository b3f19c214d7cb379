package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
)

// profitMargin is the placeholder flat margin applied to sale turnover in the
// daily report until realized margins replace it.
var profitMargin = decimal.NewFromFloat(0.10)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the read-only analytics engine.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure implementation matches interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: range end precedes start", apperrors.ErrInvalidDateRange)
	}
	return nil
}

// DailyTurnover aggregates purchase and sale totals per UTC calendar day,
// ascending, with a flat margin on sales as the profit column. Days without
// activity are omitted.
func (s *reportingService) DailyTurnover(ctx context.Context, from, to time.Time) ([]domain.DailyTurnover, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetDailyTurnover(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DailyTurnover, len(rows))
	for i, row := range rows {
		result[i] = domain.DailyTurnover{
			Day:       row.Day,
			Purchases: row.Purchases,
			Sales:     row.Sales,
			Profit:    row.Sales.Mul(profitMargin).Round(2),
		}
	}
	return result, nil
}

// Distribution groups turnover per currency, split by operation type.
func (s *reportingService) Distribution(ctx context.Context, from, to time.Time, currencyCode *string) (*domain.Distribution, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetDistribution(ctx, from, to, currencyCode)
	if err != nil {
		return nil, err
	}

	dist := &domain.Distribution{
		Purchases: []domain.DistributionSlice{},
		Sales:     []domain.DistributionSlice{},
	}
	for _, row := range rows {
		slice := domain.DistributionSlice{CurrencyCode: row.CurrencyCode, Total: row.Total}
		switch domain.OperationType(row.OperationType) {
		case domain.Purchase:
			dist.Purchases = append(dist.Purchases, slice)
		case domain.Sale:
			dist.Sales = append(dist.Sales, slice)
		}
	}
	return dist, nil
}

// Profitability contrasts average acquisition and disposal rates per foreign
// currency and ranks by realized margin, best first.
func (s *reportingService) Profitability(ctx context.Context, from, to time.Time) ([]domain.CurrencyPerformance, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetCurrencyTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CurrencyPerformance, 0, len(rows))
	for _, row := range rows {
		perf := domain.CurrencyPerformance{CurrencyCode: row.CurrencyCode}
		if row.PurchaseQty.IsPositive() {
			perf.AvgPurchaseRate = row.PurchaseTotal.Div(row.PurchaseQty).Round(4)
		}
		if row.SaleQty.IsPositive() {
			perf.AvgSaleRate = row.SaleTotal.Div(row.SaleQty).Round(4)
		}
		// Margin is only realized on what was actually sold.
		perf.Profit = perf.AvgSaleRate.Sub(perf.AvgPurchaseRate).Mul(row.SaleQty).Round(2)
		result = append(result, perf)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Profit.GreaterThan(result[j].Profit)
	})
	return result, nil
}

// Dashboard composes all three reports for one window. Each sub-report that
// fails degrades to its empty shape so one bad aggregate does not blank the
// whole dashboard.
func (s *reportingService) Dashboard(ctx context.Context, from, to time.Time) (*domain.DashboardReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{
		Daily:         []domain.DailyTurnover{},
		Distribution:  domain.Distribution{Purchases: []domain.DistributionSlice{}, Sales: []domain.DistributionSlice{}},
		Profitability: []domain.CurrencyPerformance{},
	}

	if daily, err := s.DailyTurnover(ctx, from, to); err != nil {
		s.LogError(ctx, "dashboard daily turnover failed", "error", err)
	} else {
		report.Daily = daily
	}

	if dist, err := s.Distribution(ctx, from, to, nil); err != nil {
		s.LogError(ctx, "dashboard distribution failed", "error", err)
	} else {
		report.Distribution = *dist
	}

	if perf, err := s.Profitability(ctx, from, to); err != nil {
		s.LogError(ctx, "dashboard profitability failed", "error", err)
	} else {
		report.Profitability = perf
	}

	return report, nil
}
