package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTurnoverRow is one day-bucketed aggregation row from the history table.
type DailyTurnoverRow struct {
	Day       time.Time
	Purchases decimal.Decimal
	Sales     decimal.Decimal
}

// DistributionRow is one (currency, operation type) turnover sum.
type DistributionRow struct {
	CurrencyCode  string
	OperationType string
	Total         decimal.Decimal
}

// CurrencyTotalsRow carries per-currency purchase/sale sums over a window.
// Quantities are foreign-currency units, totals are SOM.
type CurrencyTotalsRow struct {
	CurrencyCode  string
	PurchaseTotal decimal.Decimal
	PurchaseQty   decimal.Decimal
	SaleTotal     decimal.Decimal
	SaleQty       decimal.Decimal
}
