package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTurnover is one calendar day (UTC) of aggregated exchange activity.
// Days without activity are omitted, not zero-filled.
type DailyTurnover struct {
	Day       time.Time       `json:"day"`
	Purchases decimal.Decimal `json:"purchases"` // Sum of totals of Purchase entries
	Sales     decimal.Decimal `json:"sales"`     // Sum of totals of Sale entries
	Profit    decimal.Decimal `json:"profit"`    // Flat 10% margin on sales
}

// DistributionSlice is the per-currency share of turnover for one operation
// type, used for pie charts. The base currency is never included.
type DistributionSlice struct {
	CurrencyCode string          `json:"currency_code"`
	Total        decimal.Decimal `json:"total"`
}

// Distribution groups turnover by currency, split by operation type.
type Distribution struct {
	Purchases []DistributionSlice `json:"purchases"`
	Sales     []DistributionSlice `json:"sales"`
}

// CurrencyPerformance contrasts average acquisition and disposal rates for
// one foreign currency over a window.
type CurrencyPerformance struct {
	CurrencyCode    string          `json:"currency_code"`
	AvgPurchaseRate decimal.Decimal `json:"avg_purchase_rate"` // 0 if no purchases
	AvgSaleRate     decimal.Decimal `json:"avg_sale_rate"`     // 0 if no sales
	Profit          decimal.Decimal `json:"profit"`            // (avgSale - avgPurchase) * soldQty
}

// DashboardReport composes the three analytics shapes for one time window.
type DashboardReport struct {
	Daily         []DailyTurnover       `json:"daily"`
	Distribution  Distribution          `json:"distribution"`
	Profitability []CurrencyPerformance `json:"profitability"`
}
