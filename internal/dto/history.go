package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// ListEntriesParams narrows a history listing. All fields are optional and
// compose with logical AND.
type ListEntriesParams struct {
	CurrencyCode  *string
	OperationType *string
	Limit         int
}

// CreateEntryRequest inserts a history row administratively. The
// rate*quantity=total invariant is not re-validated on this path.
type CreateEntryRequest struct {
	CurrencyCode  string           `json:"currency_code" binding:"required,alphanum,max=10"`
	OperationType string           `json:"operation_type" binding:"required,optype"`
	Rate          *decimal.Decimal `json:"rate" binding:"required"`
	Quantity      *decimal.Decimal `json:"quantity" binding:"required"`
	Total         *decimal.Decimal `json:"total" binding:"required"`
	CreatedAt     *time.Time       `json:"created_at"`
}

// UpdateEntryRequest corrects a history row administratively. Omitted fields
// keep their prior value.
type UpdateEntryRequest struct {
	CurrencyCode  *string          `json:"currency_code" binding:"omitempty,alphanum,max=10"`
	OperationType *string          `json:"operation_type" binding:"omitempty,optype"`
	Rate          *decimal.Decimal `json:"rate"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Total         *decimal.Decimal `json:"total"`
	CreatedAt     *time.Time       `json:"created_at"`
}

// EntryResponse defines the data returned for a history row.
type EntryResponse struct {
	ID            int64           `json:"id"`
	CurrencyCode  string          `json:"currency_code"`
	OperationType string          `json:"operation_type"`
	Rate          decimal.Decimal `json:"rate"`
	Quantity      decimal.Decimal `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToEntryResponse converts a domain.ExchangeEntry to EntryResponse DTO
func ToEntryResponse(e *domain.ExchangeEntry) EntryResponse {
	return EntryResponse{
		ID:            e.EntryID,
		CurrencyCode:  e.CurrencyCode,
		OperationType: string(e.OperationType),
		Rate:          e.Rate,
		Quantity:      e.Quantity,
		Total:         e.Total,
		CreatedAt:     e.CreatedAt,
	}
}

// ToListEntryResponse converts a slice of domain entries to DTOs
func ToListEntryResponse(entries []domain.ExchangeEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}
