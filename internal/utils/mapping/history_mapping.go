package mapping

import (
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	"github.com/somkassa/exchange_office_app/internal/models"
)

// ToModelExchangeEntry converts a domain ExchangeEntry to a model ExchangeEntry
func ToModelExchangeEntry(d domain.ExchangeEntry) models.ExchangeEntry {
	return models.ExchangeEntry{
		EntryID:       d.EntryID,
		CurrencyCode:  d.CurrencyCode,
		OperationType: string(d.OperationType),
		Rate:          d.Rate,
		Quantity:      d.Quantity,
		Total:         d.Total,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainExchangeEntry converts a model ExchangeEntry to a domain ExchangeEntry
func ToDomainExchangeEntry(m models.ExchangeEntry) domain.ExchangeEntry {
	return domain.ExchangeEntry{
		EntryID:       m.EntryID,
		CurrencyCode:  m.CurrencyCode,
		OperationType: domain.OperationType(m.OperationType),
		Rate:          m.Rate,
		Quantity:      m.Quantity,
		Total:         m.Total,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainExchangeEntrySlice converts a slice of model entries to domain entries
func ToDomainExchangeEntrySlice(ms []models.ExchangeEntry) []domain.ExchangeEntry {
	ds := make([]domain.ExchangeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeEntry(m)
	}
	return ds
}
