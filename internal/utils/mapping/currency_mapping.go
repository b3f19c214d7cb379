package mapping

import (
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	"github.com/somkassa/exchange_office_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		Code:            d.Code,
		Quantity:        d.Quantity,
		DefaultBuyRate:  d.DefaultBuyRate,
		DefaultSellRate: d.DefaultSellRate,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Code:            m.Code,
		Quantity:        m.Quantity,
		DefaultBuyRate:  m.DefaultBuyRate,
		DefaultSellRate: m.DefaultSellRate,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
