package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql-backed repositories over a shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		HistoryRepo:   newPgxHistoryRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
		SystemRepo:    newPgxSystemRepository(dbPool),
	}
}
