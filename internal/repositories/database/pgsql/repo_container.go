package pgsql

import (
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over one shared
// connection pool and hands them back behind their port interfaces.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		DebtRepo:        newPgxDebtRepository(pool),
		PreferencesRepo: newPgxPreferencesRepository(pool),
		FamilyRepo:      newPgxFamilyGrantRepository(pool),
	}
}
