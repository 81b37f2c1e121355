package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/projworks/advance_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AdvanceRepo: newPgxAdvanceRepository(dbPool),
		ProjectRepo: newPgxProjectRepository(dbPool),
		StageRepo:   newPgxStageRepository(dbPool),
	}
}
