package pgsql

import (
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		RecordRepo:      newPgxRecordRepository(dbPool),
		SyncHistoryRepo: newPgxSyncHistoryRepository(dbPool),
		Health:          &BaseRepository{Pool: dbPool},
	}
}
