package pgsql

import (
	"context"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	"github.com/SscSPs/tally_cloud_sync/internal/models"
	"github.com/SscSPs/tally_cloud_sync/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// listSyncHistorySQL returns newest first. seq is an identity column, so rows
// sharing a started_at come back in reverse insertion order.
const listSyncHistorySQL = `
		SELECT id, company_id, sync_type, records_synced, status, error_message, started_at, completed_at
		FROM sync_history
		WHERE company_id = $1
		ORDER BY started_at DESC, seq DESC
		LIMIT $2;
	`

type PgxSyncHistoryRepository struct {
	BaseRepository
}

// newPgxSyncHistoryRepository creates a new repository for the sync audit log.
func newPgxSyncHistoryRepository(pool *pgxpool.Pool) portsrepo.SyncHistoryRepositoryFacade {
	return &PgxSyncHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SyncHistoryRepositoryFacade = (*PgxSyncHistoryRepository)(nil)

func (r *PgxSyncHistoryRepository) SaveSyncHistory(ctx context.Context, entry domain.SyncHistoryEntry) (*domain.SyncHistoryEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	m := mapping.ToModelSyncHistory(entry)

	query := `
		INSERT INTO sync_history (
			id, company_id, sync_type, records_synced, status, error_message, started_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.CompanyID,
		m.SyncType,
		m.RecordsSynced,
		m.Status,
		m.ErrorMessage,
		m.StartedAt,
		m.CompletedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "sync history for company "+m.CompanyID)
	}
	return &entry, nil
}

func (r *PgxSyncHistoryRepository) ListSyncHistory(ctx context.Context, companyID string, limit int) ([]domain.SyncHistoryEntry, error) {
	rows, err := r.Pool.Query(ctx, listSyncHistorySQL, companyID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sync history", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SyncHistory])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect sync history rows", err)
	}
	return mapping.ToDomainSyncHistorySlice(entries), nil
}
