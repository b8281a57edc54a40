package pgsql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	"github.com/SscSPs/tally_cloud_sync/internal/models"
	"github.com/SscSPs/tally_cloud_sync/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecordRepository stores every synced entity. Key fields are columns and
// the remaining fields live in a JSONB data document.
type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

// scanRecord reads one row in recordSQL column order. The data document is
// scanned raw so decodeData can keep numbers exact.
func scanRecord(entity domain.EntityDescriptor, row pgx.CollectableRow) (models.Record, error) {
	m := models.Record{KeyValues: make([]string, len(entity.KeyFields))}
	var raw []byte
	dest := make([]any, 0, len(entity.KeyFields)+5)
	dest = append(dest, &m.ID, &m.CompanyID)
	for i := range m.KeyValues {
		dest = append(dest, &m.KeyValues[i])
	}
	dest = append(dest, &raw, &m.CreatedAt, &m.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return m, err
	}
	data, err := decodeData(raw)
	if err != nil {
		return m, fmt.Errorf("failed to decode %s data for %s: %w", entity.Table, m.ID, err)
	}
	m.Data = data
	return m, nil
}

func (r *PgxRecordRepository) query(ctx context.Context, entity domain.EntityDescriptor, sql string, args ...any) ([]domain.StoredRecord, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+entity.Table, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Record, error) {
		return scanRecord(entity, row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect "+entity.Table+" rows", err)
	}
	return mapping.ToDomainRecordSlice(entity, records), nil
}

func (r *PgxRecordRepository) queryOne(ctx context.Context, entity domain.EntityDescriptor, sql string, args ...any) (*domain.StoredRecord, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (models.Record, error) {
		return scanRecord(entity, row)
	})
	if err != nil {
		return nil, err
	}
	stored := mapping.ToDomainRecord(entity, m)
	return &stored, nil
}

func (r *PgxRecordRepository) FindRecordByKey(ctx context.Context, entity domain.EntityDescriptor, companyID string, key domain.BusinessKey) (*domain.StoredRecord, error) {
	q := newRecordSQL(entity)
	args := []any{companyID}
	for _, field := range entity.KeyFields {
		args = append(args, key.Value(field))
	}

	record, err := r.queryOne(ctx, entity, q.findByKey(), args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s %s: %w", entity.Table, key.Label(), err)
	}
	return record, nil
}

func (r *PgxRecordRepository) InsertRecord(ctx context.Context, entity domain.EntityDescriptor, record domain.StoredRecord) (*domain.StoredRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	m := mapping.ToModelRecord(entity, record)
	data, err := encodeData(m.Data)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("record data is not valid JSON: " + err.Error())
	}

	args := []any{m.ID, m.CompanyID}
	for _, v := range m.KeyValues {
		args = append(args, v)
	}
	args = append(args, data, m.CreatedAt, m.UpdatedAt)

	inserted, err := r.queryOne(ctx, entity, newRecordSQL(entity).insert(), args...)
	if err != nil {
		return nil, mapWriteError(err, entity.Table+" "+record.Key.Label())
	}
	return inserted, nil
}

func (r *PgxRecordRepository) UpdateRecord(ctx context.Context, entity domain.EntityDescriptor, record domain.StoredRecord) (*domain.StoredRecord, error) {
	data, err := encodeData(record.Data)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("record data is not valid JSON: " + err.Error())
	}

	updated, err := r.queryOne(ctx, entity, newRecordSQL(entity).update(), record.ID, data, record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapWriteError(err, entity.Table+" "+record.ID)
	}
	return updated, nil
}

func (r *PgxRecordRepository) ListRecords(ctx context.Context, entity domain.EntityDescriptor, filter domain.RecordFilter) ([]domain.StoredRecord, error) {
	sql, args, err := newRecordSQL(entity).list(filter)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, entity, sql, args...)
}

func (r *PgxRecordRepository) SearchRecords(ctx context.Context, entity domain.EntityDescriptor, search domain.RecordSearch) ([]domain.StoredRecord, error) {
	sql, args, err := newRecordSQL(entity).search(search)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, entity, sql, args...)
}

func (r *PgxRecordRepository) CountRecords(ctx context.Context, entity domain.EntityDescriptor, companyID string, keyEquals map[string]string) (int64, error) {
	sql, args, err := newRecordSQL(entity).count(companyID, keyEquals)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.Pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count "+entity.Table, err)
	}
	return n, nil
}

// encodeData renders the free-form payload as a JSON document. A nil map is
// stored as an empty object.
func encodeData(data map[string]any) (string, error) {
	if data == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeData parses a stored JSON document. Numbers stay json.Number so
// amounts are returned exactly as the agent sent them. Empty or null
// documents decode to nil.
func decodeData(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}
