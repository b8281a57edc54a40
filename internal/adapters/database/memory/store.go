// Package memory is an in-process Record Store. It enforces the same
// uniqueness and merge semantics as the PostgreSQL schema and is used by
// tests and by STORE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type table struct {
	rows  map[string]*domain.StoredRecord
	byKey map[string]string
}

// Store holds every table behind one lock.
type Store struct {
	mu        sync.RWMutex
	companies map[string]domain.Company
	tables    map[string]*table
	history   []domain.SyncHistoryEntry
	now       func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		companies: make(map[string]domain.Company),
		tables:    make(map[string]*table),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NewRepositoryProvider exposes s through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:     s,
		RecordRepo:      s,
		SyncHistoryRepo: s,
		Health:          s,
	}
}

var (
	_ portsrepo.CompanyRepositoryFacade     = (*Store)(nil)
	_ portsrepo.RecordRepositoryFacade      = (*Store)(nil)
	_ portsrepo.SyncHistoryRepositoryFacade = (*Store)(nil)
	_ portsrepo.HealthChecker               = (*Store)(nil)
)

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// --- companies ---

func (s *Store) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[name]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.companies[company.Name]; exists {
		return nil, apperrors.NewConflictError("company " + company.Name + " already exists")
	}
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = s.now()
	}
	s.companies[company.Name] = company
	return &company, nil
}

// --- records ---

func (s *Store) tableFor(entity domain.EntityDescriptor) *table {
	t, ok := s.tables[entity.Table]
	if !ok {
		t = &table{rows: make(map[string]*domain.StoredRecord), byKey: make(map[string]string)}
		s.tables[entity.Table] = t
	}
	return t
}

func keyIndex(companyID string, key domain.BusinessKey) string {
	return companyID + "\x00" + strings.Join(key.Values(), "\x00")
}

func (s *Store) FindRecordByKey(ctx context.Context, entity domain.EntityDescriptor, companyID string, key domain.BusinessKey) (*domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := s.tables[entity.Table]
	if t == nil {
		return nil, apperrors.ErrNotFound
	}
	id, ok := t.byKey[keyIndex(companyID, key)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return cloneRecord(t.rows[id]), nil
}

func (s *Store) InsertRecord(ctx context.Context, entity domain.EntityDescriptor, record domain.StoredRecord) (*domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tableFor(entity)
	idx := keyIndex(record.CompanyID, record.Key)
	if _, exists := t.byKey[idx]; exists {
		return nil, apperrors.NewConflictError(entity.Table + " " + record.Key.Label() + " already exists")
	}
	stored := cloneRecord(&record)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	t.rows[stored.ID] = stored
	t.byKey[idx] = stored.ID
	return cloneRecord(stored), nil
}

func (s *Store) UpdateRecord(ctx context.Context, entity domain.EntityDescriptor, record domain.StoredRecord) (*domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tables[entity.Table]
	if t == nil {
		return nil, apperrors.ErrNotFound
	}
	existing, ok := t.rows[record.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if existing.Data == nil {
		existing.Data = make(domain.Record, len(record.Data))
	}
	for k, v := range record.Data {
		existing.Data[k] = v
	}
	existing.UpdatedAt = record.UpdatedAt
	return cloneRecord(existing), nil
}

func (s *Store) matching(entity domain.EntityDescriptor, companyID string, keyEquals map[string]string, pred func(*domain.StoredRecord) bool) []domain.StoredRecord {
	t := s.tables[entity.Table]
	if t == nil {
		return []domain.StoredRecord{}
	}
	out := make([]domain.StoredRecord, 0)
	for _, r := range t.rows {
		if companyID != "" && r.CompanyID != companyID {
			continue
		}
		if !keysMatch(r.Key, keyEquals) {
			continue
		}
		if pred != nil && !pred(r) {
			continue
		}
		out = append(out, *cloneRecord(r))
	}
	orderBy := entity.OrderBy
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key.Value(orderBy), out[j].Key.Value(orderBy)
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func keysMatch(key domain.BusinessKey, want map[string]string) bool {
	for field, value := range want {
		if key.Value(field) != value {
			return false
		}
	}
	return true
}

func (s *Store) ListRecords(ctx context.Context, entity domain.EntityDescriptor, filter domain.RecordFilter) ([]domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.matching(entity, filter.CompanyID, filter.KeyEquals, nil)
	return page(rows, filter.Offset, filter.Limit), nil
}

func (s *Store) SearchRecords(ctx context.Context, entity domain.EntityDescriptor, search domain.RecordSearch) ([]domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(search.Query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.matching(entity, search.CompanyID, nil, func(r *domain.StoredRecord) bool {
		return strings.Contains(strings.ToLower(r.Key.Value(entity.SearchField)), needle)
	})
	return page(rows, 0, search.Limit), nil
}

func (s *Store) CountRecords(ctx context.Context, entity domain.EntityDescriptor, companyID string, keyEquals map[string]string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(entity, companyID, keyEquals, nil))), nil
}

func page(rows []domain.StoredRecord, offset, limit int) []domain.StoredRecord {
	if offset >= len(rows) {
		return []domain.StoredRecord{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func cloneRecord(r *domain.StoredRecord) *domain.StoredRecord {
	c := *r
	c.Key = append(domain.BusinessKey(nil), r.Key...)
	c.Data = make(domain.Record, len(r.Data))
	for k, v := range r.Data {
		c.Data[k] = v
	}
	return &c
}

// --- sync history ---

func (s *Store) SaveSyncHistory(ctx context.Context, entry domain.SyncHistoryEntry) (*domain.SyncHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.history = append(s.history, entry)
	return &entry, nil
}

func (s *Store) ListSyncHistory(ctx context.Context, companyID string, limit int) ([]domain.SyncHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SyncHistoryEntry, 0)
	// newest first; appends are chronological so walk backwards
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].CompanyID != companyID {
			continue
		}
		out = append(out, s.history[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
