package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/apperrors"
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/metrics"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// syncService reconciles agent batches against the record store.
type syncService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
	companies  portssvc.CompanyResolverSvc
	audit      portssvc.AuditSvc
	metrics    *metrics.SyncMetrics
	validate   *validator.Validate
}

// SyncServiceOption configures optional collaborators of the sync service.
type SyncServiceOption func(*syncService)

// WithSyncMetrics records batch outcomes on m.
func WithSyncMetrics(m *metrics.SyncMetrics) SyncServiceOption {
	return func(s *syncService) {
		s.metrics = m
	}
}

// WithSyncClock overrides the wall clock used for created_at, updated_at and
// the audit timestamps.
func WithSyncClock(now func() time.Time) SyncServiceOption {
	return func(s *syncService) {
		s.now = now
	}
}

// NewSyncService creates a new sync service.
func NewSyncService(
	recordRepo portsrepo.RecordRepositoryFacade,
	companies portssvc.CompanyResolverSvc,
	audit portssvc.AuditSvc,
	opts ...SyncServiceOption,
) portssvc.SyncSvcFacade {
	s := &syncService{
		recordRepo: recordRepo,
		companies:  companies,
		audit:      audit,
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

// SyncBatch resolves the company, reconciles every record and appends one
// audit entry. Only a resolver failure aborts the call. A failed audit append
// is reported on the result, the record writes stand.
func (s *syncService) SyncBatch(ctx context.Context, entity domain.EntityDescriptor, companyName string, records []domain.Record) (*domain.SyncResult, error) {
	company, err := s.companies.ResolveCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}

	startedAt := s.Now()
	outcome := s.Reconcile(ctx, company.ID, entity, records)
	completedAt := s.Now()
	s.metrics.ObserveBatch(outcome, completedAt.Sub(startedAt))

	result := &domain.SyncResult{Company: *company, Outcome: outcome}

	// The request may have been cancelled mid-batch; the audit row must still land.
	auditCtx := context.WithoutCancel(ctx)
	entry, err := s.audit.RecordSync(auditCtx, company.ID, outcome, startedAt, completedAt)
	if err != nil {
		s.metrics.AuditFailed(entity.Type)
		result.AuditErr = err
	} else {
		result.AuditEntry = entry
	}

	s.LogInfo(ctx, "Sync batch reconciled",
		zap.String("company", company.Name),
		zap.String("sync_type", string(entity.Type)),
		zap.Int("total", outcome.Total),
		zap.Int("created", outcome.Created),
		zap.Int("updated", outcome.Updated),
		zap.Int("skipped", outcome.Skipped),
		zap.Int("failed", outcome.Failed()),
		zap.Bool("audit_recorded", result.AuditErr == nil),
	)
	return result, nil
}

// Reconcile applies records in input order. Later records with the same key
// update what earlier ones wrote.
func (s *syncService) Reconcile(ctx context.Context, companyID string, entity domain.EntityDescriptor, records []domain.Record) *domain.BatchOutcome {
	outcome := domain.NewBatchOutcome(entity.Type, len(records))

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			for _, rest := range records[i:] {
				outcome.Add(domain.OutcomeFailed, domain.LabelFor(entity, rest), err)
			}
			s.LogWarn(ctx, "Sync batch interrupted",
				zap.String("sync_type", string(entity.Type)),
				zap.Int("unprocessed", len(records)-i),
				zap.Error(err),
			)
			break
		}

		key, ok := domain.ExtractKey(entity, record)
		if !ok {
			outcome.Add(domain.OutcomeSkipped, "", nil)
			continue
		}

		result, err := s.reconcileOne(ctx, companyID, entity, key, record)
		if err != nil {
			s.LogDebug(ctx, "Record failed to reconcile",
				zap.String("sync_type", string(entity.Type)),
				zap.String("key", key.Label()),
				zap.Error(err),
			)
			outcome.Add(domain.OutcomeFailed, key.Label(), err)
			continue
		}
		outcome.Add(result, "", nil)
	}
	return outcome
}

func (s *syncService) reconcileOne(ctx context.Context, companyID string, entity domain.EntityDescriptor, key domain.BusinessKey, record domain.Record) (domain.RecordOutcome, error) {
	if err := s.checkKeyRules(entity, key); err != nil {
		return domain.OutcomeFailed, err
	}

	now := s.Now()
	row := domain.StoredRecord{
		CompanyID: companyID,
		Key:       key,
		Data:      record.Payload(entity),
		UpdatedAt: now,
	}

	existing, err := s.recordRepo.FindRecordByKey(ctx, entity, companyID, key)
	switch {
	case err == nil:
		row.ID = existing.ID
		if _, err := s.recordRepo.UpdateRecord(ctx, entity, row); err != nil {
			return domain.OutcomeFailed, err
		}
		return domain.OutcomeUpdated, nil
	case errors.Is(err, apperrors.ErrNotFound):
		row.CreatedAt = now
		if _, err := s.recordRepo.InsertRecord(ctx, entity, row); err != nil {
			return domain.OutcomeFailed, err
		}
		return domain.OutcomeCreated, nil
	default:
		return domain.OutcomeFailed, err
	}
}

func (s *syncService) checkKeyRules(entity domain.EntityDescriptor, key domain.BusinessKey) error {
	for _, part := range key {
		if strings.ContainsRune(part.Value, 0) {
			return apperrors.NewValidationFailedError(fmt.Sprintf("invalid %s: contains a NUL byte", part.Field))
		}
	}
	for field, rule := range entity.KeyRules {
		value := key.Value(field)
		if err := s.validate.Var(value, rule); err != nil {
			return apperrors.NewValidationFailedError(fmt.Sprintf("invalid %s %q", field, value))
		}
	}
	return nil
}
