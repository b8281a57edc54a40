package services

import (
	"time"

	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/metrics"
)

// ContainerOption tunes the services built by NewServiceContainer.
type ContainerOption func(*containerOptions)

type containerOptions struct {
	metrics *metrics.SyncMetrics
	now     func() time.Time
}

// WithMetrics makes the sync service record batch outcomes on m.
func WithMetrics(m *metrics.SyncMetrics) ContainerOption {
	return func(o *containerOptions) {
		o.metrics = m
	}
}

// WithClock replaces the wall clock used to stamp records and audit rows.
func WithClock(now func() time.Time) ContainerOption {
	return func(o *containerOptions) {
		o.now = now
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ...ContainerOption) *portssvc.ServiceContainer {
	o := containerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	container := &portssvc.ServiceContainer{}

	// Company service first since the others resolve names through it
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Audit = NewAuditService(repos.SyncHistoryRepo)

	syncOpts := []SyncServiceOption{WithSyncMetrics(o.metrics)}
	if o.now != nil {
		syncOpts = append(syncOpts, WithSyncClock(o.now))
	}
	container.Sync = NewSyncService(repos.RecordRepo, container.Company, container.Audit, syncOpts...)

	container.Record = NewRecordService(repos.RecordRepo, container.Company)
	container.Reporting = NewReportingService(repos.RecordRepo, container.Company, container.Audit)
	container.Health = NewHealthService(repos.Health)

	return container
}
