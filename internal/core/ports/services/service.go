package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Company   CompanySvcFacade
	Sync      SyncSvcFacade
	Audit     AuditSvc
	Record    RecordSvcFacade
	Reporting ReportingService
	Health    HealthSvc
}

// HealthSvc reports readiness of the gateway's dependencies.
type HealthSvc interface {
	Check(ctx context.Context) error
}
