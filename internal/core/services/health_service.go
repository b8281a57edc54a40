package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
)

type healthService struct {
	store portsrepo.HealthChecker
}

// NewHealthService reports the record store's reachability.
func NewHealthService(store portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{store: store}
}

func (s *healthService) Check(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("record store unreachable: %w", err)
	}
	return nil
}
