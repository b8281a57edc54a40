package dto

import "github.com/SscSPs/tally_cloud_sync/internal/core/domain"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// NewErrorResponse builds an error body.
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Success: false, Detail: detail}
}

// CompaniesResponse lists all known companies.
type CompaniesResponse struct {
	Success   bool             `json:"success"`
	Total     int              `json:"total"`
	Companies []domain.Company `json:"companies"`
}

// ToCompaniesResponse wraps companies in the list envelope.
func ToCompaniesResponse(companies []domain.Company) CompaniesResponse {
	if companies == nil {
		companies = []domain.Company{}
	}
	return CompaniesResponse{Success: true, Total: len(companies), Companies: companies}
}

// CompanyStatsResponse is the per-company rollup.
type CompanyStatsResponse struct {
	Success bool `json:"success"`
	domain.CompanyStats
}

// ToCompanyStatsResponse wraps stats for the API.
func ToCompanyStatsResponse(stats *domain.CompanyStats) CompanyStatsResponse {
	return CompanyStatsResponse{Success: true, CompanyStats: *stats}
}

// SyncStatusResponse lists a company's recent sync history.
type SyncStatusResponse struct {
	Success     bool                      `json:"success"`
	CompanyName string                    `json:"company_name"`
	SyncHistory []domain.SyncHistoryEntry `json:"sync_history"`
}

// ToSyncStatusResponse wraps history entries for the API.
func ToSyncStatusResponse(companyName string, entries []domain.SyncHistoryEntry) SyncStatusResponse {
	if entries == nil {
		entries = []domain.SyncHistoryEntry{}
	}
	return SyncStatusResponse{Success: true, CompanyName: companyName, SyncHistory: entries}
}

// ServiceInfoResponse describes the gateway at its root path.
type ServiceInfoResponse struct {
	App       string            `json:"app"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}
