package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/SscSPs/tally_cloud_sync/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSyncBody(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		companyParam string
		wantCompany  string
		wantRecords  int
		wantErr      bool
	}{
		{
			name:        "object body",
			body:        `{"company_name":"Acme","ledgers":[{"name":"Cash"},{"name":"Bank"}]}`,
			wantCompany: "Acme",
			wantRecords: 2,
		},
		{
			name:         "bare array uses query company",
			body:         `[{"name":"Cash"}]`,
			companyParam: "Acme",
			wantCompany:  "Acme",
			wantRecords:  1,
		},
		{
			name:         "body company wins over query",
			body:         `{"company_name":"Body Co","ledgers":[]}`,
			companyParam: "Query Co",
			wantCompany:  "Body Co",
		},
		{
			name:        "missing payload is an empty batch",
			body:        `{"company_name":"Acme"}`,
			wantCompany: "Acme",
		},
		{
			name:        "null payload is an empty batch",
			body:        `{"company_name":"Acme","ledgers":null}`,
			wantCompany: "Acme",
		},
		{name: "payload not an array", body: `{"company_name":"Acme","ledgers":{"name":"Cash"}}`, wantErr: true},
		{name: "company not a string", body: `{"company_name":42,"ledgers":[]}`, wantErr: true},
		{name: "scalar body", body: `"hello"`, wantErr: true},
		{name: "broken json", body: `{"company_name":`, wantErr: true},
		{name: "trailing data", body: `[] []`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := dto.ParseSyncBody(strings.NewReader(tt.body), "ledgers", tt.companyParam)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompany, req.CompanyName)
			assert.Len(t, req.Records, tt.wantRecords)
		})
	}
}

func TestParseSyncBody_EmptyBody(t *testing.T) {
	_, err := dto.ParseSyncBody(strings.NewReader("  \n"), "ledgers", "")
	assert.True(t, errors.Is(err, dto.ErrEmptyBody))
}

func TestParseSyncBody_KeepsNumbersExact(t *testing.T) {
	req, err := dto.ParseSyncBody(strings.NewReader(`[{"name":"Cash","closing_balance":12345678901234567.89}]`), "ledgers", "Acme")
	require.NoError(t, err)

	assert.Equal(t, json.Number("12345678901234567.89"), req.Records[0]["closing_balance"])
}

func TestParseSyncBody_NonObjectElementsBecomeEmpty(t *testing.T) {
	req, err := dto.ParseSyncBody(strings.NewReader(`[{"name":"Cash"}, 7, "x", null]`), "ledgers", "Acme")
	require.NoError(t, err)

	require.Len(t, req.Records, 4)
	assert.Equal(t, domain.Record{}, req.Records[1])
	assert.Equal(t, domain.Record{}, req.Records[3])
}

func TestToSyncResponse(t *testing.T) {
	outcome := domain.NewBatchOutcome(domain.SyncTypeLedgers, 14)
	outcome.Add(domain.OutcomeCreated, "", nil)
	outcome.Add(domain.OutcomeSkipped, "", nil)
	for i := 0; i < 12; i++ {
		outcome.Add(domain.OutcomeFailed, "X", errors.New("boom"))
	}

	resp := dto.ToSyncResponse(&domain.SyncResult{
		Company:  domain.Company{ID: "c-1", Name: "Acme"},
		Outcome:  outcome,
		AuditErr: errors.New("down"),
	})

	assert.True(t, resp.Success)
	assert.Equal(t, 14, resp.Total)
	assert.Equal(t, 1, resp.Synced)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 12, resp.Failed)
	assert.Len(t, resp.Errors, domain.MaxReportedErrors)
	assert.False(t, resp.AuditRecorded)
}
