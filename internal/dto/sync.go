package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
)

// ErrEmptyBody is returned by ParseSyncBody when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// SyncRequest is one batch pushed by the desktop agent.
type SyncRequest struct {
	CompanyName string
	Records     []domain.Record
}

// ParseSyncBody accepts either {"company_name": ..., "<payloadField>": [...]}
// or a bare JSON array of records, in which case companyParam names the
// company. Numbers are kept as json.Number so amounts round-trip unchanged.
// Array elements that are not objects become empty records, which the
// reconciler skips.
func ParseSyncBody(body io.Reader, payloadField, companyParam string) (*SyncRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrEmptyBody
	}

	req := &SyncRequest{CompanyName: companyParam}
	var items []any

	switch raw[0] {
	case '[':
		if err := decodeJSON(raw, &items); err != nil {
			return nil, err
		}
	case '{':
		var envelope map[string]json.RawMessage
		if err := decodeJSON(raw, &envelope); err != nil {
			return nil, err
		}
		if nameRaw, ok := envelope["company_name"]; ok {
			var name string
			if err := json.Unmarshal(nameRaw, &name); err != nil {
				return nil, fmt.Errorf("company_name must be a string")
			}
			req.CompanyName = name
		}
		if payload, ok := envelope[payloadField]; ok && !bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
			if err := decodeJSON(payload, &items); err != nil {
				return nil, fmt.Errorf("%s must be an array of objects: %w", payloadField, err)
			}
		}
	default:
		return nil, fmt.Errorf("request body must be a JSON object or array")
	}

	req.Records = make([]domain.Record, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			req.Records[i] = domain.Record(obj)
		} else {
			req.Records[i] = domain.Record{}
		}
	}
	return req, nil
}

func decodeJSON(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("invalid JSON: trailing data after value")
	}
	return nil
}

// SyncResponse is returned by every sync endpoint.
type SyncResponse struct {
	Success       bool            `json:"success"`
	Company       string          `json:"company"`
	CompanyID     string          `json:"company_id"`
	SyncType      domain.SyncType `json:"sync_type"`
	Total         int             `json:"total"`
	Synced        int             `json:"synced"`
	Skipped       int             `json:"skipped"`
	Failed        int             `json:"failed"`
	Errors        []string        `json:"errors,omitempty"`
	AuditRecorded bool            `json:"audit_recorded"`
}

// ToSyncResponse renders a sync result. Errors are bounded to
// domain.MaxReportedErrors; Failed is the full count.
func ToSyncResponse(result *domain.SyncResult) SyncResponse {
	return SyncResponse{
		Success:       true,
		Company:       result.Company.Name,
		CompanyID:     result.Company.ID,
		SyncType:      result.Outcome.SyncType,
		Total:         result.Outcome.Total,
		Synced:        result.Outcome.Synced(),
		Skipped:       result.Outcome.Skipped,
		Failed:        result.Outcome.Failed(),
		Errors:        result.Outcome.ReportedErrors(),
		AuditRecorded: result.AuditErr == nil,
	}
}
