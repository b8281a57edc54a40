package domain

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Record is one loosely-shaped row as sent by the desktop agent. Only the
// descriptor's key fields are contractually required.
type Record map[string]any

// Fields owned by the gateway. Caller-supplied values for them are dropped.
const (
	FieldID        = "id"
	FieldCompanyID = "company_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

var reservedFields = map[string]struct{}{
	FieldID:        {},
	FieldCompanyID: {},
	FieldCreatedAt: {},
	FieldUpdatedAt: {},
}

// UnknownKeyLabel labels error messages for records without a usable key.
const UnknownKeyLabel = "Unknown"

// KeyPart is one field of a business key.
type KeyPart struct {
	Field string
	Value string
}

// BusinessKey is the ordered set of key values identifying a record within a company.
type BusinessKey []KeyPart

// Value returns the value for field, or "" if the key has no such field.
func (k BusinessKey) Value(field string) string {
	for _, p := range k {
		if p.Field == field {
			return p.Value
		}
	}
	return ""
}

// Values returns the key values in descriptor order.
func (k BusinessKey) Values() []string {
	out := make([]string, len(k))
	for i, p := range k {
		out[i] = p.Value
	}
	return out
}

// Label renders the key for error messages, e.g. "INV-1/receivable".
func (k BusinessKey) Label() string {
	if len(k) == 0 {
		return UnknownKeyLabel
	}
	return strings.Join(k.Values(), "/")
}

// ExtractKey reads and trims the descriptor's key fields from r. It returns
// false when any of them is missing or blank after trimming.
func ExtractKey(d EntityDescriptor, r Record) (BusinessKey, bool) {
	key := make(BusinessKey, 0, len(d.KeyFields))
	for _, field := range d.KeyFields {
		raw, ok := r[field]
		if !ok || raw == nil {
			return nil, false
		}
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}
		key = append(key, KeyPart{Field: field, Value: s})
	}
	return key, true
}

// Payload returns a copy of r without reserved and key fields. This is the
// free-form part persisted alongside the key columns.
func (r Record) Payload(d EntityDescriptor) Record {
	out := make(Record, len(r))
	for k, v := range r {
		if _, reserved := reservedFields[k]; reserved {
			continue
		}
		if d.IsKeyField(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// LabelFor returns the trimmed key label of r, or UnknownKeyLabel.
func LabelFor(d EntityDescriptor, r Record) string {
	key, ok := ExtractKey(d, r)
	if !ok {
		return UnknownKeyLabel
	}
	return key.Label()
}

// StoredRecord is a persisted entity row.
type StoredRecord struct {
	ID        string
	CompanyID string
	Key       BusinessKey
	Data      Record
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Flatten merges the free-form data with the owned columns into the flat
// shape returned to API clients.
func (s StoredRecord) Flatten() Record {
	out := make(Record, len(s.Data)+len(s.Key)+4)
	for k, v := range s.Data {
		out[k] = v
	}
	for _, p := range s.Key {
		out[p.Field] = p.Value
	}
	out[FieldID] = s.ID
	out[FieldCompanyID] = s.CompanyID
	out[FieldCreatedAt] = s.CreatedAt
	out[FieldUpdatedAt] = s.UpdatedAt
	return out
}

// FlattenAll flattens a slice of stored records.
func FlattenAll(records []StoredRecord) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Flatten()
	}
	return out
}

// RecordFilter selects rows for listing. An empty CompanyID lists all companies.
type RecordFilter struct {
	CompanyID string
	KeyEquals map[string]string
	Limit     int
	Offset    int
}

// RecordSearch describes a case-insensitive substring search on the
// descriptor's search field.
type RecordSearch struct {
	CompanyID string
	Query     string
	Limit     int
}
