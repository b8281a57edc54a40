package mapping

import (
	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/SscSPs/tally_cloud_sync/internal/models"
)

// ToModelRecord converts a domain StoredRecord to a model Record. Key values
// follow the descriptor's KeyFields order.
func ToModelRecord(entity domain.EntityDescriptor, d domain.StoredRecord) models.Record {
	keyValues := make([]string, len(entity.KeyFields))
	for i, field := range entity.KeyFields {
		keyValues[i] = d.Key.Value(field)
	}
	return models.Record{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		KeyValues: keyValues,
		Data:      d.Data,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainRecord converts a model Record to a domain StoredRecord
func ToDomainRecord(entity domain.EntityDescriptor, m models.Record) domain.StoredRecord {
	key := make(domain.BusinessKey, 0, len(entity.KeyFields))
	for i, field := range entity.KeyFields {
		var value string
		if i < len(m.KeyValues) {
			value = m.KeyValues[i]
		}
		key = append(key, domain.KeyPart{Field: field, Value: value})
	}
	data := domain.Record(m.Data)
	if data == nil {
		data = domain.Record{}
	}
	return domain.StoredRecord{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Key:       key,
		Data:      data,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainRecordSlice converts a slice of model Records to domain StoredRecords
func ToDomainRecordSlice(entity domain.EntityDescriptor, ms []models.Record) []domain.StoredRecord {
	ds := make([]domain.StoredRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(entity, m)
	}
	return ds
}
