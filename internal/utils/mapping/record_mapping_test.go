package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/core/domain"
	"github.com/SscSPs/tally_cloud_sync/internal/models"
	"github.com/SscSPs/tally_cloud_sync/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestRecordMapping_KeyOrderFollowsDescriptor(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := domain.StoredRecord{
		ID:        "r-1",
		CompanyID: "c-1",
		Key:       domain.BusinessKey{{Field: "type", Value: "payable"}, {Field: "bill_name", Value: "PO-7"}},
		Data:      domain.Record{"amount": "10"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	row := mapping.ToModelRecord(domain.OutstandingEntity, stored)
	assert.Equal(t, []string{"PO-7", "payable"}, row.KeyValues)

	back := mapping.ToDomainRecord(domain.OutstandingEntity, row)
	assert.Equal(t, "PO-7", back.Key[0].Value)
	assert.Equal(t, "bill_name", back.Key[0].Field)
	assert.Equal(t, "payable", back.Key.Value("type"))
	assert.Equal(t, stored.Data, back.Data)
}

func TestToDomainRecord_NilDataBecomesEmpty(t *testing.T) {
	got := mapping.ToDomainRecord(domain.LedgerEntity, models.Record{ID: "r-1", KeyValues: []string{"Cash"}})

	assert.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.Equal(t, "Cash", got.Key.Value("name"))
}
