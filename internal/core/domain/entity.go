package domain

// SyncType names one of the synchronized entity families.
type SyncType string

const (
	SyncTypeLedgers     SyncType = "ledgers"
	SyncTypeStockItems  SyncType = "stock_items"
	SyncTypeOutstanding SyncType = "outstanding"
)

// Outstanding bill directions, stored in the "type" key column.
const (
	BillTypeReceivable = "receivable"
	BillTypePayable    = "payable"
)

// EntityDescriptor declares everything the reconciliation engine and the
// record store need to know about one entity table. The three synced
// entities differ only in these values.
type EntityDescriptor struct {
	Type SyncType
	// Table is the backing table name.
	Table string
	// PayloadField is the JSON field carrying the batch and the list response.
	PayloadField string
	// KeyFields form the business key together with company_id, in order.
	KeyFields []string
	// OrderBy is the key column list results are sorted by.
	OrderBy string
	// SearchField is the column matched by free text search; empty disables search.
	SearchField string
	// KeyRules holds validator tags applied to individual key values.
	KeyRules map[string]string
}

var (
	LedgerEntity = EntityDescriptor{
		Type:         SyncTypeLedgers,
		Table:        "ledgers",
		PayloadField: "ledgers",
		KeyFields:    []string{"name"},
		OrderBy:      "name",
		SearchField:  "name",
	}

	StockItemEntity = EntityDescriptor{
		Type:         SyncTypeStockItems,
		Table:        "stock_items",
		PayloadField: "stock_items",
		KeyFields:    []string{"name"},
		OrderBy:      "name",
		SearchField:  "name",
	}

	OutstandingEntity = EntityDescriptor{
		Type:         SyncTypeOutstanding,
		Table:        "outstanding",
		PayloadField: "outstanding",
		KeyFields:    []string{"bill_name", "type"},
		OrderBy:      "bill_name",
		KeyRules: map[string]string{
			"type": "oneof=" + BillTypeReceivable + " " + BillTypePayable,
		},
	}
)

// Entities lists every synced entity in a stable order.
func Entities() []EntityDescriptor {
	return []EntityDescriptor{LedgerEntity, StockItemEntity, OutstandingEntity}
}

// DescriptorFor returns the descriptor registered for t.
func DescriptorFor(t SyncType) (EntityDescriptor, bool) {
	for _, d := range Entities() {
		if d.Type == t {
			return d, true
		}
	}
	return EntityDescriptor{}, false
}

// IsKeyField reports whether field is part of the business key.
func (d EntityDescriptor) IsKeyField(field string) bool {
	for _, k := range d.KeyFields {
		if k == field {
			return true
		}
	}
	return false
}
