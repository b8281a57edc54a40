package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/SscSPs/tally_cloud_sync/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups[strings.TrimSuffix(f, ".up.sql")] = true
		case strings.HasSuffix(f, ".down.sql"):
			downs[strings.TrimSuffix(f, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", f)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestSchemaEnforcesBusinessKeys(t *testing.T) {
	raw, err := fs.ReadFile(migrations.FS, "000001_create_sync_tables.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "UNIQUE (name)")
	assert.Contains(t, schema, "UNIQUE (company_id, name)")
	assert.Contains(t, schema, "UNIQUE (company_id, bill_name, type)")
}

func TestSyncHistoryHasInsertionSequence(t *testing.T) {
	raw, err := fs.ReadFile(migrations.FS, "000002_add_sync_history_seq.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(raw), "seq BIGINT GENERATED ALWAYS AS IDENTITY")
}
