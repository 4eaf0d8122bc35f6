package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/vista/schema"
)

func TestLoad_YAML(t *testing.T) {
	doc := []byte(`
name: orders
source:
  datasetId: sales
  tableId: orders_raw
  visibleColumns:
    - order_id
    - amount
  queryFilter: status = 'complete'
  accessControl:
    enabled: true
    labelColumn: region
    labels:
      - emea
expiration:
  time: 1700000000000
`)
	def, err := schema.Load(doc)
	require.NoError(t, err)
	require.Equal(t, "orders", def.Name)
	require.NotNil(t, def.Source)
	require.Equal(t, []string{"order_id", "amount"}, def.Source.VisibleColumns)
	require.True(t, def.Source.AccessControl.Enabled)
	require.Equal(t, []string{"emea"}, def.Source.AccessControl.Labels)
	require.NotNil(t, def.Expiration)
	require.Equal(t, int64(1700000000000), def.Expiration.Time)
	require.False(t, def.Expiration.Delete)
}

func TestLoad_JSON(t *testing.T) {
	doc := []byte(`{
  "name": "events",
  "custom": {"query": "select * from ` + "`${projectId}.${datasetId}.events`" + `"}
}`)
	def, err := schema.Load(doc)
	require.NoError(t, err)
	require.NotNil(t, def.Custom)
	require.Contains(t, def.Custom.Query, "${projectId}")
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	doc := []byte(`
name: orders
source:
  datasetId: sales
  tableId: orders
  visibleColums: [oops]
`)
	_, err := schema.Load(doc)
	require.Error(t, err)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	_, err := schema.Load([]byte(`name: orders`))
	require.ErrorIs(t, err, schema.ErrInvalidDefinition)
}

func TestLoadConfig(t *testing.T) {
	doc := []byte(`
projectId: acme-data
accessControl:
  datasetId: entitlements
  viewId: grants
datasets:
  - name: sales
    accessControlLabels: [internal]
  - name: hr
`)
	cfg, err := schema.LoadConfig(doc)
	require.NoError(t, err)
	require.Equal(t, "acme-data", cfg.ProjectID)
	require.Equal(t, "entitlements", cfg.AccessControl.DatasetID)
	require.Equal(t, "grants", cfg.AccessControl.ViewID)
	require.Len(t, cfg.Datasets, 2)
}

func TestLoadConfig_RequiresProject(t *testing.T) {
	_, err := schema.LoadConfig([]byte(`datasets: []`))
	require.ErrorIs(t, err, schema.ErrInvalidDefinition)
}
