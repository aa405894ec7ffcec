package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowed = []string{"autoprime_clients", "autoprime_vehicles", "autoprime_currentView"}

func openTestDB(t *testing.T) *Database {
	t.Helper()
	d, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	d := openTestDB(t)

	var name string
	err := d.DB.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)

	ctx := context.Background()
	require.NoError(t, d.KV.Set(ctx, "autoprime_clients", []byte("[]")))
	v, err := d.KV.Get(ctx, "autoprime_clients")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))
}

func TestInitDatabase_FileIsReopenable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shop.db")

	d, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, d.KV.Set(ctx, "autoprime_currentView", []byte(`"clients"`)))
	require.NoError(t, d.Close())

	// Migrations are already applied; reopening must not fail.
	d, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer d.Close()

	v, err := d.KV.Get(ctx, "autoprime_currentView")
	require.NoError(t, err)
	assert.Equal(t, `"clients"`, string(v))
}

func TestImportSnapshot_WritesAllowedKeys(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	n, err := ImportSnapshot(ctx, d.DB, []byte(`{
		"autoprime_clients": [{"id":"c1","nome":"Ana"}],
		"autoprime_currentView": "vehicles"
	}`), allowed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	v, err := d.KV.Get(ctx, "autoprime_clients")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1","nome":"Ana"}]`, string(v))
}

func TestImportSnapshot_UnknownKeyWritesNothing(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, err := ImportSnapshot(ctx, d.DB, []byte(`{
		"autoprime_clients": [],
		"theme": "dark"
	}`), allowed)
	require.ErrorIs(t, err, common.ErrUnknownKey)

	all, err := d.KV.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportSnapshot_MalformedJSON(t *testing.T) {
	d := openTestDB(t)
	_, err := ImportSnapshot(context.Background(), d.DB, []byte(`{"autoprime_clients": [`), allowed)
	require.ErrorContains(t, err, "failed to decode snapshot")
}

func TestExportSnapshot_RoundTripsThroughImport(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, src.KV.Set(ctx, "autoprime_clients", []byte(`[{"id":"c1"}]`)))
	require.NoError(t, src.KV.Set(ctx, "autoprime_currentView", []byte(`"dashboard"`)))

	b, err := ExportSnapshot(ctx, src.KV)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Len(t, decoded, 2)

	dst := openTestDB(t)
	n, err := ImportSnapshot(ctx, dst.DB, b, allowed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	v, err := dst.KV.Get(ctx, "autoprime_currentView")
	require.NoError(t, err)
	assert.Equal(t, `"dashboard"`, string(v))
}

func TestExportSnapshot_RejectsNonJSONValues(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, d.KV.Set(ctx, "autoprime_clients", []byte("not json")))

	_, err := ExportSnapshot(ctx, d.KV)
	require.ErrorContains(t, err, "failed to export kv[autoprime_clients]")
}
