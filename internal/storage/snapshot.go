package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/dbx"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
)

// ImportSnapshot replaces the stored value of every key present in data with
// its raw JSON. data has the shape of a browser localStorage dump:
//
//	{"autoprime_clients": [...], "autoprime_vehicles": [...]}
//
// Keys not in allowed abort the import with common.ErrUnknownKey. All writes
// happen in one transaction, so a failed import leaves the store untouched.
// It returns the number of keys written.
func ImportSnapshot(ctx context.Context, db *sql.DB, data []byte, allowed []string) (int, error) {
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return 0, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		if !slices.Contains(allowed, k) {
			return 0, fmt.Errorf("%w: %s", common.ErrUnknownKey, k)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		for _, k := range keys {
			if err := repo.Set(ctx, k, snapshot[k]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import snapshot: %w", err)
	}
	return len(keys), nil
}

// ExportSnapshot returns every stored key as one JSON object, the inverse of
// ImportSnapshot.
func ExportSnapshot(ctx context.Context, repo kv.Repository) ([]byte, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(all))
	for k, v := range all {
		if !json.Valid(v) {
			return nil, fmt.Errorf("failed to export kv[%s]: invalid JSON", k)
		}
		out[k] = v
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return b, nil
}
