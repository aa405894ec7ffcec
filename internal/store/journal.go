package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
)

// Journal is the append-only audit log. It has no update or delete.
type Journal struct {
	mu      *sync.Mutex
	repo    kv.Repository
	entries []models.LogEntry
}

func (j *Journal) Append(ctx context.Context, e models.LogEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)

	b, err := json.Marshal(j.entries)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyLogs, err)
	}
	if err := j.repo.Set(ctx, KeyLogs, b); err != nil {
		return fmt.Errorf("failed to persist %s: %w", KeyLogs, err)
	}
	return nil
}

// List returns all entries, oldest first.
func (j *Journal) List() []models.LogEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]models.LogEntry, len(j.entries))
	copy(out, j.entries)
	return out
}
