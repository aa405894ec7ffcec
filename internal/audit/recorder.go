// Package audit records user-visible actions in the store's journal.
package audit

import (
	"context"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/store"
	"github.com/dmitrijs2005/autoprime/internal/timex"
	"github.com/google/uuid"
)

type Recorder struct {
	journal *store.Journal
	clock   timex.Clock
	newID   func() string
}

// NewRecorder returns a Recorder stamping entries with clock and uuid ids.
func NewRecorder(journal *store.Journal, clock timex.Clock) *Recorder {
	return &Recorder{journal: journal, clock: clock, newID: uuid.NewString}
}

// Record appends one entry.
func (r *Recorder) Record(ctx context.Context, action models.Action, entity models.EntityKind, detail string) error {
	return r.journal.Append(ctx, models.LogEntry{
		ID:        r.newID(),
		Timestamp: r.clock(),
		Acao:      action,
		Entidade:  entity,
		Detalhes:  detail,
	})
}

// Recent returns up to n entries, newest first. n <= 0 returns all of them.
func (r *Recorder) Recent(n int) []models.LogEntry {
	all := r.journal.List()
	if n <= 0 || n > len(all) {
		n = len(all)
	}
	out := make([]models.LogEntry, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out
}
