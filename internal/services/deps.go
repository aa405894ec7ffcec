// Package services applies user actions to the store. Each operation runs its
// cascade to completion: an order decrements stock, moves the odometer and
// books revenue; deleting a client removes its vehicles, their orders and the
// ledger entries those orders produced.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/autoprime/internal/audit"
	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/logging"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/store"
	"github.com/dmitrijs2005/autoprime/internal/timex"
	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Deps are shared by every service.
type Deps struct {
	Store *store.Store
	Audit *audit.Recorder
	Log   logging.Logger
	Clock timex.Clock
	NewID func() string
}

// NewDeps wires a store with the wall clock, uuid ids and an audit recorder.
func NewDeps(s *store.Store, log logging.Logger) Deps {
	return Deps{
		Store: s,
		Audit: audit.NewRecorder(s.Logs, timex.System),
		Log:   log,
		Clock: timex.System,
		NewID: uuid.NewString,
	}
}

func (d Deps) record(ctx context.Context, action models.Action, entity models.EntityKind, format string, args ...any) error {
	if err := d.Audit.Record(ctx, action, entity, fmt.Sprintf(format, args...)); err != nil {
		d.Log.Error(ctx, "audit write failed", "action", action, "entity", entity, "error", err)
		return err
	}
	return nil
}

func notFound(kind models.EntityKind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, common.ErrNotFound)
}

// removeOrders deletes the orders matching pred and every ledger entry that
// references one of them. It returns the removed order ids.
func (d Deps) removeOrders(ctx context.Context, pred func(models.ServiceOrder) bool) ([]string, error) {
	var ids []string
	for _, o := range d.Store.Orders.Find(pred) {
		ids = append(ids, o.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	removed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		removed[id] = struct{}{}
	}

	var errs []error
	if _, err := d.Store.Orders.DeleteWhere(ctx, func(o models.ServiceOrder) bool {
		_, ok := removed[o.ID]
		return ok
	}); err != nil {
		errs = append(errs, err)
	}
	n, err := d.Store.Transactions.DeleteWhere(ctx, func(t models.Transaction) bool {
		_, ok := removed[t.ReferenciaID]
		return t.ReferenciaID != "" && ok
	})
	if err != nil {
		errs = append(errs, err)
	}

	d.Log.Debug(ctx, "orders removed", "orders", len(ids), "transactions", n)
	return ids, errors.Join(errs...)
}
