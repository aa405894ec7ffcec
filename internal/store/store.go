// Package store owns every shop collection and keeps each one mirrored to its
// key in a kv.Repository.
//
// A Store is an explicit value: build one with Open and pass it to the
// services. Reads hand out deep copies. Writes rewrite the touched key in
// full. Loading never fails; a missing or unreadable key falls back to the
// supplied default.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/autoprime/internal/logging"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
)

// DefaultView is the view selected on first start.
const DefaultView = "dashboard"

// Defaults are used for keys that are absent or cannot be decoded.
type Defaults struct {
	Rules []models.MaintenanceRule
	View  string
}

// DefaultRules returns the rules seeded on first start.
func DefaultRules() []models.MaintenanceRule {
	return []models.MaintenanceRule{
		{ID: "rule-1", NomeServico: "Troca de Óleo", IntervaloMeses: 6},
		{ID: "rule-2", NomeServico: "Alinhamento", IntervaloMeses: 12},
		{ID: "rule-3", NomeServico: "Correia Dentada", IntervaloMeses: 48},
	}
}

// DefaultSettings returns the seeded rules and the dashboard view.
func DefaultSettings() Defaults {
	return Defaults{Rules: DefaultRules(), View: DefaultView}
}

type Store struct {
	mu   sync.Mutex
	repo kv.Repository
	log  logging.Logger

	Clients      *Collection[models.Client]
	Vehicles     *Collection[models.Vehicle]
	Parts        *Collection[models.Part]
	Orders       *Collection[models.ServiceOrder]
	Rules        *Collection[models.MaintenanceRule]
	Transactions *Collection[models.Transaction]
	Logs         *Journal

	view string
}

func Open(ctx context.Context, repo kv.Repository, log logging.Logger, defaults Defaults) *Store {
	s := &Store{repo: repo, log: log}

	s.Clients = newCollection(&s.mu, repo, KeyClients, load[[]models.Client](ctx, s, KeyClients, nil))
	s.Vehicles = newCollection(&s.mu, repo, KeyVehicles, load[[]models.Vehicle](ctx, s, KeyVehicles, nil))
	s.Parts = newCollection(&s.mu, repo, KeyInventory, load[[]models.Part](ctx, s, KeyInventory, nil))
	s.Orders = newCollection(&s.mu, repo, KeyOrders, load[[]models.ServiceOrder](ctx, s, KeyOrders, nil))
	s.Rules = newCollection(&s.mu, repo, KeyRules, load(ctx, s, KeyRules, cloneRules(defaults.Rules)))
	s.Transactions = newCollection(&s.mu, repo, KeyTransactions, load[[]models.Transaction](ctx, s, KeyTransactions, nil))
	s.Logs = &Journal{mu: &s.mu, repo: repo, entries: load[[]models.LogEntry](ctx, s, KeyLogs, nil)}

	view := defaults.View
	if view == "" {
		view = DefaultView
	}
	s.view = load(ctx, s, KeyCurrentView, view)

	return s
}

func cloneRules(in []models.MaintenanceRule) []models.MaintenanceRule {
	if in == nil {
		return nil
	}
	out := make([]models.MaintenanceRule, len(in))
	copy(out, in)
	return out
}

func load[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "storage read failed, using default", "key", key, "error", err)
		return fallback
	}
	if raw == nil {
		s.log.Debug(ctx, "storage key absent, using default", "key", key)
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn(ctx, "storage decode failed, using default", "key", key, "error", err)
		return fallback
	}
	return v
}

// CurrentView returns the persisted view selector.
func (s *Store) CurrentView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Store) SetCurrentView(ctx context.Context, view string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view

	b, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyCurrentView, err)
	}
	if err := s.repo.Set(ctx, KeyCurrentView, b); err != nil {
		return fmt.Errorf("failed to persist %s: %w", KeyCurrentView, err)
	}
	return nil
}
