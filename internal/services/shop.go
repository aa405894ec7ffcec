package services

import (
	"context"

	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/models"
)

// Shop bundles the services over one store and exposes the derived state.
// Alerts and metrics are recomputed on every call.
type Shop struct {
	Clients   ClientService
	Vehicles  VehicleService
	Inventory InventoryService
	Orders    OrderService
	Rules     RuleService
	Ledger    LedgerService
	View      ViewService

	d      Deps
	policy engine.Policy
}

func NewShop(d Deps, policy engine.Policy) *Shop {
	return &Shop{
		Clients:   NewClientService(d),
		Vehicles:  NewVehicleService(d),
		Inventory: NewInventoryService(d),
		Orders:    NewOrderService(d),
		Rules:     NewRuleService(d),
		Ledger:    NewLedgerService(d),
		View:      NewViewService(d),
		d:         d,
		policy:    policy,
	}
}

func (s *Shop) snapshot() engine.Snapshot {
	return engine.Snapshot{
		Clients:  s.d.Store.Clients.List(),
		Vehicles: s.d.Store.Vehicles.List(),
		Parts:    s.d.Store.Parts.List(),
		Orders:   s.d.Store.Orders.List(),
		Rules:    s.d.Store.Rules.List(),
	}
}

func (s *Shop) Alerts(ctx context.Context) []models.Alert {
	return engine.Alerts(s.snapshot(), s.d.Clock(), s.policy)
}

func (s *Shop) Metrics(ctx context.Context) models.DashboardMetrics {
	return engine.Metrics(s.d.Store.Orders.List(), s.d.Clock())
}

// Logs returns up to n audit entries, newest first.
func (s *Shop) Logs(n int) []models.LogEntry {
	return s.d.Audit.Recent(n)
}

func (s *Shop) GenerateServiceOrderDocument(ctx context.Context, orderID string) (*document.ServiceOrderDocument, error) {
	return document.Compose(s.d.Store.Orders.List(), s.d.Store.Clients.List(), s.d.Store.Vehicles.List(), orderID)
}
