package engine

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/timex"
)

// DefaultIntervalMonths is used when no rule matches.
const DefaultIntervalMonths = 6

// IntervalFor returns the shortest interval among the rules that apply to
// vehicleID. When services is non-nil only rules naming one of them count.
func IntervalFor(rules []models.MaintenanceRule, vehicleID string, services []string) int {
	best := 0
	for _, r := range rules {
		if !r.AppliesTo(vehicleID) || r.IntervaloMeses <= 0 {
			continue
		}
		if services != nil && !slices.Contains(services, r.NomeServico) {
			continue
		}
		if best == 0 || r.IntervaloMeses < best {
			best = r.IntervaloMeses
		}
	}
	if best == 0 {
		return DefaultIntervalMonths
	}
	return best
}

// NextMaintenance is base plus IntervalFor months.
func NextMaintenance(base time.Time, rules []models.MaintenanceRule, vehicleID string, services []string) time.Time {
	return timex.AddMonths(base, IntervalFor(rules, vehicleID, services))
}

// LastService returns the most recent completed order on vehicleID that
// includes a service named name. Among equal dates the earliest inserted wins.
func LastService(orders []models.ServiceOrder, vehicleID, name string) (models.ServiceOrder, bool) {
	var (
		last  models.ServiceOrder
		found bool
	)
	for _, o := range orders {
		if o.VeiculoID != vehicleID || o.Status != models.OrderCompleted || !o.HasService(name) {
			continue
		}
		if !found || o.Data.After(last.Data) {
			last, found = o, true
		}
	}
	return last, found
}

// ServiceNames lists the names of an order's service lines.
func ServiceNames(items []models.ServiceItem) []string {
	names := make([]string, 0, len(items))
	for _, s := range items {
		names = append(names, s.Nome)
	}
	return names
}
