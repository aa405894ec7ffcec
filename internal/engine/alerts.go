package engine

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/timex"
)

// DefaultWarnWindowDays is how far ahead a maintenance warning is raised.
const DefaultWarnWindowDays = 30

// Snapshot is the read-only input of Alerts.
type Snapshot struct {
	Clients  []models.Client
	Vehicles []models.Vehicle
	Parts    []models.Part
	Orders   []models.ServiceOrder
	Rules    []models.MaintenanceRule
}

type Policy struct {
	WarnWindowDays int
}

func DefaultPolicy() Policy {
	return Policy{WarnWindowDays: DefaultWarnWindowDays}
}

// Alerts returns stock alerts in part order followed by maintenance alerts
// in vehicle order, then rule order.
func Alerts(s Snapshot, now time.Time, p Policy) []models.Alert {
	out := make([]models.Alert, 0)
	out = append(out, StockAlerts(s.Parts)...)
	out = append(out, MaintenanceAlerts(s, now, p)...)
	return out
}

func StockAlerts(parts []models.Part) []models.Alert {
	out := make([]models.Alert, 0)
	for _, part := range parts {
		if !part.BelowMinimum() {
			continue
		}
		out = append(out, models.Alert{
			ID:       "stock-" + part.ID,
			Type:     models.AlertStock,
			Severity: models.SeverityCritical,
			Message:  fmt.Sprintf("Estoque Baixo: %s (%d/%d)", part.NomePeca, part.QuantidadeAtual, part.QuantidadeMinima),
		})
	}
	return out
}

func MaintenanceAlerts(s Snapshot, now time.Time, p Policy) []models.Alert {
	clients := make(map[string]models.Client, len(s.Clients))
	for _, c := range s.Clients {
		clients[c.ID] = c
	}

	out := make([]models.Alert, 0)
	for _, v := range s.Vehicles {
		name, phone := models.RemovedClient, ""
		if c, ok := clients[v.ClienteID]; ok {
			name, phone = c.Nome, c.Telefone
		}

		for _, r := range s.Rules {
			if !r.AppliesTo(v.ID) {
				continue
			}

			base := now
			if last, ok := LastService(s.Orders, v.ID, r.NomeServico); ok {
				base = last.Data
			} else if v.DataUltimaManutencao != nil {
				base = *v.DataUltimaManutencao
			}

			due := timex.AddMonths(base, r.IntervaloMeses)
			days := timex.CeilDays(due.Sub(now))

			alert := models.Alert{
				Type:        models.AlertMaintenance,
				VeiculoID:   v.ID,
				RegraID:     r.ID,
				ClientName:  name,
				ClientPhone: phone,
			}
			switch {
			case days < 0:
				alert.ID = fmt.Sprintf("maint-crit-%s-%s", v.ID, r.ID)
				alert.Severity = models.SeverityCritical
				alert.Message = fmt.Sprintf("%s VENCIDO — %s (%s)", r.NomeServico, v.Modelo, v.Placa)
			case days <= p.WarnWindowDays:
				alert.ID = fmt.Sprintf("maint-warn-%s-%s", v.ID, r.ID)
				alert.Severity = models.SeverityWarning
				alert.Message = fmt.Sprintf("%s vence em %d dias — %s", r.NomeServico, days, v.Modelo)
			default:
				continue
			}
			out = append(out, alert)
		}
	}
	return out
}
