package engine

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/timex"
	"github.com/shopspring/decimal"
)

const topServices = 5

// Metrics aggregates dashboard figures. Revenue counts only completed
// orders; the month is the UTC calendar month of now.
func Metrics(orders []models.ServiceOrder, now time.Time) models.DashboardMetrics {
	m := models.DashboardMetrics{
		FaturamentoTotal: decimal.Zero,
		FaturamentoMes:   decimal.Zero,
		TicketMedio:      decimal.Zero,
		TopServicos:      []models.ServiceCount{},
	}

	now = now.UTC()
	counts := map[string]int{}
	var seen []string

	for _, o := range orders {
		switch o.Status {
		case models.OrderOpen:
			m.OSAbertas++
			continue
		case models.OrderCompleted:
		default:
			continue
		}

		m.OSConcluidas++
		m.FaturamentoTotal = m.FaturamentoTotal.Add(o.ValorTotal)
		if timex.SameMonth(o.Data, now.Year(), now.Month()) {
			m.FaturamentoMes = m.FaturamentoMes.Add(o.ValorTotal)
		}
		for _, s := range o.Servicos {
			if _, ok := counts[s.Nome]; !ok {
				seen = append(seen, s.Nome)
			}
			counts[s.Nome]++
		}
	}

	if m.OSConcluidas > 0 {
		m.TicketMedio = m.FaturamentoTotal.Div(decimal.NewFromInt(int64(m.OSConcluidas)))
	}

	sort.SliceStable(seen, func(i, j int) bool { return counts[seen[i]] > counts[seen[j]] })
	if len(seen) > topServices {
		seen = seen[:topServices]
	}
	for _, name := range seen {
		m.TopServicos = append(m.TopServicos, models.ServiceCount{Nome: name, Qtd: counts[name]})
	}
	return m
}
