package engine

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/timex"
	"github.com/shopspring/decimal"
)

// MonthSummary totals the ledger for one UTC calendar month. Transactions
// are returned newest first; equal dates keep ledger order.
func MonthSummary(txs []models.Transaction, year int, month time.Month) models.MonthSummary {
	s := models.MonthSummary{
		Income:       decimal.Zero,
		Expense:      decimal.Zero,
		Transactions: []models.Transaction{},
	}
	for _, t := range txs {
		if !timex.SameMonth(t.Data, year, month) {
			continue
		}
		switch t.Tipo {
		case models.Income:
			s.Income = s.Income.Add(t.Valor)
		case models.Expense:
			s.Expense = s.Expense.Add(t.Valor)
		}
		s.Transactions = append(s.Transactions, t)
	}
	s.Balance = s.Income.Sub(s.Expense)

	sort.SliceStable(s.Transactions, func(i, j int) bool {
		return s.Transactions[i].Data.After(s.Transactions[j].Data)
	})
	return s
}

// Shortage is a requested quantity the stock cannot cover.
type Shortage struct {
	PartID    string
	NomePeca  string
	Requested int
	Available int
}

// Shortages compares requested lines against stock. Lines naming the same
// part are summed. A part missing from stock counts as zero available.
func Shortages(parts []models.Part, lines []models.UsedPart) []Shortage {
	stock := make(map[string]models.Part, len(parts))
	for _, p := range parts {
		stock[p.ID] = p
	}

	requested := map[string]int{}
	names := map[string]string{}
	var order []string
	for _, l := range lines {
		if _, ok := requested[l.PartID]; !ok {
			order = append(order, l.PartID)
			names[l.PartID] = l.NomePeca
		}
		requested[l.PartID] += l.Quantidade
	}

	var out []Shortage
	for _, id := range order {
		p, ok := stock[id]
		avail := 0
		name := names[id]
		if ok {
			avail = p.QuantidadeAtual
			name = p.NomePeca
		}
		if requested[id] > avail {
			out = append(out, Shortage{PartID: id, NomePeca: name, Requested: requested[id], Available: avail})
		}
	}
	return out
}
