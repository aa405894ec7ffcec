package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderOpen      OrderStatus = "ABERTA"
	OrderCompleted OrderStatus = "CONCLUIDA"
	OrderCanceled  OrderStatus = "CANCELADA"
)

// UsedPart is a snapshot of a consumed part taken when the order was created.
// Later edits to the part never reach it.
type UsedPart struct {
	PartID                string          `json:"partId"`
	NomePeca              string          `json:"nomePeca"`
	Quantidade            int             `json:"quantidade"`
	ValorUnitarioSnapshot decimal.Decimal `json:"valorUnitarioSnapshot"`
}

func (u UsedPart) Subtotal() decimal.Decimal {
	return u.ValorUnitarioSnapshot.Mul(decimal.NewFromInt(int64(u.Quantidade)))
}

type ServiceItem struct {
	ID    string          `json:"id,omitempty"`
	Nome  string          `json:"nome"`
	Valor decimal.Decimal `json:"valor"`
}

type ServiceOrder struct {
	ID          string          `json:"id"`
	ClienteID   string          `json:"clienteId"`
	VeiculoID   string          `json:"veiculoId"`
	KmNoServico int             `json:"kmNoServico"`
	PecasUsadas []UsedPart      `json:"pecasUsadas"`
	Servicos    []ServiceItem   `json:"servicos"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	Data        time.Time       `json:"data"`
	Status      OrderStatus     `json:"status"`
	Mecanico    string          `json:"mecanico,omitempty"`
	Notas       string          `json:"notas,omitempty"`
}

func (o ServiceOrder) EntityID() string { return o.ID }

func (o ServiceOrder) Clone() ServiceOrder {
	out := o
	if o.PecasUsadas != nil {
		out.PecasUsadas = make([]UsedPart, len(o.PecasUsadas))
		copy(out.PecasUsadas, o.PecasUsadas)
	}
	if o.Servicos != nil {
		out.Servicos = make([]ServiceItem, len(o.Servicos))
		copy(out.Servicos, o.Servicos)
	}
	return out
}

// HasService reports whether any service line is named name.
func (o ServiceOrder) HasService(name string) bool {
	for _, s := range o.Servicos {
		if s.Nome == name {
			return true
		}
	}
	return false
}

// OrderTotal sums part subtotals and service values.
func OrderTotal(parts []UsedPart, services []ServiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, p := range parts {
		total = total.Add(p.Subtotal())
	}
	for _, s := range services {
		total = total.Add(s.Valor)
	}
	return total
}
