package models

import "github.com/shopspring/decimal"

type Part struct {
	ID               string          `json:"id"`
	NomePeca         string          `json:"nomePeca"`
	QuantidadeAtual  int             `json:"quantidadeAtual"`
	QuantidadeMinima int             `json:"quantidadeMinima"`
	ValorUnitario    decimal.Decimal `json:"valorUnitario"`
}

func (p Part) EntityID() string { return p.ID }
func (p Part) Clone() Part      { return p }

// StockValue is quantity times unit price.
func (p Part) StockValue() decimal.Decimal {
	return p.ValorUnitario.Mul(decimal.NewFromInt(int64(p.QuantidadeAtual)))
}

// BelowMinimum reports whether the part needs restocking.
func (p Part) BelowMinimum() bool {
	return p.QuantidadeAtual < p.QuantidadeMinima
}

type PartPatch struct {
	NomePeca         *string
	QuantidadeAtual  *int
	QuantidadeMinima *int
	ValorUnitario    *decimal.Decimal
}

func (p PartPatch) Apply(part *Part) {
	if p.NomePeca != nil {
		part.NomePeca = *p.NomePeca
	}
	if p.QuantidadeAtual != nil {
		part.QuantidadeAtual = *p.QuantidadeAtual
	}
	if p.QuantidadeMinima != nil {
		part.QuantidadeMinima = *p.QuantidadeMinima
	}
	if p.ValorUnitario != nil {
		part.ValorUnitario = *p.ValorUnitario
	}
}
