package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	Income  TransactionType = "RECEITA"
	Expense TransactionType = "DESPESA"
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

type TransactionCategory string

const (
	CategoryOrder   TransactionCategory = "OS"
	CategoryStock   TransactionCategory = "ESTOQUE"
	CategoryRent    TransactionCategory = "ALUGUEL"
	CategoryBills   TransactionCategory = "CONTAS"
	CategoryPayroll TransactionCategory = "PESSOAL"
	CategoryOther   TransactionCategory = "OUTROS"
)

var categories = []TransactionCategory{
	CategoryOrder, CategoryStock, CategoryRent, CategoryBills, CategoryPayroll, CategoryOther,
}

// Categories lists every category in display order.
func Categories() []TransactionCategory {
	out := make([]TransactionCategory, len(categories))
	copy(out, categories)
	return out
}

func (c TransactionCategory) Valid() bool {
	for _, v := range categories {
		if v == c {
			return true
		}
	}
	return false
}

// Transaction is one ledger entry. ReferenciaID links automatic entries to
// the order or part that produced them.
type Transaction struct {
	ID           string              `json:"id"`
	Descricao    string              `json:"descricao"`
	Tipo         TransactionType     `json:"tipo"`
	Valor        decimal.Decimal     `json:"valor"`
	Data         time.Time           `json:"data"`
	Categoria    TransactionCategory `json:"categoria"`
	ReferenciaID string              `json:"referenciaId,omitempty"`
}

func (t Transaction) EntityID() string   { return t.ID }
func (t Transaction) Clone() Transaction { return t }

type TransactionPatch struct {
	Descricao *string
	Tipo      *TransactionType
	Valor     *decimal.Decimal
	Data      *time.Time
	Categoria *TransactionCategory
}

func (p TransactionPatch) Apply(t *Transaction) {
	if p.Descricao != nil {
		t.Descricao = *p.Descricao
	}
	if p.Tipo != nil {
		t.Tipo = *p.Tipo
	}
	if p.Valor != nil {
		t.Valor = *p.Valor
	}
	if p.Data != nil {
		t.Data = *p.Data
	}
	if p.Categoria != nil {
		t.Categoria = *p.Categoria
	}
}
