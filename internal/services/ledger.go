package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionInput struct {
	Descricao string
	Tipo      models.TransactionType
	Valor     decimal.Decimal
	// Data defaults to now when zero.
	Data         time.Time
	Categoria    models.TransactionCategory
	ReferenciaID string
}

type LedgerService interface {
	Add(ctx context.Context, in TransactionInput) (models.Transaction, error)
	Update(ctx context.Context, id string, patch models.TransactionPatch) error
	Delete(ctx context.Context, id string) error
	List() []models.Transaction
	MonthSummary(year int, month time.Month) models.MonthSummary
}

type ledgerService struct {
	d Deps
}

func NewLedgerService(d Deps) LedgerService {
	return &ledgerService{d: d}
}

func (s *ledgerService) Add(ctx context.Context, in TransactionInput) (models.Transaction, error) {
	at := in.Data
	if at.IsZero() {
		at = s.d.Clock()
	}
	t := models.Transaction{
		ID:           s.d.NewID(),
		Descricao:    in.Descricao,
		Tipo:         in.Tipo,
		Valor:        in.Valor,
		Data:         at,
		Categoria:    in.Categoria,
		ReferenciaID: in.ReferenciaID,
	}
	err := s.d.Store.Transactions.Add(ctx, t)
	return t, errors.Join(err, s.d.record(ctx, models.ActionCreate, models.EntityTransaction, "Transação %s registrada.", t.Descricao))
}

func (s *ledgerService) Update(ctx context.Context, id string, patch models.TransactionPatch) error {
	ok, err := s.d.Store.Transactions.Update(ctx, id, patch.Apply)
	if !ok {
		return notFound(models.EntityTransaction, id)
	}
	return errors.Join(err, s.d.record(ctx, models.ActionEdit, models.EntityTransaction, "Transação %s editada.", id))
}

func (s *ledgerService) Delete(ctx context.Context, id string) error {
	ok, err := s.d.Store.Transactions.Delete(ctx, id)
	if !ok {
		return nil
	}
	return errors.Join(err, s.d.record(ctx, models.ActionDelete, models.EntityTransaction, "Transação %s removida.", id))
}

func (s *ledgerService) List() []models.Transaction {
	return s.d.Store.Transactions.List()
}

func (s *ledgerService) MonthSummary(year int, month time.Month) models.MonthSummary {
	return engine.MonthSummary(s.d.Store.Transactions.List(), year, month)
}
