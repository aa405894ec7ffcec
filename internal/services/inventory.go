package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/shopspring/decimal"
)

type PartInput struct {
	NomePeca         string
	QuantidadeAtual  int
	QuantidadeMinima int
	ValorUnitario    decimal.Decimal
}

type InventoryService interface {
	Add(ctx context.Context, in PartInput) (models.Part, error)
	Update(ctx context.Context, id string, patch models.PartPatch) error
	Delete(ctx context.Context, id string) error
	Get(id string) (models.Part, bool)
	List() []models.Part
	// CheckAvailability reports ErrInsufficientStock when lines ask for more
	// than is on hand. Order creation itself never enforces this.
	CheckAvailability(lines []models.UsedPart) error
}

type inventoryService struct {
	d Deps
}

func NewInventoryService(d Deps) InventoryService {
	return &inventoryService{d: d}
}

// Add stores the part and books its purchase cost as an expense when the
// initial stock has value.
func (s *inventoryService) Add(ctx context.Context, in PartInput) (models.Part, error) {
	p := models.Part{
		ID:               s.d.NewID(),
		NomePeca:         in.NomePeca,
		QuantidadeAtual:  in.QuantidadeAtual,
		QuantidadeMinima: in.QuantidadeMinima,
		ValorUnitario:    in.ValorUnitario,
	}

	errs := []error{s.d.Store.Parts.Add(ctx, p)}

	if cost := p.StockValue(); cost.IsPositive() {
		errs = append(errs, s.d.Store.Transactions.Add(ctx, models.Transaction{
			ID:           s.d.NewID(),
			Descricao:    fmt.Sprintf("Compra de estoque: %s (%d un.)", p.NomePeca, p.QuantidadeAtual),
			Tipo:         models.Expense,
			Valor:        cost,
			Data:         s.d.Clock(),
			Categoria:    models.CategoryStock,
			ReferenciaID: p.ID,
		}))
	}

	errs = append(errs, s.d.record(ctx, models.ActionCreate, models.EntityStock, "Peça %s adicionada.", p.NomePeca))
	return p, errors.Join(errs...)
}

func (s *inventoryService) Update(ctx context.Context, id string, patch models.PartPatch) error {
	ok, err := s.d.Store.Parts.Update(ctx, id, patch.Apply)
	if !ok {
		return notFound(models.EntityStock, id)
	}
	return errors.Join(err, s.d.record(ctx, models.ActionEdit, models.EntityStock, "Peça %s editada.", id))
}

// Delete removes the part only. Its purchase entry stays in the ledger.
func (s *inventoryService) Delete(ctx context.Context, id string) error {
	ok, err := s.d.Store.Parts.Delete(ctx, id)
	if !ok {
		return nil
	}
	return errors.Join(err, s.d.record(ctx, models.ActionDelete, models.EntityStock, "Peça %s removida.", id))
}

func (s *inventoryService) Get(id string) (models.Part, bool) {
	return s.d.Store.Parts.Get(id)
}

func (s *inventoryService) List() []models.Part {
	return s.d.Store.Parts.List()
}

func (s *inventoryService) CheckAvailability(lines []models.UsedPart) error {
	short := engine.Shortages(s.d.Store.Parts.List(), lines)
	if len(short) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(short))
	for _, sh := range short {
		msgs = append(msgs, fmt.Sprintf("%s: requested %d, available %d", sh.NomePeca, sh.Requested, sh.Available))
	}
	return fmt.Errorf("%w: %s", ErrInsufficientStock, strings.Join(msgs, "; "))
}
