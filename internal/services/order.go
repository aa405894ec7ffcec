package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/models"
)

type OrderInput struct {
	ClienteID   string
	VeiculoID   string
	KmNoServico int
	PecasUsadas []models.UsedPart
	Servicos    []models.ServiceItem
	// Data defaults to now when zero.
	Data     time.Time
	Mecanico string
	Notas    string
}

type OrderService interface {
	Add(ctx context.Context, in OrderInput) (models.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (models.ServiceOrder, bool)
	List() []models.ServiceOrder
	ByVehicle(vehicleID string) []models.ServiceOrder
}

type orderService struct {
	d Deps
}

func NewOrderService(d Deps) OrderService {
	return &orderService{d: d}
}

// Add records a completed order and applies its side effects: stock is
// decremented without a floor, the vehicle odometer and maintenance dates
// move forward, and the total is booked as revenue.
func (s *orderService) Add(ctx context.Context, in OrderInput) (models.ServiceOrder, error) {
	at := in.Data
	if at.IsZero() {
		at = s.d.Clock()
	}

	o := models.ServiceOrder{
		ID:          s.d.NewID(),
		ClienteID:   in.ClienteID,
		VeiculoID:   in.VeiculoID,
		KmNoServico: in.KmNoServico,
		PecasUsadas: append([]models.UsedPart{}, in.PecasUsadas...),
		Servicos:    append([]models.ServiceItem{}, in.Servicos...),
		ValorTotal:  models.OrderTotal(in.PecasUsadas, in.Servicos),
		Data:        at,
		Status:      models.OrderCompleted,
		Mecanico:    in.Mecanico,
		Notas:       in.Notas,
	}

	errs := []error{s.d.Store.Orders.Add(ctx, o)}

	for _, used := range o.PecasUsadas {
		qty := used.Quantidade
		ok, err := s.d.Store.Parts.Update(ctx, used.PartID, func(p *models.Part) { p.QuantidadeAtual -= qty })
		if !ok {
			s.d.Log.Warn(ctx, "order consumes unknown part", "order_id", o.ID, "part_id", used.PartID)
		}
		errs = append(errs, err)
	}

	rules := s.d.Store.Rules.List()
	services := engine.ServiceNames(o.Servicos)
	ok, err := s.d.Store.Vehicles.Update(ctx, o.VeiculoID, func(v *models.Vehicle) {
		if o.KmNoServico > v.KmAtual {
			v.KmAtual = o.KmNoServico
		}
		v.HistoricoKm = append(v.HistoricoKm, models.OdometerReading{Data: at, Km: o.KmNoServico, Origem: models.SourceOrder(o.ID)})
		last := at
		next := engine.NextMaintenance(at, rules, v.ID, services)
		v.DataUltimaManutencao = &last
		v.DataProximaManutencao = &next
	})
	if !ok {
		s.d.Log.Warn(ctx, "order references unknown vehicle", "order_id", o.ID, "vehicle_id", o.VeiculoID)
	}
	errs = append(errs, err)

	errs = append(errs, s.d.Store.Transactions.Add(ctx, models.Transaction{
		ID:           s.d.NewID(),
		Descricao:    fmt.Sprintf("OS %s", shortID(o.ID)),
		Tipo:         models.Income,
		Valor:        o.ValorTotal,
		Data:         at,
		Categoria:    models.CategoryOrder,
		ReferenciaID: o.ID,
	}))

	s.d.Log.Debug(ctx, "order booked", "order_id", o.ID, "total", o.ValorTotal.String(), "parts", len(o.PecasUsadas))
	errs = append(errs, s.d.record(ctx, models.ActionCreate, models.EntityOrder, "OS %s gerada. Valor: %s", o.ID, o.ValorTotal.StringFixed(2)))
	return o.Clone(), errors.Join(errs...)
}

// Delete removes the order and its ledger entries. Consumed stock is not
// restored.
func (s *orderService) Delete(ctx context.Context, id string) error {
	ids, err := s.d.removeOrders(ctx, func(o models.ServiceOrder) bool { return o.ID == id })
	if len(ids) == 0 && err == nil {
		return nil
	}
	return errors.Join(err, s.d.record(ctx, models.ActionDelete, models.EntityOrder, "OS %s removida.", id))
}

func (s *orderService) Get(id string) (models.ServiceOrder, bool) {
	return s.d.Store.Orders.Get(id)
}

func (s *orderService) List() []models.ServiceOrder {
	return s.d.Store.Orders.List()
}

func (s *orderService) ByVehicle(vehicleID string) []models.ServiceOrder {
	return s.d.Store.Orders.Find(func(o models.ServiceOrder) bool { return o.VeiculoID == vehicleID })
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
