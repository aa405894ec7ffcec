package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/timex"
)

type VehicleInput struct {
	Placa     string
	Modelo    string
	Marca     string
	Ano       int
	ClienteID string
	KmEntrada int
	Notas     string
	// DataUltimaManutencao defaults to now when nil.
	DataUltimaManutencao *time.Time
}

type VehicleService interface {
	Add(ctx context.Context, in VehicleInput) (models.Vehicle, error)
	Update(ctx context.Context, id string, patch models.VehiclePatch) error
	Delete(ctx context.Context, id string) error
	Get(id string) (models.Vehicle, bool)
	List() []models.Vehicle
	ByClient(clientID string) []models.Vehicle
}

type vehicleService struct {
	d Deps
}

func NewVehicleService(d Deps) VehicleService {
	return &vehicleService{d: d}
}

func (s *vehicleService) Add(ctx context.Context, in VehicleInput) (models.Vehicle, error) {
	if _, ok := s.d.Store.Clients.Get(in.ClienteID); !ok {
		return models.Vehicle{}, ErrClientNotFound
	}

	now := s.d.Clock()
	last := now
	if in.DataUltimaManutencao != nil {
		last = *in.DataUltimaManutencao
	}
	next := timex.AddMonths(last, engine.DefaultIntervalMonths)

	v := models.Vehicle{
		ID:                    s.d.NewID(),
		Placa:                 in.Placa,
		Modelo:                in.Modelo,
		Marca:                 in.Marca,
		Ano:                   in.Ano,
		ClienteID:             in.ClienteID,
		KmEntrada:             in.KmEntrada,
		KmAtual:               in.KmEntrada,
		HistoricoKm:           []models.OdometerReading{{Data: now, Km: in.KmEntrada, Origem: models.SourceRegistration}},
		Notas:                 in.Notas,
		DataUltimaManutencao:  &last,
		DataProximaManutencao: &next,
	}

	err := s.d.Store.Vehicles.Add(ctx, v)
	return v, errors.Join(err, s.d.record(ctx, models.ActionCreate, models.EntityVehicle, "Veículo %s criado.", v.Placa))
}

// Update merges patch into the vehicle. Odometer values only ever raise
// KmAtual, and a new last-maintenance date reschedules the next one.
func (s *vehicleService) Update(ctx context.Context, id string, patch models.VehiclePatch) error {
	if patch.ClienteID != nil {
		if _, ok := s.d.Store.Clients.Get(*patch.ClienteID); !ok {
			return ErrClientNotFound
		}
	}

	now := s.d.Clock()
	rules := s.d.Store.Rules.List()

	ok, err := s.d.Store.Vehicles.Update(ctx, id, func(v *models.Vehicle) {
		patch.Apply(v)
		for _, km := range []*int{patch.KmEntrada, patch.KmAtual} {
			if km != nil {
				v.RaiseOdometer(*km, now, models.SourceManual)
			}
		}
		if patch.DataUltimaManutencao != nil {
			last := *patch.DataUltimaManutencao
			next := engine.NextMaintenance(last, rules, v.ID, nil)
			v.DataUltimaManutencao = &last
			v.DataProximaManutencao = &next
		}
	})
	if !ok {
		return notFound(models.EntityVehicle, id)
	}
	return errors.Join(err, s.d.record(ctx, models.ActionEdit, models.EntityVehicle, "Veículo %s editado.", id))
}

// Delete removes the vehicle, its orders and their ledger entries.
func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if _, ok := s.d.Store.Vehicles.Get(id); !ok {
		return nil
	}

	orders, err := s.d.removeOrders(ctx, func(o models.ServiceOrder) bool { return o.VeiculoID == id })
	_, derr := s.d.Store.Vehicles.Delete(ctx, id)

	s.d.Log.Debug(ctx, "vehicle cascade", "vehicle_id", id, "orders", len(orders))
	return errors.Join(err, derr, s.d.record(ctx, models.ActionDelete, models.EntityVehicle, "Veículo %s removido.", id))
}

func (s *vehicleService) Get(id string) (models.Vehicle, bool) {
	return s.d.Store.Vehicles.Get(id)
}

func (s *vehicleService) List() []models.Vehicle {
	return s.d.Store.Vehicles.List()
}

func (s *vehicleService) ByClient(clientID string) []models.Vehicle {
	return s.d.Store.Vehicles.Find(func(v models.Vehicle) bool { return v.ClienteID == clientID })
}
