package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/autoprime/internal/models"
)

type ClientInput struct {
	Nome     string
	Telefone string
	Email    string
	Notas    string
}

type ClientService interface {
	Add(ctx context.Context, in ClientInput) (models.Client, error)
	Update(ctx context.Context, id string, patch models.ClientPatch) error
	Delete(ctx context.Context, id string) error
	Get(id string) (models.Client, bool)
	List() []models.Client
}

type clientService struct {
	d Deps
}

func NewClientService(d Deps) ClientService {
	return &clientService{d: d}
}

func (s *clientService) Add(ctx context.Context, in ClientInput) (models.Client, error) {
	c := models.Client{
		ID:        s.d.NewID(),
		Nome:      in.Nome,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Ativo:     true,
		Notas:     in.Notas,
		CreatedAt: s.d.Clock(),
	}

	err := s.d.Store.Clients.Add(ctx, c)
	return c, errors.Join(err, s.d.record(ctx, models.ActionCreate, models.EntityClient, "Cliente %s criado.", c.Nome))
}

func (s *clientService) Update(ctx context.Context, id string, patch models.ClientPatch) error {
	ok, err := s.d.Store.Clients.Update(ctx, id, patch.Apply)
	if !ok {
		return notFound(models.EntityClient, id)
	}
	return errors.Join(err, s.d.record(ctx, models.ActionEdit, models.EntityClient, "Cliente %s editado.", id))
}

// Delete removes the client, its vehicles, their orders and those orders'
// ledger entries. An unknown id is a no-op.
func (s *clientService) Delete(ctx context.Context, id string) error {
	if _, ok := s.d.Store.Clients.Get(id); !ok {
		return nil
	}

	vehicles := map[string]struct{}{}
	for _, v := range s.d.Store.Vehicles.Find(func(v models.Vehicle) bool { return v.ClienteID == id }) {
		vehicles[v.ID] = struct{}{}
	}

	var errs []error
	orders, err := s.d.removeOrders(ctx, func(o models.ServiceOrder) bool {
		_, ok := vehicles[o.VeiculoID]
		return ok
	})
	errs = append(errs, err)

	_, err = s.d.Store.Vehicles.DeleteWhere(ctx, func(v models.Vehicle) bool { return v.ClienteID == id })
	errs = append(errs, err)

	_, err = s.d.Store.Clients.Delete(ctx, id)
	errs = append(errs, err)

	s.d.Log.Debug(ctx, "client cascade", "client_id", id, "vehicles", len(vehicles), "orders", len(orders))
	errs = append(errs, s.d.record(ctx, models.ActionDelete, models.EntityClient, "Cliente %s removido.", id))
	return errors.Join(errs...)
}

func (s *clientService) Get(id string) (models.Client, bool) {
	return s.d.Store.Clients.Get(id)
}

func (s *clientService) List() []models.Client {
	return s.d.Store.Clients.List()
}
