package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/audit"
	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/logging"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
	"github.com/dmitrijs2005/autoprime/internal/store"
	"github.com/dmitrijs2005/autoprime/internal/timex"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 9, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	shop  *Shop
	store *store.Store
	repo  *kv.MemoryRepository
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := kv.NewMemoryRepository()
	s := store.Open(context.Background(), repo, logging.Nop(), store.Defaults{})
	d := Deps{
		Store: s,
		Audit: audit.NewRecorder(s.Logs, timex.Fixed(now)),
		Log:   logging.Nop(),
		Clock: timex.Fixed(now),
		NewID: sequentialIDs(),
	}
	return &fixture{shop: NewShop(d, engine.DefaultPolicy()), store: s, repo: repo}
}

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func (f *fixture) client(t *testing.T, name string) models.Client {
	t.Helper()
	c, err := f.shop.Clients.Add(context.Background(), ClientInput{Nome: name, Telefone: "11 90000-0000"})
	require.NoError(t, err)
	return c
}

func (f *fixture) vehicle(t *testing.T, clientID, plate string, km int) models.Vehicle {
	t.Helper()
	v, err := f.shop.Vehicles.Add(context.Background(), VehicleInput{Placa: plate, Modelo: "Civic", ClienteID: clientID, KmEntrada: km})
	require.NoError(t, err)
	return v
}

func (f *fixture) part(t *testing.T, name string, qty, min int, price int64) models.Part {
	t.Helper()
	p, err := f.shop.Inventory.Add(context.Background(), PartInput{NomePeca: name, QuantidadeAtual: qty, QuantidadeMinima: min, ValorUnitario: money(price)})
	require.NoError(t, err)
	return p
}

func (f *fixture) order(t *testing.T, c models.Client, v models.Vehicle, km int, at time.Time, parts []models.UsedPart, services ...models.ServiceItem) models.ServiceOrder {
	t.Helper()
	o, err := f.shop.Orders.Add(context.Background(), OrderInput{
		ClienteID: c.ID, VeiculoID: v.ID, KmNoServico: km, Data: at,
		PecasUsadas: parts, Servicos: services,
	})
	require.NoError(t, err)
	return o
}

func used(p models.Part, qty int) models.UsedPart {
	return models.UsedPart{PartID: p.ID, NomePeca: p.NomePeca, Quantidade: qty, ValorUnitarioSnapshot: p.ValorUnitario}
}

func service(name string, value int64) models.ServiceItem {
	return models.ServiceItem{Nome: name, Valor: money(value)}
}

func (f *fixture) referencing(id string) []models.Transaction {
	return f.store.Transactions.Find(func(t models.Transaction) bool { return t.ReferenciaID == id })
}
