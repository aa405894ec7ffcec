package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/logging"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDelete_Cascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana := f.client(t, "Ana")
	bruno := f.client(t, "Bruno")
	civic := f.vehicle(t, ana.ID, "ABC1234", 10000)
	fit := f.vehicle(t, ana.ID, "DEF5678", 20000)
	gol := f.vehicle(t, bruno.ID, "GHI9012", 30000)

	o1 := f.order(t, ana, civic, 10100, now, nil, service("Alinhamento", 80))
	o2 := f.order(t, ana, fit, 20100, now, nil, service("Alinhamento", 90))
	o3 := f.order(t, bruno, gol, 30100, now, nil, service("Alinhamento", 70))

	require.NoError(t, f.shop.Clients.Delete(ctx, ana.ID))

	_, ok := f.shop.Clients.Get(ana.ID)
	assert.False(t, ok)
	assert.Empty(t, f.shop.Vehicles.ByClient(ana.ID))
	assert.Empty(t, f.shop.Orders.ByVehicle(civic.ID))
	assert.Empty(t, f.shop.Orders.ByVehicle(fit.ID))
	assert.Empty(t, f.referencing(o1.ID))
	assert.Empty(t, f.referencing(o2.ID))

	// Bruno's data is untouched.
	assert.Len(t, f.shop.Vehicles.ByClient(bruno.ID), 1)
	assert.Len(t, f.shop.Orders.ByVehicle(gol.ID), 1)
	assert.Len(t, f.referencing(o3.ID), 1)
	assert.Equal(t, "70", f.shop.Metrics(ctx).FaturamentoTotal.String())

	last := f.shop.Logs(1)[0]
	assert.Equal(t, models.ActionDelete, last.Acao)
	assert.Equal(t, models.EntityClient, last.Entidade)
	assert.Equal(t, "Cliente "+ana.ID+" removido.", last.Detalhes)
}

func TestVehicleDelete_Cascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana := f.client(t, "Ana")
	civic := f.vehicle(t, ana.ID, "ABC1234", 10000)
	fit := f.vehicle(t, ana.ID, "DEF5678", 20000)
	o1 := f.order(t, ana, civic, 10100, now, nil, service("Alinhamento", 80))
	o2 := f.order(t, ana, fit, 20100, now, nil, service("Alinhamento", 90))

	require.NoError(t, f.shop.Vehicles.Delete(ctx, civic.ID))

	_, ok := f.shop.Vehicles.Get(civic.ID)
	assert.False(t, ok)
	_, ok = f.shop.Orders.Get(o1.ID)
	assert.False(t, ok)
	assert.Empty(t, f.referencing(o1.ID))

	_, ok = f.shop.Clients.Get(ana.ID)
	assert.True(t, ok)
	_, ok = f.shop.Orders.Get(o2.ID)
	assert.True(t, ok)
	assert.Len(t, f.referencing(o2.ID), 1)
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.client(t, "Ana")
	before := len(f.shop.Logs(0))

	require.NoError(t, f.shop.Clients.Delete(ctx, "missing"))
	require.NoError(t, f.shop.Vehicles.Delete(ctx, "missing"))
	require.NoError(t, f.shop.Inventory.Delete(ctx, "missing"))
	require.NoError(t, f.shop.Orders.Delete(ctx, "missing"))
	require.NoError(t, f.shop.Rules.Delete(ctx, "missing"))
	require.NoError(t, f.shop.Ledger.Delete(ctx, "missing"))

	assert.Len(t, f.shop.Logs(0), before)
	assert.Len(t, f.shop.Clients.List(), 1)
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	name := "x"

	errs := []error{
		f.shop.Clients.Update(ctx, "missing", models.ClientPatch{Nome: &name}),
		f.shop.Vehicles.Update(ctx, "missing", models.VehiclePatch{Modelo: &name}),
		f.shop.Inventory.Update(ctx, "missing", models.PartPatch{NomePeca: &name}),
		f.shop.Rules.Update(ctx, "missing", models.RulePatch{NomeServico: &name}),
		f.shop.Ledger.Update(ctx, "missing", models.TransactionPatch{Descricao: &name}),
	}
	for _, err := range errs {
		assert.ErrorIs(t, err, common.ErrNotFound)
	}
	assert.Empty(t, f.shop.Logs(0))
}

func TestClientUpdate_MergesPatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.client(t, "Ana")

	phone := "11 95555-0000"
	inactive := false
	require.NoError(t, f.shop.Clients.Update(ctx, ana.ID, models.ClientPatch{Telefone: &phone, Ativo: &inactive}))

	got, _ := f.shop.Clients.Get(ana.ID)
	assert.Equal(t, "Ana", got.Nome)
	assert.Equal(t, phone, got.Telefone)
	assert.False(t, got.Ativo)
	assert.Equal(t, now, got.CreatedAt)
}

func TestVehicleAdd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shop.Vehicles.Add(ctx, VehicleInput{Placa: "ABC1234", ClienteID: "missing"})
	require.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, f.shop.Vehicles.List())

	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)

	assert.Equal(t, 50000, v.KmAtual)
	require.Len(t, v.HistoricoKm, 1)
	assert.Equal(t, models.SourceRegistration, v.HistoricoKm[0].Origem)
	require.NotNil(t, v.DataUltimaManutencao)
	require.NotNil(t, v.DataProximaManutencao)
	assert.Equal(t, now, *v.DataUltimaManutencao)
	assert.Equal(t, now.AddDate(0, 6, 0), *v.DataProximaManutencao)
}

func TestVehicleUpdate_Odometer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)

	higher, lower := 51000, 40000
	require.NoError(t, f.shop.Vehicles.Update(ctx, v.ID, models.VehiclePatch{KmAtual: &higher}))
	require.NoError(t, f.shop.Vehicles.Update(ctx, v.ID, models.VehiclePatch{KmAtual: &lower}))

	got, _ := f.shop.Vehicles.Get(v.ID)
	assert.Equal(t, 51000, got.KmAtual)
	require.Len(t, got.HistoricoKm, 2)
	assert.Equal(t, models.SourceManual, got.HistoricoKm[1].Origem)
	assert.Equal(t, 51000, got.HistoricoKm[1].Km)
}

func TestVehicleUpdate_ClientMustExist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)

	missing := "missing"
	err := f.shop.Vehicles.Update(ctx, v.ID, models.VehiclePatch{ClienteID: &missing})
	require.ErrorIs(t, err, ErrClientNotFound)

	got, _ := f.shop.Vehicles.Get(v.ID)
	assert.Equal(t, ana.ID, got.ClienteID)
}

func TestVehicleUpdate_LastMaintenanceReschedules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.shop.Rules.Add(ctx, RuleInput{NomeServico: "Troca de Óleo", IntervaloMeses: 3})
	require.NoError(t, err)

	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)

	last := now.AddDate(0, -1, 0)
	require.NoError(t, f.shop.Vehicles.Update(ctx, v.ID, models.VehiclePatch{DataUltimaManutencao: &last}))

	got, _ := f.shop.Vehicles.Get(v.ID)
	assert.Equal(t, last, *got.DataUltimaManutencao)
	assert.Equal(t, last.AddDate(0, 3, 0), *got.DataProximaManutencao)
}

func TestOrderAdd_OdometerNeverDecreases(t *testing.T) {
	f := newFixture(t)
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)

	o := f.order(t, ana, v, 45000, now, nil, service("Revisão", 200))

	got, _ := f.shop.Vehicles.Get(v.ID)
	assert.Equal(t, 50000, got.KmAtual)
	require.Len(t, got.HistoricoKm, 2)
	assert.Equal(t, 45000, got.HistoricoKm[1].Km)
	assert.Equal(t, models.SourceOrder(o.ID), got.HistoricoKm[1].Origem)
}

func TestOrderAdd_NextMaintenanceUsesMatchingRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.shop.Rules.Add(ctx, RuleInput{NomeServico: "Troca de Óleo", IntervaloMeses: 3})
	require.NoError(t, err)
	_, err = f.shop.Rules.Add(ctx, RuleInput{NomeServico: "Alinhamento", IntervaloMeses: 12})
	require.NoError(t, err)

	ana := f.client(t, "Ana")
	civic := f.vehicle(t, ana.ID, "ABC1234", 50000)
	fit := f.vehicle(t, ana.ID, "DEF5678", 60000)
	gol := f.vehicle(t, ana.ID, "GHI9012", 70000)

	at := now.AddDate(0, 0, -10)
	f.order(t, ana, civic, 50100, at, nil, service("Alinhamento", 80))
	f.order(t, ana, fit, 60100, at, nil, service("Alinhamento", 80), service("Troca de Óleo", 120))
	f.order(t, ana, gol, 70100, at, nil, service("Lavagem", 40))

	cases := []struct {
		id     string
		months int
	}{
		{civic.ID, 12},
		{fit.ID, 3},
		{gol.ID, 6},
	}
	for _, tc := range cases {
		got, _ := f.shop.Vehicles.Get(tc.id)
		assert.Equal(t, at, *got.DataUltimaManutencao)
		assert.Equal(t, at.AddDate(0, tc.months, 0), *got.DataProximaManutencao, tc.id)
	}
}

func TestOrderAdd_StockGoesNegative(t *testing.T) {
	f := newFixture(t)
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)
	pad := f.part(t, "Pastilha", 1, 0, 50)

	o := f.order(t, ana, v, 50100, now, []models.UsedPart{used(pad, 2), used(pad, 1)})

	assert.Equal(t, "150", o.ValorTotal.String())
	got, _ := f.shop.Inventory.Get(pad.ID)
	assert.Equal(t, -2, got.QuantidadeAtual)
}

func TestOrderAdd_SnapshotPriceSurvivesRepricing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)
	pad := f.part(t, "Pastilha", 5, 0, 50)

	o := f.order(t, ana, v, 50100, now, []models.UsedPart{used(pad, 1)})

	price := money(80)
	require.NoError(t, f.shop.Inventory.Update(ctx, pad.ID, models.PartPatch{ValorUnitario: &price}))

	got, _ := f.shop.Orders.Get(o.ID)
	assert.Equal(t, "50", got.ValorTotal.String())
	assert.Equal(t, "50", got.PecasUsadas[0].ValorUnitarioSnapshot.String())
}

func TestOrderAdd_FormatsAuditDetail(t *testing.T) {
	f := newFixture(t)
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)

	o := f.order(t, ana, v, 50100, now, nil, service("Revisão", 250))

	last := f.shop.Logs(1)[0]
	assert.Equal(t, models.EntityOrder, last.Entidade)
	assert.Equal(t, "OS "+o.ID+" gerada. Valor: 250.00", last.Detalhes)
	assert.Equal(t, "OS "+o.ID, f.referencing(o.ID)[0].Descricao)
}

func TestInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	free := f.part(t, "Brinde", 3, 0, 0)
	assert.Empty(t, f.referencing(free.ID), "zero-cost stock books no expense")

	pad := f.part(t, "Pastilha", 4, 2, 25)
	purchase := f.referencing(pad.ID)
	require.Len(t, purchase, 1)
	assert.Equal(t, "100", purchase[0].Valor.String())
	assert.Equal(t, models.CategoryStock, purchase[0].Categoria)
	assert.Equal(t, "Compra de estoque: Pastilha (4 un.)", purchase[0].Descricao)

	require.NoError(t, f.shop.Inventory.CheckAvailability([]models.UsedPart{used(pad, 4)}))
	err := f.shop.Inventory.CheckAvailability([]models.UsedPart{used(pad, 3), used(pad, 2)})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Pastilha: requested 5, available 4")

	require.NoError(t, f.shop.Inventory.Delete(ctx, pad.ID))
	_, ok := f.shop.Inventory.Get(pad.ID)
	assert.False(t, ok)
	assert.Len(t, f.referencing(pad.ID), 1, "purchase stays in the ledger")
}

func TestLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rent, err := f.shop.Ledger.Add(ctx, TransactionInput{
		Descricao: "Aluguel", Tipo: models.Expense, Valor: money(1500), Categoria: models.CategoryRent,
	})
	require.NoError(t, err)
	assert.Equal(t, now, rent.Data)

	_, err = f.shop.Ledger.Add(ctx, TransactionInput{
		Descricao: "Serviço avulso", Tipo: models.Income, Valor: money(2000), Categoria: models.CategoryOther,
	})
	require.NoError(t, err)

	_, err = f.shop.Ledger.Add(ctx, TransactionInput{
		Descricao: "Conta antiga", Tipo: models.Expense, Valor: money(300),
		Categoria: models.CategoryBills, Data: now.AddDate(0, -1, 0),
	})
	require.NoError(t, err)

	sum := f.shop.Ledger.MonthSummary(now.Year(), now.Month())
	assert.Equal(t, "2000", sum.Income.String())
	assert.Equal(t, "1500", sum.Expense.String())
	assert.Equal(t, "500", sum.Balance.String())
	assert.Len(t, sum.Transactions, 2)

	amount := money(1200)
	require.NoError(t, f.shop.Ledger.Update(ctx, rent.ID, models.TransactionPatch{Valor: &amount}))
	sum = f.shop.Ledger.MonthSummary(now.Year(), now.Month())
	assert.Equal(t, "800", sum.Balance.String())

	require.NoError(t, f.shop.Ledger.Delete(ctx, rent.ID))
	assert.Len(t, f.shop.Ledger.List(), 2)
}

func TestRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.shop.Rules.Add(ctx, RuleInput{NomeServico: "Freios", IntervaloMeses: 24, VeiculoID: "v-1"})
	require.NoError(t, err)

	global := ""
	require.NoError(t, f.shop.Rules.Update(ctx, r.ID, models.RulePatch{VeiculoID: &global}))
	got := f.shop.Rules.List()
	require.Len(t, got, 1)
	assert.True(t, got[0].AppliesTo("any"))

	assert.Equal(t, "Regra Freios criada.", f.shop.Logs(0)[1].Detalhes)

	require.NoError(t, f.shop.Rules.Delete(ctx, r.ID))
	assert.Empty(t, f.shop.Rules.List())
}

func TestView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, store.DefaultView, f.shop.View.Current())

	err := f.shop.View.Set(ctx, "garage")
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, f.shop.View.Set(ctx, "inventory"))
	require.NoError(t, f.shop.View.Set(ctx, "inventory"))
	assert.Equal(t, "inventory", f.shop.View.Current())

	logs := f.shop.Logs(0)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionConfig, logs[0].Acao)
	assert.Equal(t, models.EntitySystem, logs[0].Entidade)
	assert.Equal(t, "Visão alterada para inventory.", logs[0].Detalhes)

	reopened := store.Open(ctx, f.repo, logging.Nop(), store.Defaults{})
	assert.Equal(t, "inventory", reopened.CurrentView())
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	diskFull := errors.New("disk full")
	f.repo.FailSet = func(key string) error {
		if key == store.KeyClients {
			return diskFull
		}
		return nil
	}

	c, err := f.shop.Clients.Add(ctx, ClientInput{Nome: "Ana"})
	require.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "failed to persist "+store.KeyClients)

	_, ok := f.shop.Clients.Get(c.ID)
	assert.True(t, ok)
	assert.Len(t, f.shop.Logs(0), 1, "audit entry is still written")
}

func TestAuditTrail(t *testing.T) {
	f := newFixture(t)
	ana := f.client(t, "Ana")
	f.vehicle(t, ana.ID, "ABC1234", 50000)
	f.part(t, "Filtro", 1, 0, 10)

	logs := f.shop.Logs(0)
	require.Len(t, logs, 3)

	want := []struct {
		entity models.EntityKind
		detail string
	}{
		{models.EntityStock, "Peça Filtro adicionada."},
		{models.EntityVehicle, "Veículo ABC1234 criado."},
		{models.EntityClient, "Cliente Ana criado."},
	}
	for i, w := range want {
		assert.Equal(t, models.ActionCreate, logs[i].Acao)
		assert.Equal(t, w.entity, logs[i].Entidade)
		assert.Equal(t, w.detail, logs[i].Detalhes)
		assert.Equal(t, now, logs[i].Timestamp)
	}
	assert.Len(t, f.shop.Logs(2), 2)
}

func TestGenerateServiceOrderDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)
	o := f.order(t, ana, v, 50100, now, nil, service("Revisão", 250))

	doc, err := f.shop.GenerateServiceOrderDocument(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, doc.OrderID)

	_, err = f.shop.GenerateServiceOrderDocument(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestShopMetricsAndAlertsReflectTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.shop.Rules.Add(ctx, RuleInput{NomeServico: "Troca de Óleo", IntervaloMeses: 6})
	require.NoError(t, err)

	ana := f.client(t, "Ana")
	v := f.vehicle(t, ana.ID, "ABC1234", 50000)
	f.order(t, ana, v, 50100, now.AddDate(0, 0, 20).AddDate(0, -6, 0), nil, service("Troca de Óleo", 150))

	alerts := f.shop.Alerts(ctx)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, "Troca de Óleo vence em 20 dias — Civic", alerts[0].Message)

	m := f.shop.Metrics(ctx)
	assert.Equal(t, 1, m.OSConcluidas)
	assert.Equal(t, "150", m.FaturamentoTotal.String())
}
