package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_OrderLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana := f.client(t, "Ana")
	civic := f.vehicle(t, ana.ID, "ABC1234", 50000)
	filter := f.part(t, "Oil Filter", 2, 5, 20)

	alerts := f.shop.Alerts(ctx)
	require.Len(t, alerts, 1)
	assert.Equal(t, "stock-"+filter.ID, alerts[0].ID)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)

	o := f.order(t, ana, civic, 50100, now, []models.UsedPart{used(filter, 1)}, service("Oil Change", 100))

	assert.Equal(t, "120", o.ValorTotal.String())
	assert.Equal(t, models.OrderCompleted, o.Status)

	p, _ := f.shop.Inventory.Get(filter.ID)
	assert.Equal(t, 1, p.QuantidadeAtual)

	alerts = f.shop.Alerts(ctx)
	require.Len(t, alerts, 1, "stock alert persists below minimum")
	assert.Equal(t, "Estoque Baixo: Oil Filter (1/5)", alerts[0].Message)

	v, _ := f.shop.Vehicles.Get(civic.ID)
	assert.Equal(t, 50100, v.KmAtual)

	income := f.referencing(o.ID)
	require.Len(t, income, 1)
	assert.Equal(t, models.Income, income[0].Tipo)
	assert.Equal(t, models.CategoryOrder, income[0].Categoria)
	assert.Equal(t, "120", income[0].Valor.String())

	assert.Equal(t, "120", f.shop.Metrics(ctx).FaturamentoTotal.String())

	// Deleting the order drops its revenue but does not restock.
	require.NoError(t, f.shop.Orders.Delete(ctx, o.ID))

	assert.Empty(t, f.referencing(o.ID))
	assert.True(t, f.shop.Metrics(ctx).FaturamentoTotal.IsZero())
	p, _ = f.shop.Inventory.Get(filter.ID)
	assert.Equal(t, 1, p.QuantidadeAtual)

	// The purchase expense is untouched.
	purchase := f.referencing(filter.ID)
	require.Len(t, purchase, 1)
	assert.Equal(t, models.Expense, purchase[0].Tipo)
	assert.Equal(t, "40", purchase[0].Valor.String())
}

func TestScenario_OverdueMaintenanceRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shop.Rules.Add(ctx, RuleInput{NomeServico: "Oil Change", IntervaloMeses: 6})
	require.NoError(t, err)

	ana := f.client(t, "Ana")
	civic := f.vehicle(t, ana.ID, "ABC1234", 50000)
	f.order(t, ana, civic, 50100, now.AddDate(0, -8, 0), nil, service("Oil Change", 100))

	alerts := f.shop.Alerts(ctx)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertMaintenance, alerts[0].Type)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, civic.ID, alerts[0].VeiculoID)
	assert.Equal(t, "Ana", alerts[0].ClientName)
	assert.Equal(t, "Oil Change VENCIDO — Civic (ABC1234)", alerts[0].Message)
}
