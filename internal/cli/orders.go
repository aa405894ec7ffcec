package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/services"
)

// ListOrders lists every order, or only those of the vehicle in args[0].
func (a *App) ListOrders(ctx context.Context, args []string) error {
	orders := a.shop.Orders.List()
	if len(args) > 0 {
		orders = a.shop.Orders.ByVehicle(args[0])
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No service orders.")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATA\tVEÍCULO\tCLIENTE\tSERVIÇOS\tTOTAL\tSTATUS")
	for _, o := range orders {
		plate := models.RemovedVehicle
		if v, ok := a.shop.Vehicles.Get(o.VeiculoID); ok {
			plate = v.Placa
		}
		owner := models.RemovedClient
		if c, ok := a.shop.Clients.Get(o.ClienteID); ok {
			owner = c.Nome
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, document.FormatDate(o.Data), plate, owner,
			strings.Join(engine.ServiceNames(o.Servicos), ", "), money(o), o.Status)
	}
	return tw.Flush()
}

// AddOrder books a completed order. Part lines must be covered by stock;
// the check runs before anything is written.
func (a *App) AddOrder(ctx context.Context) error {
	w := a.prompts()

	vehicleID, err := GetSimpleText(a.reader, "Vehicle id", w)
	if err != nil {
		return err
	}
	v, ok := a.shop.Vehicles.Get(vehicleID)
	if !ok && vehicleID != "" {
		return fmt.Errorf("vehicle %s: %w", vehicleID, common.ErrNotFound)
	}

	form := orderForm{VeiculoID: vehicleID}
	if form.KmNoServico, err = GetInt(a.reader, fmt.Sprintf("Km no serviço (%d)", v.KmAtual), w, v.KmAtual); err != nil {
		return err
	}

	svc, err := GetPairs(a.reader, "Serviços (nome=valor)", w)
	if err != nil {
		return err
	}
	for _, p := range svc {
		value, err := ParseMoney(p[1])
		if err != nil {
			return fmt.Errorf("serviço %s: %w", p[0], err)
		}
		form.Servicos = append(form.Servicos, serviceLine{Nome: p[0], Valor: value})
	}

	parts, err := GetPairs(a.reader, "Peças (id=quantidade)", w)
	if err != nil {
		return err
	}
	for _, p := range parts {
		qty, err := strconv.Atoi(p[1])
		if err != nil {
			return fmt.Errorf("peça %s: %q is not a whole number", p[0], p[1])
		}
		form.Pecas = append(form.Pecas, partLine{PartID: p[0], Quantidade: qty})
	}

	mecanico, err := GetSimpleText(a.reader, "Mecânico (optional)", w)
	if err != nil {
		return err
	}
	notas, err := GetSimpleText(a.reader, "Notas (optional)", w)
	if err != nil {
		return err
	}
	at, err := GetDate(a.reader, "Data (dd/mm/yyyy, blank for today)", w)
	if err != nil {
		return err
	}

	if err := validateForm(form); err != nil {
		return err
	}
	if len(form.Servicos) == 0 && len(form.Pecas) == 0 {
		return fmt.Errorf("%w: an order needs at least one service or part", common.ErrValidation)
	}

	used, err := a.usedParts(form.Pecas)
	if err != nil {
		return err
	}
	if err := a.shop.Inventory.CheckAvailability(used); err != nil {
		return err
	}

	items := make([]models.ServiceItem, 0, len(form.Servicos))
	for _, s := range form.Servicos {
		items = append(items, models.ServiceItem{Nome: s.Nome, Valor: s.Valor})
	}

	o, err := a.shop.Orders.Add(ctx, services.OrderInput{
		ClienteID:   v.ClienteID,
		VeiculoID:   v.ID,
		KmNoServico: form.KmNoServico,
		PecasUsadas: used,
		Servicos:    items,
		Data:        at,
		Mecanico:    mecanico,
		Notas:       notas,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Service order %s booked. Total %s.\n", o.ID, money(o))
	return nil
}

// usedParts snapshots the current name and price of each line's part.
func (a *App) usedParts(lines []partLine) ([]models.UsedPart, error) {
	used := make([]models.UsedPart, 0, len(lines))
	for _, l := range lines {
		p, ok := a.shop.Inventory.Get(l.PartID)
		if !ok {
			return nil, fmt.Errorf("part %s: %w", l.PartID, common.ErrNotFound)
		}
		used = append(used, models.UsedPart{
			PartID:                p.ID,
			NomePeca:              p.NomePeca,
			Quantidade:            l.Quantidade,
			ValorUnitarioSnapshot: p.ValorUnitario,
		})
	}
	return used, nil
}

// DeleteOrder removes the order and its revenue. Consumed parts are not
// returned to stock.
func (a *App) DeleteOrder(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "order")
	if err != nil {
		return err
	}
	if err := a.shop.Orders.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Service order %s removed.\n", id)
	return nil
}

// PrintOrder renders the printable document of an order and stores it.
func (a *App) PrintOrder(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "order")
	if err != nil {
		return err
	}
	if a.exporter == nil {
		return errors.New("document export is not configured")
	}

	doc, err := a.shop.GenerateServiceOrderDocument(ctx, id)
	if err != nil {
		return err
	}
	loc, err := a.exporter.Export(ctx, doc)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "document exported", "order_id", id, "location", loc)
	fmt.Fprintf(a.out, "Document saved to %s\n", loc)
	return nil
}
