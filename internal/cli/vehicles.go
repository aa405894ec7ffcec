package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/services"
)

// ListVehicles lists every vehicle, or only those of the client in args[0].
func (a *App) ListVehicles(ctx context.Context, args []string) error {
	vehicles := a.shop.Vehicles.List()
	if len(args) > 0 {
		vehicles = a.shop.Vehicles.ByClient(args[0])
	}
	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "No vehicles.")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tPLACA\tMODELO\tCLIENTE\tKM\tÚLTIMA\tPRÓXIMA")
	for _, v := range vehicles {
		owner := models.RemovedClient
		if c, ok := a.shop.Clients.Get(v.ClienteID); ok {
			owner = c.Nome
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			v.ID, v.Placa, strings.TrimSpace(v.Marca+" "+v.Modelo), owner, v.KmAtual,
			formatDatePtr(v.DataUltimaManutencao), formatDatePtr(v.DataProximaManutencao))
	}
	return tw.Flush()
}

func (a *App) AddVehicle(ctx context.Context) error {
	var (
		f   vehicleForm
		err error
	)
	w := a.prompts()
	if f.ClienteID, err = GetSimpleText(a.reader, "Client id", w); err != nil {
		return err
	}
	if f.Placa, err = GetSimpleText(a.reader, "Placa", w); err != nil {
		return err
	}
	if f.Modelo, err = GetSimpleText(a.reader, "Modelo", w); err != nil {
		return err
	}
	if f.Marca, err = GetSimpleText(a.reader, "Marca (optional)", w); err != nil {
		return err
	}
	if f.Ano, err = GetInt(a.reader, "Ano (optional)", w, 0); err != nil {
		return err
	}
	if f.KmEntrada, err = GetInt(a.reader, "Km de entrada", w, 0); err != nil {
		return err
	}
	last, err := GetDate(a.reader, "Última manutenção (dd/mm/yyyy, blank for today)", w)
	if err != nil {
		return err
	}
	f.Placa = strings.ToUpper(f.Placa)
	if err := validateForm(f); err != nil {
		return err
	}

	in := services.VehicleInput{
		Placa:     f.Placa,
		Modelo:    f.Modelo,
		Marca:     f.Marca,
		Ano:       f.Ano,
		ClienteID: f.ClienteID,
		KmEntrada: f.KmEntrada,
	}
	if !last.IsZero() {
		in.DataUltimaManutencao = &last
	}
	v, err := a.shop.Vehicles.Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Vehicle %s created (%s). Next maintenance %s.\n", v.Placa, v.ID, formatDatePtr(v.DataProximaManutencao))
	return nil
}

// EditVehicle updates the odometer, the last maintenance date and the
// descriptive fields. Blank answers keep the stored value.
func (a *App) EditVehicle(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "vehicle")
	if err != nil {
		return err
	}
	v, ok := a.shop.Vehicles.Get(id)
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id, common.ErrNotFound)
	}

	w := a.prompts()
	modelo, err := GetSimpleText(a.reader, "Modelo ("+v.Modelo+")", w)
	if err != nil {
		return err
	}
	km, err := GetInt(a.reader, fmt.Sprintf("Km atual (%d)", v.KmAtual), w, v.KmAtual)
	if err != nil {
		return err
	}
	last, err := GetDate(a.reader, "Última manutenção ("+formatDatePtr(v.DataUltimaManutencao)+")", w)
	if err != nil {
		return err
	}
	notas, err := GetSimpleText(a.reader, "Notas", w)
	if err != nil {
		return err
	}
	if km < 0 {
		return fmt.Errorf("%w: km must be greater than or equal to 0", common.ErrValidation)
	}

	patch := models.VehiclePatch{Modelo: optional(modelo), Notas: optional(notas)}
	if km != v.KmAtual {
		patch.KmAtual = &km
	}
	if !last.IsZero() {
		patch.DataUltimaManutencao = &last
	}
	if err := a.shop.Vehicles.Update(ctx, id, patch); err != nil {
		return err
	}
	if km < v.KmAtual {
		fmt.Fprintf(a.out, "Odometer kept at %d km; it never goes back.\n", v.KmAtual)
	}
	fmt.Fprintf(a.out, "Vehicle %s updated.\n", id)
	return nil
}

func (a *App) DeleteVehicle(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "vehicle")
	if err != nil {
		return err
	}
	if err := a.shop.Vehicles.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Vehicle %s removed.\n", id)
	return nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return document.FormatDate(*t)
}
