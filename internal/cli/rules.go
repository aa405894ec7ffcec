package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/services"
)

func (a *App) ListRules(ctx context.Context) error {
	rules := a.shop.Rules.List()
	if len(rules) == 0 {
		fmt.Fprintln(a.out, "No maintenance rules.")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tSERVIÇO\tINTERVALO\tESCOPO")
	for _, r := range rules {
		scope := "global"
		if r.VeiculoID != "" {
			scope = r.VeiculoID
			if v, ok := a.shop.Vehicles.Get(r.VeiculoID); ok {
				scope = v.Placa
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d meses\t%s\n", r.ID, r.NomeServico, r.IntervaloMeses, scope)
	}
	return tw.Flush()
}

func (a *App) AddRule(ctx context.Context) error {
	var (
		f   ruleForm
		err error
	)
	w := a.prompts()
	if f.NomeServico, err = GetSimpleText(a.reader, "Serviço", w); err != nil {
		return err
	}
	if f.IntervaloMeses, err = GetInt(a.reader, "Intervalo (meses)", w, 0); err != nil {
		return err
	}
	if f.VeiculoID, err = GetSimpleText(a.reader, "Vehicle id (blank for all vehicles)", w); err != nil {
		return err
	}
	if err := validateForm(f); err != nil {
		return err
	}
	if f.VeiculoID != "" {
		if _, ok := a.shop.Vehicles.Get(f.VeiculoID); !ok {
			return fmt.Errorf("vehicle %s: %w", f.VeiculoID, common.ErrNotFound)
		}
	}

	r, err := a.shop.Rules.Add(ctx, services.RuleInput{NomeServico: f.NomeServico, IntervaloMeses: f.IntervaloMeses, VeiculoID: f.VeiculoID})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Rule %s created (%s).\n", r.NomeServico, r.ID)
	return nil
}

// EditRule changes a rule's service, interval or scope. Blank answers keep
// the stored value; "-" as the vehicle id makes the rule global.
func (a *App) EditRule(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "rule")
	if err != nil {
		return err
	}
	var current models.MaintenanceRule
	found := false
	for _, r := range a.shop.Rules.List() {
		if r.ID == id {
			current, found = r, true
			break
		}
	}
	if !found {
		return fmt.Errorf("rule %s: %w", id, common.ErrNotFound)
	}

	f := ruleForm{NomeServico: current.NomeServico, IntervaloMeses: current.IntervaloMeses, VeiculoID: current.VeiculoID}
	w := a.prompts()
	name, err := GetSimpleText(a.reader, "Serviço ("+current.NomeServico+")", w)
	if err != nil {
		return err
	}
	if name != "" {
		f.NomeServico = name
	}
	if f.IntervaloMeses, err = GetInt(a.reader, fmt.Sprintf("Intervalo em meses (%d)", current.IntervaloMeses), w, current.IntervaloMeses); err != nil {
		return err
	}
	scope, err := GetSimpleText(a.reader, "Vehicle id (blank keeps, - for all vehicles)", w)
	if err != nil {
		return err
	}
	switch scope {
	case "":
	case "-":
		f.VeiculoID = ""
	default:
		f.VeiculoID = scope
	}
	if err := validateForm(f); err != nil {
		return err
	}
	if f.VeiculoID != "" && f.VeiculoID != current.VeiculoID {
		if _, ok := a.shop.Vehicles.Get(f.VeiculoID); !ok {
			return fmt.Errorf("vehicle %s: %w", f.VeiculoID, common.ErrNotFound)
		}
	}

	patch := models.RulePatch{
		NomeServico:    &f.NomeServico,
		IntervaloMeses: &f.IntervaloMeses,
		VeiculoID:      &f.VeiculoID,
	}
	if err := a.shop.Rules.Update(ctx, id, patch); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Rule %s updated.\n", id)
	return nil
}

func (a *App) DeleteRule(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "rule")
	if err != nil {
		return err
	}
	if err := a.shop.Rules.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Rule %s removed.\n", id)
	return nil
}
