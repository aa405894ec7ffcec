package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/services"
	"github.com/shopspring/decimal"
)

func (a *App) ListParts(ctx context.Context) error {
	parts := a.shop.Inventory.List()
	if len(parts) == 0 {
		fmt.Fprintln(a.out, "No parts.")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tPEÇA\tQTD\tMÍN\tVALOR\tTOTAL\t")
	for _, p := range parts {
		flag := ""
		if p.BelowMinimum() {
			flag = "BAIXO"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			p.ID, p.NomePeca, p.QuantidadeAtual, p.QuantidadeMinima,
			document.FormatBRL(p.ValorUnitario), document.FormatBRL(p.StockValue()), flag)
	}
	return tw.Flush()
}

func (a *App) AddPart(ctx context.Context) error {
	var (
		f   partForm
		err error
	)
	w := a.prompts()
	if f.NomePeca, err = GetSimpleText(a.reader, "Nome da peça", w); err != nil {
		return err
	}
	if f.QuantidadeAtual, err = GetInt(a.reader, "Quantidade", w, 0); err != nil {
		return err
	}
	if f.QuantidadeMinima, err = GetInt(a.reader, "Quantidade mínima", w, 0); err != nil {
		return err
	}
	if f.ValorUnitario, err = GetMoney(a.reader, "Valor unitário", w, decimal.Zero); err != nil {
		return err
	}
	if err := validateForm(f); err != nil {
		return err
	}

	p, err := a.shop.Inventory.Add(ctx, services.PartInput{
		NomePeca:         f.NomePeca,
		QuantidadeAtual:  f.QuantidadeAtual,
		QuantidadeMinima: f.QuantidadeMinima,
		ValorUnitario:    f.ValorUnitario,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Part %s added (%s). Stock value %s.\n", p.NomePeca, p.ID, document.FormatBRL(p.StockValue()))
	return nil
}

// EditPart changes name, quantities or price. Restocking through here books
// no expense.
func (a *App) EditPart(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "part")
	if err != nil {
		return err
	}
	p, ok := a.shop.Inventory.Get(id)
	if !ok {
		return fmt.Errorf("part %s: %w", id, common.ErrNotFound)
	}

	f := partForm{NomePeca: p.NomePeca, QuantidadeAtual: p.QuantidadeAtual, QuantidadeMinima: p.QuantidadeMinima, ValorUnitario: p.ValorUnitario}
	w := a.prompts()
	name, err := GetSimpleText(a.reader, "Nome ("+p.NomePeca+")", w)
	if err != nil {
		return err
	}
	if name != "" {
		f.NomePeca = name
	}
	if f.QuantidadeAtual, err = GetInt(a.reader, fmt.Sprintf("Quantidade (%d)", p.QuantidadeAtual), w, p.QuantidadeAtual); err != nil {
		return err
	}
	if f.QuantidadeMinima, err = GetInt(a.reader, fmt.Sprintf("Quantidade mínima (%d)", p.QuantidadeMinima), w, p.QuantidadeMinima); err != nil {
		return err
	}
	if f.ValorUnitario, err = GetMoney(a.reader, "Valor unitário ("+document.FormatBRL(p.ValorUnitario)+")", w, p.ValorUnitario); err != nil {
		return err
	}
	if err := validateForm(f); err != nil {
		return err
	}

	patch := models.PartPatch{
		NomePeca:         &f.NomePeca,
		QuantidadeAtual:  &f.QuantidadeAtual,
		QuantidadeMinima: &f.QuantidadeMinima,
		ValorUnitario:    &f.ValorUnitario,
	}
	if err := a.shop.Inventory.Update(ctx, id, patch); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Part %s updated.\n", id)
	return nil
}

func (a *App) DeletePart(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "part")
	if err != nil {
		return err
	}
	if err := a.shop.Inventory.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Part %s removed.\n", id)
	return nil
}
