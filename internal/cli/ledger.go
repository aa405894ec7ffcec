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
	"github.com/shopspring/decimal"
)

// Ledger prints the income, expense and balance of one month, the current
// one unless args[0] names it as yyyy-mm.
func (a *App) Ledger(ctx context.Context, args []string) error {
	month := a.clock().UTC()
	if len(args) > 0 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("%w: month must be yyyy-mm", common.ErrValidation)
		}
		month = t
	}

	sum := a.shop.Ledger.MonthSummary(month.Year(), month.Month())
	fmt.Fprintf(a.out, "%s\n", month.Format("01/2006"))
	fmt.Fprintf(a.out, "  Receitas: %s\n  Despesas: %s\n  Saldo:    %s\n",
		document.FormatBRL(sum.Income), document.FormatBRL(sum.Expense), document.FormatBRL(sum.Balance))
	if len(sum.Transactions) == 0 {
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATA\tTIPO\tCATEGORIA\tVALOR\tDESCRIÇÃO")
	for _, t := range sum.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, document.FormatDate(t.Data), t.Tipo, t.Categoria, document.FormatBRL(t.Valor), t.Descricao)
	}
	return tw.Flush()
}

// parseType accepts the stored names and their initials.
func parseType(s string) string {
	switch strings.ToUpper(s) {
	case "R", string(models.Income):
		return string(models.Income)
	case "D", string(models.Expense):
		return string(models.Expense)
	}
	return s
}

func (a *App) AddTransaction(ctx context.Context) error {
	var (
		f   transactionForm
		err error
	)
	w := a.prompts()
	if f.Descricao, err = GetSimpleText(a.reader, "Descrição", w); err != nil {
		return err
	}
	tipo, err := GetSimpleText(a.reader, "Tipo (R)eceita / (D)espesa", w)
	if err != nil {
		return err
	}
	f.Tipo = parseType(tipo)

	cats := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		cats = append(cats, string(c))
	}
	cat, err := GetSimpleText(a.reader, "Categoria ("+strings.Join(cats, ", ")+")", w)
	if err != nil {
		return err
	}
	f.Categoria = strings.ToUpper(cat)
	if f.Valor, err = GetMoney(a.reader, "Valor", w, decimal.Zero); err != nil {
		return err
	}
	at, err := GetDate(a.reader, "Data (dd/mm/yyyy, blank for today)", w)
	if err != nil {
		return err
	}
	if err := validateForm(f); err != nil {
		return err
	}

	t, err := a.shop.Ledger.Add(ctx, services.TransactionInput{
		Descricao: f.Descricao,
		Tipo:      models.TransactionType(f.Tipo),
		Valor:     f.Valor,
		Data:      at,
		Categoria: models.TransactionCategory(f.Categoria),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transaction %s registered (%s).\n", t.Descricao, t.ID)
	return nil
}

// EditTransaction changes description, amount or date.
func (a *App) EditTransaction(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "transaction")
	if err != nil {
		return err
	}

	var current models.Transaction
	found := false
	for _, t := range a.shop.Ledger.List() {
		if t.ID == id {
			current, found = t, true
			break
		}
	}
	if !found {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}

	w := a.prompts()
	desc, err := GetSimpleText(a.reader, "Descrição ("+current.Descricao+")", w)
	if err != nil {
		return err
	}
	value, err := GetMoney(a.reader, "Valor ("+document.FormatBRL(current.Valor)+")", w, current.Valor)
	if err != nil {
		return err
	}
	at, err := GetDate(a.reader, "Data ("+document.FormatDate(current.Data)+")", w)
	if err != nil {
		return err
	}

	f := transactionForm{Descricao: current.Descricao, Tipo: string(current.Tipo), Categoria: string(current.Categoria), Valor: value}
	if desc != "" {
		f.Descricao = desc
	}
	if err := validateForm(f); err != nil {
		return err
	}

	patch := models.TransactionPatch{Descricao: optional(desc), Valor: &value}
	if !at.IsZero() {
		patch.Data = &at
	}
	if err := a.shop.Ledger.Update(ctx, id, patch); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transaction %s updated.\n", id)
	return nil
}

func (a *App) DeleteTransaction(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "transaction")
	if err != nil {
		return err
	}
	if err := a.shop.Ledger.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transaction %s removed.\n", id)
	return nil
}
