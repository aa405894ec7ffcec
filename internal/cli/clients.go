package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/services"
)

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) ListClients(ctx context.Context) error {
	clients := a.shop.Clients.List()
	if len(clients) == 0 {
		fmt.Fprintln(a.out, "No clients.")
		return nil
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tNOME\tTELEFONE\tEMAIL\tVEÍCULOS\tATIVO")
	for _, c := range clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			c.ID, c.Nome, c.Telefone, c.Email, len(a.shop.Vehicles.ByClient(c.ID)), yesNo(c.Ativo))
	}
	return tw.Flush()
}

func (a *App) readClientForm() (clientForm, error) {
	var (
		f   clientForm
		err error
	)
	w := a.prompts()
	if f.Nome, err = GetSimpleText(a.reader, "Nome", w); err != nil {
		return f, err
	}
	if f.Telefone, err = GetSimpleText(a.reader, "Telefone", w); err != nil {
		return f, err
	}
	if f.Email, err = GetSimpleText(a.reader, "Email (optional)", w); err != nil {
		return f, err
	}
	if f.Notas, err = GetSimpleText(a.reader, "Notas (optional)", w); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) AddClient(ctx context.Context) error {
	f, err := a.readClientForm()
	if err != nil {
		return err
	}
	if err := validateForm(f); err != nil {
		return err
	}

	c, err := a.shop.Clients.Add(ctx, services.ClientInput{Nome: f.Nome, Telefone: f.Telefone, Email: f.Email, Notas: f.Notas})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Client %s created (%s).\n", c.Nome, c.ID)
	return nil
}

// EditClient asks for every field; blank answers keep the stored value.
func (a *App) EditClient(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "client")
	if err != nil {
		return err
	}
	current, ok := a.shop.Clients.Get(id)
	if !ok {
		return fmt.Errorf("client %s: %w", id, common.ErrNotFound)
	}

	f, err := a.readClientForm()
	if err != nil {
		return err
	}
	merged := clientForm{Nome: current.Nome, Telefone: current.Telefone, Email: current.Email}
	if f.Nome != "" {
		merged.Nome = f.Nome
	}
	if f.Telefone != "" {
		merged.Telefone = f.Telefone
	}
	if f.Email != "" {
		merged.Email = f.Email
	}
	if err := validateForm(merged); err != nil {
		return err
	}

	patch := models.ClientPatch{
		Nome:     optional(f.Nome),
		Telefone: optional(f.Telefone),
		Email:    optional(f.Email),
		Notas:    optional(f.Notas),
	}
	if err := a.shop.Clients.Update(ctx, id, patch); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Client %s updated.\n", id)
	return nil
}

// DeleteClient removes the client with its vehicles, orders and their
// revenue entries.
func (a *App) DeleteClient(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "client")
	if err != nil {
		return err
	}
	if err := a.shop.Clients.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Client %s removed.\n", id)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "não"
}

func money(o models.ServiceOrder) string {
	return document.FormatBRL(o.ValorTotal)
}
