package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/filex"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/dmitrijs2005/autoprime/internal/storage"
)

const defaultLogCount = 20

func (a *App) Dashboard(ctx context.Context) error {
	m := a.shop.Metrics(ctx)

	fmt.Fprintf(a.out, "Faturamento total: %s\n", document.FormatBRL(m.FaturamentoTotal))
	fmt.Fprintf(a.out, "Faturamento do mês: %s\n", document.FormatBRL(m.FaturamentoMes))
	fmt.Fprintf(a.out, "OS abertas: %d  concluídas: %d\n", m.OSAbertas, m.OSConcluidas)
	fmt.Fprintf(a.out, "Ticket médio: %s\n", document.FormatBRL(m.TicketMedio))
	fmt.Fprintf(a.out, "Clientes: %d  Veículos: %d\n", len(a.shop.Clients.List()), len(a.shop.Vehicles.List()))
	if len(m.TopServicos) > 0 {
		fmt.Fprintln(a.out, "Serviços mais realizados:")
		for i, s := range m.TopServicos {
			fmt.Fprintf(a.out, "  %d. %s (%d)\n", i+1, s.Nome, s.Qtd)
		}
	}
	return nil
}

func (a *App) Alerts(ctx context.Context) error {
	alerts := a.shop.Alerts(ctx)
	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No alerts.")
		return nil
	}
	for _, al := range alerts {
		line := fmt.Sprintf("[%s] %s", severityLabel(al.Severity), al.Message)
		if al.ClientName != "" {
			line += " | " + al.ClientName
			if al.ClientPhone != "" {
				line += " " + al.ClientPhone
			}
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func severityLabel(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "CRÍTICO"
	case models.SeverityWarning:
		return "AVISO"
	default:
		return "INFO"
	}
}

// Logs prints the newest audit entries, 20 unless args[0] says otherwise.
func (a *App) Logs(ctx context.Context, args []string) error {
	n := defaultLogCount
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not a count", common.ErrValidation, args[0])
		}
		n = v
	}

	logs := a.shop.Logs(n)
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No log entries.")
		return nil
	}
	tw := a.table()
	for _, e := range logs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Timestamp.UTC().Format("02/01/2006 15:04"), e.Acao, e.Entidade, e.Detalhes)
	}
	return tw.Flush()
}

// Export writes every stored key to args[0] as one JSON snapshot that the
// -i flag can load again.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: export <file>", common.ErrValidation)
	}
	if a.snapshot == nil {
		return fmt.Errorf("snapshot export is not configured")
	}

	data, err := storage.ExportSnapshot(ctx, a.snapshot)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(args[0], data, 0o600); err != nil {
		return err
	}
	a.log.Info(ctx, "snapshot exported", "path", args[0], "bytes", len(data))
	fmt.Fprintf(a.out, "Snapshot written to %s\n", args[0])
	return nil
}
