package cli

import (
	"context"
	"fmt"
)

func (a *App) status() string {
	return a.shop.View.Current()
}

func (a *App) Root(ctx context.Context) {
	if a.tty {
		printlnFn("Welcome to AutoPrime Oficina (type 'help' for commands)")
	}
	a.log.Info(ctx, "session started", "view", a.status())

	// The persisted view decides what is shown first.
	if err := a.showView(ctx, a.status()); err != nil {
		a.Fail(ctx, "view", err)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) showView(ctx context.Context, view string) error {
	switch view {
	case "clients":
		return a.ListClients(ctx)
	case "vehicles":
		return a.ListVehicles(ctx, nil)
	case "inventory":
		return a.ListParts(ctx)
	case "os":
		return a.ListOrders(ctx, nil)
	case "financial":
		return a.Ledger(ctx, nil)
	case "settings":
		if err := a.ListRules(ctx); err != nil {
			return err
		}
		return a.Logs(ctx, nil)
	default:
		if err := a.Dashboard(ctx); err != nil {
			return err
		}
		return a.Alerts(ctx)
	}
}

func (a *App) View(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Current view: %s\n", a.status())
		return nil
	}
	if err := a.shop.View.Set(ctx, args[0]); err != nil {
		return err
	}
	return a.showView(ctx, args[0])
}
