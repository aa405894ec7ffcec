package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  clients | addclient | editclient <id> | delclient <id>
  vehicles [client id] | addvehicle | editvehicle <id> | delvehicle <id>
  parts | addpart | editpart <id> | delpart <id>
  orders [vehicle id] | addorder | delorder <id> | print <id>
  rules | addrule | editrule <id> | delrule <id>
  ledger [yyyy-mm] | addtx | edittx <id> | deltx <id>
  alerts | dashboard | logs [n] | view [name] | export <file>
  exit`

// execIface defines the command surface the REPL dispatches to. The real App
// type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	interactive() bool
	Fail(ctx context.Context, cmd string, err error)

	ListClients(ctx context.Context) error
	AddClient(ctx context.Context) error
	EditClient(ctx context.Context, args []string) error
	DeleteClient(ctx context.Context, args []string) error

	ListVehicles(ctx context.Context, args []string) error
	AddVehicle(ctx context.Context) error
	EditVehicle(ctx context.Context, args []string) error
	DeleteVehicle(ctx context.Context, args []string) error

	ListParts(ctx context.Context) error
	AddPart(ctx context.Context) error
	EditPart(ctx context.Context, args []string) error
	DeletePart(ctx context.Context, args []string) error

	ListOrders(ctx context.Context, args []string) error
	AddOrder(ctx context.Context) error
	DeleteOrder(ctx context.Context, args []string) error
	PrintOrder(ctx context.Context, args []string) error

	ListRules(ctx context.Context) error
	AddRule(ctx context.Context) error
	EditRule(ctx context.Context, args []string) error
	DeleteRule(ctx context.Context, args []string) error

	Ledger(ctx context.Context, args []string) error
	AddTransaction(ctx context.Context) error
	EditTransaction(ctx context.Context, args []string) error
	DeleteTransaction(ctx context.Context, args []string) error

	Alerts(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Logs(ctx context.Context, args []string) error
	View(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

// runREPL reads one command per line from r and dispatches it to a. The
// prompt carries statusFn's value and is only printed for interactive
// sessions. Command errors are handed to a.Fail and the loop continues. It
// returns on EOF, "exit" or "quit".
//
// Commands and forms share r, so a form reads the lines that follow its
// command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		if a.interactive() {
			printlnFn(fmt.Sprintf("autoprime [%s]> ", statusFn()))
		}
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "clients":
			cmdErr = a.ListClients(ctx)
		case "addclient":
			cmdErr = a.AddClient(ctx)
		case "editclient":
			cmdErr = a.EditClient(ctx, args)
		case "delclient":
			cmdErr = a.DeleteClient(ctx, args)

		case "vehicles":
			cmdErr = a.ListVehicles(ctx, args)
		case "addvehicle":
			cmdErr = a.AddVehicle(ctx)
		case "editvehicle":
			cmdErr = a.EditVehicle(ctx, args)
		case "delvehicle":
			cmdErr = a.DeleteVehicle(ctx, args)

		case "parts":
			cmdErr = a.ListParts(ctx)
		case "addpart":
			cmdErr = a.AddPart(ctx)
		case "editpart":
			cmdErr = a.EditPart(ctx, args)
		case "delpart":
			cmdErr = a.DeletePart(ctx, args)

		case "orders":
			cmdErr = a.ListOrders(ctx, args)
		case "addorder":
			cmdErr = a.AddOrder(ctx)
		case "delorder":
			cmdErr = a.DeleteOrder(ctx, args)
		case "print":
			cmdErr = a.PrintOrder(ctx, args)

		case "rules":
			cmdErr = a.ListRules(ctx)
		case "addrule":
			cmdErr = a.AddRule(ctx)
		case "editrule":
			cmdErr = a.EditRule(ctx, args)
		case "delrule":
			cmdErr = a.DeleteRule(ctx, args)

		case "ledger":
			cmdErr = a.Ledger(ctx, args)
		case "addtx":
			cmdErr = a.AddTransaction(ctx)
		case "edittx":
			cmdErr = a.EditTransaction(ctx, args)
		case "deltx":
			cmdErr = a.DeleteTransaction(ctx, args)

		case "alerts":
			cmdErr = a.Alerts(ctx)
		case "dashboard":
			cmdErr = a.Dashboard(ctx)
		case "logs":
			cmdErr = a.Logs(ctx, args)
		case "view":
			cmdErr = a.View(ctx, args)
		case "export":
			cmdErr = a.Export(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.Fail(ctx, cmd, cmdErr)
		}
		if err != nil {
			return
		}
	}
}
