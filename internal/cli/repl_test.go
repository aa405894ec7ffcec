package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	tty bool

	calls  []string
	args   [][]string
	failed []string
	err    error
}

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) interactive() bool {
	return f.tty
}
func (f *fakeExec) Fail(ctx context.Context, cmd string, err error) {
	f.failed = append(f.failed, cmd)
}

func (f *fakeExec) ListClients(ctx context.Context) error {
	return f.call("clients", nil)
}
func (f *fakeExec) AddClient(ctx context.Context) error {
	return f.call("addclient", nil)
}
func (f *fakeExec) EditClient(ctx context.Context, args []string) error {
	return f.call("editclient", args)
}
func (f *fakeExec) DeleteClient(ctx context.Context, args []string) error {
	return f.call("delclient", args)
}
func (f *fakeExec) ListVehicles(ctx context.Context, args []string) error {
	return f.call("vehicles", args)
}
func (f *fakeExec) AddVehicle(ctx context.Context) error {
	return f.call("addvehicle", nil)
}
func (f *fakeExec) EditVehicle(ctx context.Context, args []string) error {
	return f.call("editvehicle", args)
}
func (f *fakeExec) DeleteVehicle(ctx context.Context, args []string) error {
	return f.call("delvehicle", args)
}
func (f *fakeExec) ListParts(ctx context.Context) error {
	return f.call("parts", nil)
}
func (f *fakeExec) AddPart(ctx context.Context) error {
	return f.call("addpart", nil)
}
func (f *fakeExec) EditPart(ctx context.Context, args []string) error {
	return f.call("editpart", args)
}
func (f *fakeExec) DeletePart(ctx context.Context, args []string) error {
	return f.call("delpart", args)
}
func (f *fakeExec) ListOrders(ctx context.Context, args []string) error {
	return f.call("orders", args)
}
func (f *fakeExec) AddOrder(ctx context.Context) error {
	return f.call("addorder", nil)
}
func (f *fakeExec) DeleteOrder(ctx context.Context, args []string) error {
	return f.call("delorder", args)
}
func (f *fakeExec) PrintOrder(ctx context.Context, args []string) error {
	return f.call("print", args)
}
func (f *fakeExec) ListRules(ctx context.Context) error {
	return f.call("rules", nil)
}
func (f *fakeExec) AddRule(ctx context.Context) error {
	return f.call("addrule", nil)
}
func (f *fakeExec) EditRule(ctx context.Context, args []string) error {
	return f.call("editrule", args)
}
func (f *fakeExec) DeleteRule(ctx context.Context, args []string) error {
	return f.call("delrule", args)
}
func (f *fakeExec) Ledger(ctx context.Context, args []string) error {
	return f.call("ledger", args)
}
func (f *fakeExec) AddTransaction(ctx context.Context) error {
	return f.call("addtx", nil)
}
func (f *fakeExec) EditTransaction(ctx context.Context, args []string) error {
	return f.call("edittx", args)
}
func (f *fakeExec) DeleteTransaction(ctx context.Context, args []string) error {
	return f.call("deltx", args)
}
func (f *fakeExec) Alerts(ctx context.Context) error {
	return f.call("alerts", nil)
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	return f.call("dashboard", nil)
}
func (f *fakeExec) Logs(ctx context.Context, args []string) error {
	return f.call("logs", args)
}
func (f *fakeExec) View(ctx context.Context, args []string) error {
	return f.call("view", args)
}
func (f *fakeExec) Export(ctx context.Context, args []string) error {
	return f.call("export", args)
}

func silencePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesEveryCommand(t *testing.T) {
	silencePrint(t)

	cmds := []string{
		"clients", "addclient", "editclient", "delclient",
		"vehicles", "addvehicle", "editvehicle", "delvehicle",
		"parts", "addpart", "editpart", "delpart",
		"orders", "addorder", "delorder", "print",
		"rules", "addrule", "editrule", "delrule",
		"ledger", "addtx", "edittx", "deltx",
		"alerts", "dashboard", "logs", "view", "export",
	}
	input := strings.NewReader(strings.Join(append(cmds, "exit", "clients"), "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "dashboard" }, bufio.NewReader(input))

	assert.Equal(t, cmds, exec.calls, "nothing runs after exit")
}

func TestRunREPL_PassesArguments(t *testing.T) {
	silencePrint(t)

	input := strings.NewReader("delclient  c-1 \nledger 2024-09\nview\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(input))

	require.Len(t, exec.args, 3)
	assert.Equal(t, []string{"c-1"}, exec.args[0])
	assert.Equal(t, []string{"2024-09"}, exec.args[1])
	assert.Empty(t, exec.args[2])
}

func TestRunREPL_PromptOnlyWhenInteractive(t *testing.T) {
	lines := silencePrint(t)
	runREPL(context.Background(), &fakeExec{}, func() string { return "os" }, bufio.NewReader(strings.NewReader("\n\nquit\n")))
	assert.Equal(t, []string{"Bye!"}, *lines)

	lines = silencePrint(t)
	runREPL(context.Background(), &fakeExec{tty: true}, func() string { return "os" }, bufio.NewReader(strings.NewReader("quit\n")))
	require.Len(t, *lines, 2)
	assert.Equal(t, "autoprime [os]> ", (*lines)[0])
}

func TestRunREPL_ErrorsGoToFailAndLoopContinues(t *testing.T) {
	silencePrint(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("addclient\nparts")))

	assert.Equal(t, []string{"addclient", "parts"}, exec.calls, "last line without newline still runs")
	assert.Equal(t, []string{"addclient", "parts"}, exec.failed)
}

func TestRunREPL_UnknownAndHelp(t *testing.T) {
	lines := silencePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("foobar\nhelp\n")))

	assert.Empty(t, exec.calls)
	require.Len(t, *lines, 2)
	assert.Equal(t, "Unknown command: foobar", (*lines)[0])
	assert.Contains(t, (*lines)[1], "addorder")
}
