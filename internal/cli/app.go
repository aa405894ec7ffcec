package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/logging"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
	"github.com/dmitrijs2005/autoprime/internal/services"
	"github.com/dmitrijs2005/autoprime/internal/timex"
)

// Options wire an App. Shop is required; the rest have defaults.
type Options struct {
	Shop     *services.Shop
	Exporter *document.Exporter
	// Snapshot is read by the export command.
	Snapshot kv.Repository
	Log      logging.Logger
	Clock    timex.Clock

	In          io.Reader
	Out         io.Writer
	Interactive bool
}

type App struct {
	shop     *services.Shop
	exporter *document.Exporter
	snapshot kv.Repository
	log      logging.Logger
	clock    timex.Clock

	reader *bufio.Reader
	out    io.Writer
	tty    bool
}

func NewApp(o Options) *App {
	a := &App{
		shop:     o.Shop,
		exporter: o.Exporter,
		snapshot: o.Snapshot,
		log:      o.Log,
		clock:    o.Clock,
		out:      o.Out,
		tty:      o.Interactive,
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	if a.clock == nil {
		a.clock = timex.System
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	a.reader = bufio.NewReader(o.In)
	return a
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) interactive() bool {
	return a.tty
}

// prompts is where form prompts go. Piped input gets no prompts.
func (a *App) prompts() io.Writer {
	if a.tty {
		return a.out
	}
	return io.Discard
}

// Fail reports a command error to the user and the log.
func (a *App) Fail(ctx context.Context, cmd string, err error) {
	a.log.Error(ctx, "command failed", "command", cmd, "error", err)
	fmt.Fprintln(a.out, "error:", err)
}
