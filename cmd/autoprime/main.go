package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dmitrijs2005/autoprime/internal/buildinfo"
	"github.com/dmitrijs2005/autoprime/internal/cli"
	"github.com/dmitrijs2005/autoprime/internal/config"
	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/engine"
	"github.com/dmitrijs2005/autoprime/internal/filex"
	"github.com/dmitrijs2005/autoprime/internal/logging"
	"github.com/dmitrijs2005/autoprime/internal/services"
	"github.com/dmitrijs2005/autoprime/internal/storage"
	"github.com/dmitrijs2005/autoprime/internal/store"
)

func main() {
	interactive := cli.IsInteractive(os.Stdin)
	if interactive {
		buildinfo.PrintBuildData(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := newLogger(cfg)

	if err := run(ctx, cfg, logger, interactive); err != nil {
		logger.Error(ctx, "autoprime stopped", "error", err)
		log.Fatalf("%v", err)
	}
}

func newLogger(cfg *config.Config) logging.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogBackend == config.BackendSlog {
		return logging.NewTextSlogLogger(os.Stderr, level)
	}
	return logging.NewTextLogrusLogger(os.Stderr, level, cfg.LogJSON)
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger, interactive bool) error {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.ImportPath != "" {
		data, err := os.ReadFile(cfg.ImportPath)
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		n, err := storage.ImportSnapshot(ctx, db.DB, data, store.Keys())
		if err != nil {
			return err
		}
		logger.Info(ctx, "snapshot imported", "path", cfg.ImportPath, "keys", n)
	}

	s := store.Open(ctx, db.KV, logger, store.DefaultSettings())
	shop := services.NewShop(services.NewDeps(s, logger), engine.Policy{WarnWindowDays: cfg.WarnWindowDays})

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return err
	}

	app := cli.NewApp(cli.Options{
		Shop:        shop,
		Exporter:    exporter,
		Snapshot:    db.KV,
		Log:         logger,
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: interactive,
	})
	app.Run(ctx)
	return nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*storage.Database, error) {
	if cfg.Memory {
		return storage.InitDatabase(ctx, ":memory:")
	}
	if _, err := filex.EnsureDir(filepath.Dir(cfg.DBPath)); err != nil {
		return nil, err
	}
	return storage.InitDatabase(ctx, cfg.DBPath)
}

func newExporter(ctx context.Context, cfg *config.Config) (*document.Exporter, error) {
	renderer, err := document.NewHTMLRenderer(cfg.ShopName)
	if err != nil {
		return nil, err
	}

	var sink document.Sink
	switch cfg.Sink {
	case config.SinkS3:
		sink, err = document.NewS3Sink(ctx, cfg.S3Config())
	case config.SinkHTTP:
		sink, err = document.NewHTTPSink(cfg.UploadURL, nil)
	case config.SinkFS, "":
		sink, err = document.NewFileSink(cfg.DocumentsDir)
	default:
		err = fmt.Errorf("unknown document sink %q", cfg.Sink)
	}
	if err != nil {
		return nil, err
	}

	return &document.Exporter{
		Renderer: renderer,
		Sink:     document.TimeoutSink{Sink: sink, Timeout: cfg.UploadTimeout},
	}, nil
}
