package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/autoprime/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database file
//	-l string   log level
//	-o string   documents directory
//	-m          in-memory store
//	-i string   snapshot to import
//
// os.Args is filtered through flagx.FilterArgs first so the JSON path flags
// do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-o", "-m", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the SQLite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.DocumentsDir, "o", cfg.DocumentsDir, "directory for exported documents")
	fs.BoolVar(&cfg.Memory, "m", cfg.Memory, "keep all data in memory")
	fs.StringVar(&cfg.ImportPath, "i", cfg.ImportPath, "JSON snapshot to import on start")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
