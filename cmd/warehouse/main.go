package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/riteshp/warehouse/internal/cli"
	"github.com/riteshp/warehouse/internal/loader"
	"github.com/riteshp/warehouse/internal/model"
	"github.com/riteshp/warehouse/internal/store"
)

// setupLogger configures structured logging. The console UI owns stdout, so
// logs go to stderr, optionally teed to a file. Returns a cleanup function
// that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	w := io.Writer(os.Stderr)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		w = io.MultiWriter(os.Stderr, f)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	return cleanup, nil
}

func main() {
	fs := flag.NewFlagSet("warehouse", flag.ContinueOnError)

	var dataPath string
	fs.StringVar(&dataPath, "data", "data.json", "")
	fs.StringVar(&dataPath, "d", "data.json", "")

	var dbPath string
	fs.StringVar(&dbPath, "db", "", "")
	fs.StringVar(&dbPath, "b", "", "")

	var skipInvalid bool
	fs.BoolVar(&skipInvalid, "skip-invalid", false, "")
	fs.BoolVar(&skipInvalid, "s", false, "")

	var logPath string
	fs.StringVar(&logPath, "log", "", "")
	fs.StringVar(&logPath, "l", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: warehouse [flags]

Browse a warehouse inventory snapshot interactively.

Flags:
  -d, -data <path>    JSON item records file (default: data.json)
  -b, -db <path>      read item records from a SQLite database instead
  -s, -skip-invalid   skip malformed records instead of aborting the load
  -l, -log <path>     log file path (default: stderr only)
  -h, -help           show this help and exit
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	items, err := loadItems(dataPath, dbPath, skipInvalid)
	if err != nil {
		slog.Error("failed to load items", "error", err)
		os.Exit(1)
	}

	s := store.New(items)
	slog.Info("inventory loaded",
		"items", len(items),
		"warehouses", len(s.Warehouses()),
		"categories", len(s.Categories()))

	cli.NewSession(s, os.Stdin, os.Stdout).Run()
}

// loadItems reads raw records from the chosen source and converts them into
// the canonical item set. With skipInvalid set, malformed records are logged
// and dropped instead of aborting the load.
func loadItems(dataPath, dbPath string, skipInvalid bool) ([]model.Item, error) {
	var records []loader.Record
	var err error

	if dbPath != "" {
		records, err = loader.LoadSQLite(context.Background(), dbPath)
	} else {
		records, err = loader.LoadJSON(dataPath)
	}
	if err != nil {
		return nil, err
	}

	if !skipInvalid {
		return loader.Items(records)
	}

	items, errs := loader.ItemsSkipInvalid(records)
	for _, recErr := range errs {
		slog.Warn("skipping malformed record", "error", recErr)
	}
	return items, nil
}
