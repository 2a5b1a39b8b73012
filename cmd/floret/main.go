package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/marisvale/floret/internal/config"
	"github.com/marisvale/floret/internal/dataset"
	"github.com/marisvale/floret/internal/engine"
	"github.com/marisvale/floret/internal/logging"
	"github.com/marisvale/floret/internal/output"
	"github.com/marisvale/floret/internal/output/file"
	"github.com/marisvale/floret/internal/output/multi"
	"github.com/marisvale/floret/internal/output/stdout"
	"github.com/marisvale/floret/internal/report"
	"github.com/marisvale/floret/internal/store"
)

func main() {
	cfg := config.Load()

	// Flags override the FLORET_* environment.
	flag.StringVar(&cfg.Dataset.Path, "input", cfg.Dataset.Path, "dataset file ('-' reads stdin)")
	flag.IntVar(&cfg.Train.ValidationStart, "vstart", cfg.Train.ValidationStart, "validation slice start (inclusive)")
	flag.IntVar(&cfg.Train.ValidationEnd, "vend", cfg.Train.ValidationEnd, "validation slice end (exclusive)")
	flag.IntVar(&cfg.Train.MaxDepth, "depth", cfg.Train.MaxDepth, "maximum tree depth")
	flag.StringVar(&cfg.Train.RootPrefix, "prefix", cfg.Train.RootPrefix, "root position label prefix")
	flag.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "stdout format: table or json")
	flag.BoolVar(&cfg.Output.Pretty, "pretty", cfg.Output.Pretty, "indent JSON output")
	flag.BoolVar(&cfg.Output.IncludeRecords, "records", cfg.Output.IncludeRecords, "include per-node records in the report")
	flag.StringVar(&cfg.Output.HistoryPath, "history", cfg.Output.HistoryPath, "NDJSON run history file")
	flag.StringVar(&cfg.Store.Path, "db", cfg.Store.Path, "SQLite run store path")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	jsonReports := cfg.Output.Format == string(stdout.JSON)
	logging.Init(jsonReports, logging.ParseLevel(cfg.LogLevel))

	records, err := dataset.LoadFile(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	slog.Debug("dataset loaded", "records", len(records), "path", cfg.Dataset.Path)

	eng := engine.New()
	res, err := eng.Run(records, engine.Params{
		ValidationStart: cfg.Train.ValidationStart,
		ValidationEnd:   cfg.Train.ValidationEnd,
		MaxDepth:        cfg.Train.MaxDepth,
		RootPrefix:      cfg.Train.RootPrefix,
	})
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	rep := report.New(res)

	out := buildOutput(cfg)
	defer out.Close()

	ctx := context.Background()
	if err := out.Write(ctx, rep); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}

	if cfg.Store.Path != "" {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			log.Fatalf("failed to open run store: %v", err)
		}
		defer st.Close()
		if err := st.SaveRun(rep); err != nil {
			log.Fatalf("failed to save run: %v", err)
		}
		slog.Debug("run persisted", "db", cfg.Store.Path)
	}

	slog.Info("run complete",
		"run_id", rep.RunID,
		"depth", rep.MaxDepth,
		"train", res.Train.String(),
		"validation", res.Validation.String(),
	)
}

// buildOutput assembles the configured report sinks: stdout always, plus
// the NDJSON history file when configured.
func buildOutput(cfg config.Config) output.Output {
	format := stdout.Table
	if cfg.Output.Format == string(stdout.JSON) {
		format = stdout.JSON
	}
	console := stdout.New(format, cfg.Output.Pretty, cfg.Output.IncludeRecords)

	if cfg.Output.HistoryPath == "" {
		return console
	}
	history, err := file.New(cfg.Output.HistoryPath)
	if err != nil {
		log.Fatalf("failed to open history file: %v", err)
	}
	return multi.New(console, history)
}
