package config

import (
	"os"
	"strconv"
)

// Config holds all floret configuration.
type Config struct {
	Dataset DatasetConfig
	Train   TrainConfig
	Output  OutputConfig
	Store   StoreConfig
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// DatasetConfig holds input settings.
type DatasetConfig struct {
	Path string // dataset file; "-" or empty reads stdin
}

// TrainConfig holds the run parameters.
type TrainConfig struct {
	ValidationStart int
	ValidationEnd   int
	MaxDepth        int
	RootPrefix      string
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format         string // "table" or "json"
	Pretty         bool   // indent JSON output
	IncludeRecords bool   // per-node record dumps in the report
	HistoryPath    string // NDJSON run history file; empty disables
}

// StoreConfig holds run-store settings.
type StoreConfig struct {
	Path string // SQLite database path; empty disables persistence
}

// Load reads configuration from environment variables with sensible
// defaults. Command-line flags override these in cmd/floret.
func Load() Config {
	return Config{
		Dataset: DatasetConfig{
			Path: getenv("FLORET_DATASET", "-"),
		},
		Train: TrainConfig{
			ValidationStart: getenvInt("FLORET_VALIDATION_START", 0),
			ValidationEnd:   getenvInt("FLORET_VALIDATION_END", 0),
			MaxDepth:        getenvInt("FLORET_MAX_DEPTH", 5),
			RootPrefix:      os.Getenv("FLORET_ROOT_PREFIX"),
		},
		Output: OutputConfig{
			Format:         getenv("FLORET_OUTPUT", "table"),
			Pretty:         getenvBool("FLORET_OUTPUT_PRETTY", false),
			IncludeRecords: getenvBool("FLORET_OUTPUT_RECORDS", true),
			HistoryPath:    os.Getenv("FLORET_HISTORY"),
		},
		Store: StoreConfig{
			Path: os.Getenv("FLORET_DB"),
		},
		LogLevel: getenv("FLORET_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
