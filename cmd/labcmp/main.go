package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rgutierrezres/compare-color-chips-healings/internal/compare"
	"github.com/rgutierrezres/compare-color-chips-healings/internal/logger"
	"github.com/spf13/pflag"
)

func main() {
	logFile, err := logger.Init("labcmp.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg := parseFlags()
	if err = validateConfig(cfg); err != nil {
		log.Printf("Configuration error: %v", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err = compare.Run(cfg); err != nil {
		log.Printf("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct.
func parseFlags() *compare.Config {
	cfg := &compare.Config{}

	pflag.StringSliceVarP(&cfg.Originals, "original", "o", nil, "Original-group measurement file. Repeatable, or comma-separated.")
	pflag.StringSliceVarP(&cfg.Healings, "healing", "e", nil, "Healing-group measurement file. Repeatable, or comma-separated.")
	pflag.StringVarP(&cfg.OutputPath, "out", "O", "orig_vs_heal_summary.csv", "Path of the output CSV report.")
	pflag.BoolVarP(&cfg.Preview, "preview", "p", false, "Print a per-pair color preview to the terminal after writing the report.")

	pflag.Parse()
	return cfg
}

// validateConfig checks if the provided configuration is valid.
func validateConfig(cfg *compare.Config) error {
	if len(cfg.Originals) == 0 {
		return fmt.Errorf("--original/-o flag is required at least once")
	}
	if len(cfg.Healings) == 0 {
		return fmt.Errorf("--healing/-e flag is required at least once")
	}
	for _, path := range append(append([]string{}, cfg.Originals...), cfg.Healings...) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("--out must not be empty")
	}
	return nil
}
