package compare

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main application logic: validate the groups, read every
// input file into memory, then stream the CSV report pair by pair.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("Comparing %d original file(s) against %d healing file(s).", len(cfg.Originals), len(cfg.Healings))
	printGroups(cfg)

	records, err := loadGroups(cfg.Originals, cfg.Healings)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer out.Close()
	w := csv.NewWriter(out)

	var processedPairs int64
	totalPairs := int64(len(cfg.Originals) * len(cfg.Healings))

	var spinnerWg sync.WaitGroup
	spinnerWg.Add(1)
	done := make(chan struct{})
	startTime := time.Now()

	go func() {
		defer spinnerWg.Done()
		s := spinner.New()
		s.Spinner = spinner.Dot
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				processed := atomic.LoadInt64(&processedPairs)
				fmt.Printf("\r%s Comparison complete. %d/%d file pairs processed.\n", "✓", processed, totalPairs)
				return
			case <-ticker.C:
				s, _ = s.Update(spinner.TickMsg{})
				processed := atomic.LoadInt64(&processedPairs)
				fmt.Printf("\r%s Comparing file pairs %d/%d...", s.View(), processed, totalPairs)
			}
		}
	}()

	results, err := writeReport(w, cfg.Originals, cfg.Healings, records, &processedPairs)
	close(done)
	spinnerWg.Wait()
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	duration := time.Since(startTime)
	log.Printf("Comparison of %d file pairs took %s.", totalPairs, duration)

	if cfg.Preview {
		fmt.Print(renderPreview(results))
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	fmt.Printf("Wrote CSV with per-pair summaries: %s\n", pathStyle.Render(cfg.OutputPath))
	return nil
}

// printGroups echoes the resolved group membership so the operator can
// spot a mis-assigned file before opening the report.
func printGroups(cfg *Config) {
	fmt.Println("Original group:")
	for i, path := range cfg.Originals {
		fmt.Printf("  [%d] %s\n", i+1, filepath.Base(path))
	}
	fmt.Println("Healing group:")
	for i, path := range cfg.Healings {
		fmt.Printf("  [%d] %s\n", i+1, filepath.Base(path))
	}
}
