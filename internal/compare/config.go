package compare

import (
	"fmt"
	"path/filepath"
)

// Config holds all the configuration parameters for a comparison run,
// parsed from command-line flags.
type Config struct {
	Originals  []string
	Healings   []string
	OutputPath string
	Preview    bool
}

// Validate checks the group preconditions: both groups non-empty and no
// file shared between them. It runs before any input file is opened.
func (c *Config) Validate() error {
	if len(c.Originals) == 0 {
		return fmt.Errorf("original group must contain at least one file")
	}
	if len(c.Healings) == 0 {
		return fmt.Errorf("healing group must contain at least one file")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}

	seen := make(map[string]struct{}, len(c.Originals))
	for _, path := range c.Originals {
		seen[filepath.Clean(path)] = struct{}{}
	}
	for _, path := range c.Healings {
		if _, ok := seen[filepath.Clean(path)]; ok {
			return fmt.Errorf("groups overlap: %s appears in both Original and Healing", path)
		}
	}
	return nil
}
