package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateGenerateOptions(opts generateOptions) error {
	if strings.TrimSpace(opts.ConfigPath) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// defaultHistoryPath places the history file under the user config
// directory, falling back to the working directory.
func defaultHistoryPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".iconsmith", "history.json")
	}
	return filepath.Join(base, "iconsmith", "history.json")
}
