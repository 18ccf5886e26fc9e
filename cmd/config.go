package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/fintrack"
	"gopkg.in/yaml.v3"
)

const configFilename = ".fintrack.yaml"

// Config holds the optional per-data-directory settings. A missing config
// file means defaults.
type Config struct {
	// Currency is the ISO code used to format amounts (default SGD).
	Currency string `yaml:"currency"`
	// ListLimit is the default number of entries shown by list commands,
	// 0 for all.
	ListLimit int `yaml:"list_limit"`
}

var config Config

// applyConfig loads the config file once and applies its settings.
func applyConfig() {
	raw, err := os.ReadFile(filepath.Join(*dataDir, configFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("warning, could not read %s: %v", configFilename, err)
		return
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		log.Printf("warning, could not parse %s: %v", configFilename, err)
		return
	}
	if config.Currency != "" {
		fintrack.SetDisplayCurrency(config.Currency)
	}
}
