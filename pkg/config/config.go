package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is looked up in the wiki root.
	ConfigFileName = "wikigen.config.yml"
	// DefaultRoot is the wiki root used when none is given.
	DefaultRoot = "CosmicWiki"
)

// WikiConfig holds optional path overrides for a wiki root. Relative paths
// resolve against the root.
type WikiConfig struct {
	Template string `yaml:"template,omitempty"`  // Page template
	Schema   string `yaml:"schema,omitempty"`    // Item JSON schema
	Mapping  string `yaml:"mapping,omitempty"`   // ACNH to Cosmic mapping, read by interactive mode
	PagesDir string `yaml:"pages_dir,omitempty"` // Generated pages, one subdirectory per category folder
	ItemsDir string `yaml:"items_dir,omitempty"` // Item records watched by 'wikigen watch'
}

// Default returns the built-in layout of a wiki root.
func Default() WikiConfig {
	return WikiConfig{
		Template: filepath.Join("templates", "wiki_page_template.md"),
		Schema:   filepath.Join("data", "schemas", "item_schema.json"),
		Mapping:  filepath.Join("data", "acnh_cosmic_mapping.json"),
		PagesDir: "pages",
		ItemsDir: filepath.Join("data", "items"),
	}
}

// Paths are the resolved filesystem locations the generator works with.
type Paths struct {
	Root      string
	Template  string
	Schema    string
	Mapping   string
	PagesDir  string
	ItemsDir  string
	TempInput string // record written by interactive mode, overwritten on every run
}

// Load reads the config file in root, if any, and resolves paths. A missing
// config file is not an error. When configPath is non-empty it must exist.
func Load(root, configPath string) (*WikiConfig, Paths, error) {
	if root == "" {
		root = DefaultRoot
	}
	cfg := Default()

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(root, ConfigFileName)
	}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
	case err != nil:
		return nil, Paths{}, fmt.Errorf("failed to read %s: %w", configPath, err)
	default:
		var fileCfg WikiConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, Paths{}, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		cfg = Merge(cfg, fileCfg)
	}

	return &cfg, cfg.Resolve(root), nil
}

// Merge overlays the non-empty fields of override onto base.
func Merge(base, override WikiConfig) WikiConfig {
	merged := base
	if override.Template != "" {
		merged.Template = override.Template
	}
	if override.Schema != "" {
		merged.Schema = override.Schema
	}
	if override.Mapping != "" {
		merged.Mapping = override.Mapping
	}
	if override.PagesDir != "" {
		merged.PagesDir = override.PagesDir
	}
	if override.ItemsDir != "" {
		merged.ItemsDir = override.ItemsDir
	}
	return merged
}

// Resolve computes Paths for the given root.
func (c WikiConfig) Resolve(root string) Paths {
	return Paths{
		Root:      root,
		Template:  resolve(root, c.Template),
		Schema:    resolve(root, c.Schema),
		Mapping:   resolve(root, c.Mapping),
		PagesDir:  resolve(root, c.PagesDir),
		ItemsDir:  resolve(root, c.ItemsDir),
		TempInput: filepath.Join(root, "data", "temp_interactive.json"),
	}
}

// Marshal encodes the config as YAML.
func (c WikiConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
