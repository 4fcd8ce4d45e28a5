package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Render.Workers < 1 {
		return fmt.Errorf("render.workers must be >= 1 (got %d)", c.Render.Workers)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("path is required")
	}
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".json", ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("path %q: unsupported extension (want .json, .yaml or .yml)", c.Path)
	}
}
