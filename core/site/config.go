// Package site holds site-level configuration and index generation.
// Configuration lives in an optional markpress.yml at the root of the
// post directory; command-line flags override file values.
package site

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the build root.
const ConfigFileName = "markpress.yml"

// Config is the site-level configuration.
type Config struct {
	Title          string `yaml:"title"`
	Author         string `yaml:"author"`
	BaseURL        string `yaml:"base_url"`
	Stylesheet     string `yaml:"stylesheet"`
	HighlightStyle string `yaml:"highlight_style"`
}

// DefaultConfig returns the configuration used when no markpress.yml
// exists.
func DefaultConfig() Config {
	return Config{
		Title:          "Blog",
		HighlightStyle: "github",
	}
}

// LoadConfig reads markpress.yml from dir. A missing file is not an
// error; the defaults come back instead.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	if cfg.Title == "" {
		cfg.Title = DefaultConfig().Title
	}
	if cfg.HighlightStyle == "" {
		cfg.HighlightStyle = DefaultConfig().HighlightStyle
	}
	return cfg, nil
}
