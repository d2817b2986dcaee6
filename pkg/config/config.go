// Package config handles loading and managing Levquant configuration and
// case files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Levquant.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Storage StorageConfig `yaml:"storage"`
	Output  OutputConfig  `yaml:"output"`
}

// ServiceConfig controls the hosted service.
type ServiceConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	DatabaseURL string `yaml:"database_url"`
}

// StorageConfig selects and configures the analysis archive backend.
type StorageConfig struct {
	Backend  string `yaml:"backend"` // local, s3, gcs
	Path     string `yaml:"path"`    // local backend root
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"` // S3-compatible override (MinIO)
}

// OutputConfig controls rendering defaults.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
	Color  bool   `yaml:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			ListenAddr: ":8088",
		},
		Storage: StorageConfig{
			Backend: "local",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .levquant/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".levquant", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for a given case name.
// Uses ~/.cache/levquant/<case-slug>/ to avoid polluting working directories.
func CacheDir(caseName string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "levquant", caseSlug(caseName))
}

// AnalysisDir returns the saved-analysis directory for a case.
func AnalysisDir(caseName string) string {
	return filepath.Join(CacheDir(caseName), "analyses")
}

// LetterDir returns the rendered-letter directory for a case.
func LetterDir(caseName string) string {
	return filepath.Join(CacheDir(caseName), "letters")
}

// JournalFile returns the local journal file for a case, used when no
// service is configured.
func JournalFile(caseName string) string {
	return filepath.Join(CacheDir(caseName), "journal.jsonl")
}

// caseSlug creates a filesystem-safe identifier from a case name.
func caseSlug(caseName string) string {
	slug := strings.ToLower(strings.TrimSpace(caseName))
	mapper := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}
	slug = strings.Map(mapper, slug)
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "case"
	}
	return slug
}
