// Package config provides configuration types and defaults for berth.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/berth/internal/log"
)

// Config holds all configuration options for berth.
type Config struct {
	// ContentDir replaces the embedded content with an on-disk directory of
	// the same layout. Empty uses the embedded content.
	ContentDir string `mapstructure:"content_dir"`

	// StartModule selects a module other than the first at startup.
	StartModule string `mapstructure:"start_module"`

	UI       UIConfig        `mapstructure:"ui"`
	Glossary GlossaryConfig  `mapstructure:"glossary"`
	Cache    CacheConfig     `mapstructure:"cache"`
	Tracing  TracingConfig   `mapstructure:"tracing"`
	Flags    map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default), "light" or "notty"
	SidebarWidth  int    `mapstructure:"sidebar_width"`
	ShowFooter    bool   `mapstructure:"show_footer"`
}

// GlossaryConfig controls the user glossary overlay.
type GlossaryConfig struct {
	// File is an optional YAML glossary merged over the built-in terms.
	File  string `mapstructure:"file"`
	Watch bool   `mapstructure:"watch"`
}

// CacheConfig controls the rendered-markdown cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/berth/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate is the fraction of traces kept, 0.0 to 1.0.
	SampleRate float64 `mapstructure:"sample_rate"`
}

const (
	MinSidebarWidth = 12
	MaxSidebarWidth = 60
)

// MarkdownStyles lists the accepted ui.markdown_style values.
var MarkdownStyles = []string{"dark", "light", "notty"}

// DefaultTracesFilePath returns ~/.config/berth/traces/traces.jsonl, or an
// empty string when the home directory is unknown.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "berth", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			MarkdownStyle: "dark",
			SidebarWidth:  28,
			ShowFooter:    true,
		},
		Glossary: GlossaryConfig{
			Watch: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Flags: map[string]bool{},
	}
}

// Validate checks every section and returns the first problem found.
func (c Config) Validate() error {
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ValidateUI checks ui settings.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light", "notty":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\", \"light\", or \"notty\", got %q", ui.MarkdownStyle)
	}
	if ui.SidebarWidth != 0 && (ui.SidebarWidth < MinSidebarWidth || ui.SidebarWidth > MaxSidebarWidth) {
		return fmt.Errorf("ui.sidebar_width must be between %d and %d, got %d", MinSidebarWidth, MaxSidebarWidth, ui.SidebarWidth)
	}
	return nil
}

// ValidateCache checks cache settings.
func ValidateCache(cache CacheConfig) error {
	if cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", cache.TTL)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Empty values fall back to defaults and are accepted.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	switch tracing.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
	}

	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// ValidateTracingForTUI rejects tracing setups that write to the terminal
// while the full-screen interface owns it.
func ValidateTracingForTUI(tracing TracingConfig) error {
	if tracing.Enabled && tracing.Exporter == "stdout" {
		return fmt.Errorf("tracing.exporter \"stdout\" draws over the interface; use \"file\" or \"otlp\" (stdout works with the modules and glossary commands)")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Berth Configuration

# Directory with catalog.yaml, glossary.yaml and modules/*.md.
# Empty uses the built-in course content.
# content_dir: /path/to/content

# Module selected at startup (must be a key from the catalog)
# start_module: berth-planning

ui:
  markdown_style: dark    # "dark" (default), "light" or "notty"
  sidebar_width: 28       # Module list width in columns (12-60)
  show_footer: true       # Show key help at the bottom

glossary:
  # Extra terms merged over the built-in glossary:
  #   terms:
  #     LOA: Length Overall of a vessel
  # file: ~/.config/berth/glossary.yaml
  watch: true             # Reload the glossary file when it changes

cache:
  enabled: true           # Cache rendered modules per width and style
  ttl: 10m

# Tracing of module rendering and glossary filtering
# tracing:
#   enabled: true
#   exporter: file        # "none", "file", "stdout" or "otlp"
#   file_path: ~/.config/berth/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Feature flags
# flags:
#   glossary-live-reload: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
