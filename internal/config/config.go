package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxOwnerLength     = 100  // Copyright holder
	MaxYearLength      = 60   // "2024", "2019-2024" or "auto:FORMAT"
	MaxURLLength       = 2048 // Browser limit
	MaxStyleNameLength = 50   // Chroma style name
	MaxTemplateLength  = 100  // Template name
	MaxPathLength      = 4096 // Filesystem path
	MaxExtensions      = 16   // Entries in the extensions list
)

// Stylesheet modes.
const (
	StylesheetModeLocal = "local"
	StylesheetModeCDN   = "cdn"
)

// KnownExtensions lists the extension names accepted in the extensions list.
var KnownExtensions = []string{
	"toc",
	"fenced-code-blocks",
	"tables",
	"code-friendly",
	"strike",
	"footnotes",
}

// Config holds all configuration for page generation.
type Config struct {
	Extensions  []string          `yaml:"extensions"`
	Stylesheets StylesheetsConfig `yaml:"stylesheets"`
	Highlight   HighlightConfig   `yaml:"highlight"`
	Footer      FooterConfig      `yaml:"footer"`
	Template    string            `yaml:"template"` // Template name (empty = "page")
	Assets      AssetsConfig      `yaml:"assets"`
	RawHTML     bool              `yaml:"rawHTML"` // false replaces raw HTML with a comment
}

// StylesheetsConfig defines the hrefs linked from the page head.
type StylesheetsConfig struct {
	Mode      string `yaml:"mode"`      // "local" or "cdn" (default: "local")
	Page      string `yaml:"page"`      // Explicit page stylesheet href, overrides mode
	Highlight string `yaml:"highlight"` // Explicit highlight stylesheet href
}

// HighlightConfig defines server-side syntax highlighting of fenced code.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // Chroma style name (default: "monokai")
}

// FooterConfig defines the copyright footer.
type FooterConfig struct {
	Owner string `yaml:"owner"`
	Year  string `yaml:"year"` // Literal, "auto" or "auto:FORMAT"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Extensions) > MaxExtensions {
		return fmt.Errorf("%w: extensions (%d entries, max %d)", ErrFieldTooLong, len(c.Extensions), MaxExtensions)
	}
	for i, ext := range c.Extensions {
		if !isKnownExtension(ext) {
			return fmt.Errorf("%w: extensions[%d]: unknown extension %q (must be one of %s)",
				ErrInvalidValue, i, ext, strings.Join(KnownExtensions, ", "))
		}
	}

	switch strings.ToLower(c.Stylesheets.Mode) {
	case "", StylesheetModeLocal, StylesheetModeCDN:
		// valid
	default:
		return fmt.Errorf("%w: stylesheets.mode: %q (must be local or cdn)", ErrInvalidValue, c.Stylesheets.Mode)
	}
	if err := validateHref("stylesheets.page", c.Stylesheets.Page); err != nil {
		return err
	}
	if err := validateHref("stylesheets.highlight", c.Stylesheets.Highlight); err != nil {
		return err
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleNameLength); err != nil {
		return err
	}

	if err := validateFieldLength("footer.owner", c.Footer.Owner, MaxOwnerLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.year", c.Footer.Year, MaxYearLength); err != nil {
		return err
	}

	if err := validateFieldLength("template", c.Template, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateHref accepts relative paths and http(s) URLs.
// Other schemes (javascript:, data:) are rejected.
func validateHref(fieldName, value string) error {
	if err := validateFieldLength(fieldName, value, MaxURLLength); err != nil {
		return err
	}
	if strings.Contains(value, ":") && !fileutil.IsURL(value) {
		return fmt.Errorf("%w: %s: %q (must be a relative path or http(s) URL)", ErrInvalidValue, fieldName, value)
	}
	return nil
}

func isKnownExtension(name string) bool {
	for _, known := range KnownExtensions {
		if name == known {
			return true
		}
	}
	return false
}

// DefaultConfig returns the stock page configuration:
// the five canonical extensions, local stylesheets, raw HTML passed
// through and a 2024 footer.
func DefaultConfig() *Config {
	return &Config{
		Extensions:  []string{"toc", "fenced-code-blocks", "tables", "code-friendly", "strike"},
		Stylesheets: StylesheetsConfig{Mode: StylesheetModeLocal},
		Highlight:   HighlightConfig{Enabled: false},
		Footer:      FooterConfig{Owner: "Kevin McAreavey", Year: "2024"},
		Template:    "",
		Assets:      AssetsConfig{BasePath: ""},
		RawHTML:     true,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name, in order:
// name.yaml and name.yml in the current directory, then in ~/.config/go-md2html/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2html", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
