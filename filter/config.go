package filter

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/rgonek/ace-filter/catalog"
	"github.com/rgonek/ace-filter/settings"
)

const (
	DefaultIDPrefix    = "ace-editor-inline"
	DefaultNamespace   = "ace_editor"
	DefaultSettingsKey = "ace_filter"
)

var idPrefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_\-:.]*$`)

// LibraryRegistry reports whether a library bundle is known, e.g.
// "theme.monokai" or "mode.rust". *catalog.Catalog satisfies it.
type LibraryRegistry interface {
	Exists(name string) bool
}

// Config holds all filter configuration options.
type Config struct {
	// Settings is the base editor configuration every directive starts from.
	// Missing keys are filled from settings.Defaults.
	Settings    settings.AttributeSet `json:"settings,omitempty"`
	IDPrefix    string                `json:"idPrefix,omitempty"`
	Namespace   string                `json:"namespace,omitempty"`
	BaseLibrary string                `json:"baseLibrary,omitempty"`
	SettingsKey string                `json:"settingsKey,omitempty"`
	Libraries   LibraryRegistry       `json:"-"`
	Logger      *zap.Logger           `json:"-"`
}

func (c Config) applyDefaults() Config {
	c.Settings = c.Settings.WithDefaults()
	if c.IDPrefix == "" {
		c.IDPrefix = DefaultIDPrefix
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.BaseLibrary == "" {
		c.BaseLibrary = catalog.BundleFilter
	}
	if c.SettingsKey == "" {
		c.SettingsKey = DefaultSettingsKey
	}
	if c.Libraries == nil {
		c.Libraries = catalog.Builtin()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	cloned.Settings = c.Settings.Clone()
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if !idPrefixPattern.MatchString(c.IDPrefix) {
		return fmt.Errorf("invalid idPrefix %q", c.IDPrefix)
	}
	if strings.TrimSpace(c.Namespace) == "" || strings.Contains(c.Namespace, "/") {
		return fmt.Errorf("invalid namespace %q", c.Namespace)
	}
	if strings.TrimSpace(c.BaseLibrary) == "" {
		return fmt.Errorf("baseLibrary must be non-empty")
	}
	if strings.TrimSpace(c.SettingsKey) == "" {
		return fmt.Errorf("settingsKey must be non-empty")
	}

	return nil
}
