package editor

import (
	"fmt"
	"strings"

	"github.com/rgonek/ace-filter/catalog"
	"github.com/rgonek/ace-filter/form"
	"github.com/rgonek/ace-filter/settings"
)

// FieldsetKey is where hosts nest the editor settings of a text format.
const FieldsetKey = "fieldset"

// Catalog provides global defaults and bundle lookups.
type Catalog interface {
	Get(key string) any
	Exists(name string) bool
}

// Config configures the editor plugin.
type Config struct {
	Namespace string  `json:"namespace,omitempty"`
	Catalog   Catalog `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = "ace_editor"
	}
	if c.Catalog == nil {
		c.Catalog = catalog.Builtin()
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Namespace) == "" || strings.Contains(c.Namespace, "/") {
		return fmt.Errorf("invalid namespace %q", c.Namespace)
	}
	return nil
}

// Editor attaches the code editor to textarea form elements.
type Editor struct {
	config Config
}

// New creates a new Editor with the given config.
func New(config Config) (*Editor, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Editor{config: cfg}, nil
}

// DefaultSettings returns the catalog defaults for every editor setting.
func (e *Editor) DefaultSettings() settings.AttributeSet {
	defaults := settings.Defaults()
	result := make(settings.AttributeSet, len(defaults))
	for key, fallback := range defaults {
		if value := e.config.Catalog.Get(key); value != nil {
			result[key] = value
			continue
		}
		result[key] = fallback
	}
	return result
}

// ConfigurationForm returns the settings form for a text format, prefilled
// from stored, which may be flat or nested under FieldsetKey.
func (e *Editor) ConfigurationForm(stored settings.AttributeSet) form.Field {
	return form.Field{
		Name:        FieldsetKey,
		Type:        form.TypeFieldset,
		Title:       "Ace Editor Settings",
		Collapsible: true,
		Children:    form.Fields(fieldset(stored), e.config.Catalog, form.Options{AutoComplete: true}),
	}
}

// Libraries lists the bundles the editor needs: the primary bundle, then the
// configured theme and mode, each replaced by the catalog default when no
// bundle exists for it.
func (e *Editor) Libraries(stored settings.AttributeSet) []string {
	values := fieldset(stored)
	return []string{
		e.library(catalog.BundlePrimary),
		e.library(e.bundleOrDefault(values, settings.KeyTheme, catalog.ThemeBundle)),
		e.library(e.bundleOrDefault(values, settings.KeySyntax, catalog.ModeBundle)),
	}
}

// JSSettings returns the settings handed to the client script.
func (e *Editor) JSSettings(stored settings.AttributeSet) settings.AttributeSet {
	return fieldset(stored).Clone()
}

func (e *Editor) bundleOrDefault(values settings.AttributeSet, key string, bundle func(string) string) string {
	name, _ := values.String(key)
	name = strings.TrimSpace(name)
	if name != "" && e.config.Catalog.Exists(bundle(name)) {
		return bundle(name)
	}
	fallback, _ := e.config.Catalog.Get(key).(string)
	return bundle(strings.TrimSpace(fallback))
}

func (e *Editor) library(bundle string) string {
	return e.config.Namespace + "/" + bundle
}

// fieldset unwraps settings stored under FieldsetKey.
func fieldset(stored settings.AttributeSet) settings.AttributeSet {
	switch nested := stored[FieldsetKey].(type) {
	case settings.AttributeSet:
		return nested
	case map[string]any:
		return settings.AttributeSet(nested)
	}
	return stored
}
