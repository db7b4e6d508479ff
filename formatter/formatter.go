package formatter

import (
	"fmt"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rgonek/ace-filter/catalog"
	"github.com/rgonek/ace-filter/form"
	"github.com/rgonek/ace-filter/settings"
)

const (
	DefaultNamespace   = "ace_editor"
	DefaultSettingsKey = "ace_formatter"
	wrapperClass       = "ace_formatter"
	contentClass       = "content"
)

// Catalog provides global defaults and the theme/syntax option lists.
type Catalog interface {
	Get(key string) any
}

// Config configures the field formatter.
type Config struct {
	// Settings overrides the catalog defaults for this display.
	Settings    settings.AttributeSet `json:"settings,omitempty"`
	Namespace   string                `json:"namespace,omitempty"`
	SettingsKey string                `json:"settingsKey,omitempty"`
	Catalog     Catalog               `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.SettingsKey == "" {
		c.SettingsKey = DefaultSettingsKey
	}
	if c.Catalog == nil {
		c.Catalog = catalog.Builtin()
	}
	c.Settings = catalogDefaults(c.Catalog).Overlay(c.Settings)
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if strings.TrimSpace(c.Namespace) == "" || strings.Contains(c.Namespace, "/") {
		return fmt.Errorf("invalid namespace %q", c.Namespace)
	}
	if strings.TrimSpace(c.SettingsKey) == "" {
		return fmt.Errorf("settingsKey must be non-empty")
	}
	return nil
}

// Attachments lists the bundles and client settings a rendered item needs.
type Attachments struct {
	Libraries []string                         `json:"library"`
	Settings  map[string]settings.AttributeSet `json:"settings"`
}

// Element is one rendered field item.
type Element struct {
	HTML        string      `json:"html"`
	Attachments Attachments `json:"attachments"`
}

// Formatter displays long text field values in a read-only code editor.
type Formatter struct {
	config Config
}

// New creates a new Formatter with the given config.
func New(config Config) (*Formatter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{config: cfg}, nil
}

// Settings returns a copy of the effective display settings.
func (f *Formatter) Settings() settings.AttributeSet {
	return f.config.Settings.Clone()
}

// Form returns the display settings form.
func (f *Formatter) Form() []form.Field {
	return form.Fields(f.config.Settings, f.config.Catalog, form.Options{})
}

// Summary describes the current settings, one line per setting.
func (f *Formatter) Summary() []string {
	values := f.config.Settings
	text := func(key string) string {
		value, _ := values.String(key)
		return value
	}
	return []string{
		"Theme: " + text(settings.KeyTheme),
		"Syntax: " + text(settings.KeySyntax),
		"Height: " + text(settings.KeyHeight),
		"Width: " + text(settings.KeyWidth),
		"Font size: " + text(settings.KeyFontSize),
		"Show line numbers: " + onOff(values.Bool(settings.KeyLineNumbers)),
		"Show print margin: " + onOff(values.Bool(settings.KeyPrintMargins)),
		"Show invisible characters: " + onOff(values.Bool(settings.KeyShowInvisibles)),
		"Toggle word wrapping: " + onOff(values.Bool(settings.KeyUseWrapMode)),
	}
}

// View renders every item as a read-only textarea inside a wrapper the
// client script turns into an editor.
func (f *Formatter) View(items []string) ([]Element, error) {
	elements := make([]Element, 0, len(items))
	for i, item := range items {
		markup, err := renderItem(item)
		if err != nil {
			return nil, fmt.Errorf("render item %d: %w", i, err)
		}
		elements = append(elements, Element{
			HTML: markup,
			Attachments: Attachments{
				Libraries: []string{f.config.Namespace + "/" + catalog.BundleFormatter},
				Settings: map[string]settings.AttributeSet{
					f.config.SettingsKey: f.config.Settings.Clone(),
				},
			},
		})
	}
	return elements, nil
}

func renderItem(value string) (string, error) {
	textarea := &xhtml.Node{
		Type:     xhtml.ElementNode,
		DataAtom: atom.Textarea,
		Data:     atom.Textarea.String(),
		Attr: []xhtml.Attribute{
			{Key: "class", Val: contentClass},
			{Key: "readonly", Val: "readonly"},
		},
	}
	textarea.AppendChild(&xhtml.Node{Type: xhtml.TextNode, Data: value})

	wrapper := &xhtml.Node{
		Type:     xhtml.ElementNode,
		DataAtom: atom.Div,
		Data:     atom.Div.String(),
		Attr:     []xhtml.Attribute{{Key: "class", Val: wrapperClass}},
	}
	wrapper.AppendChild(textarea)

	var sb strings.Builder
	if err := xhtml.Render(&sb, wrapper); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func catalogDefaults(cat Catalog) settings.AttributeSet {
	defaults := settings.Defaults()
	for key := range defaults {
		if value := cat.Get(key); value != nil {
			defaults[key] = value
		}
	}
	return defaults
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}
