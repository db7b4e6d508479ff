package catalog

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rgonek/ace-filter/settings"
)

// Storage keys understood by Get besides the editor settings themselves.
const (
	KeyThemeList  = "theme_list"
	KeySyntaxList = "syntax_list"
)

// Fixed bundle names registered next to the theme and mode bundles.
const (
	BundlePrimary   = "primary"
	BundleFilter    = "filter"
	BundleFormatter = "formatter"
)

const (
	themePrefix = "theme."
	modePrefix  = "mode."
)

// Option is one selectable theme or syntax mode.
type Option struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

// Catalog is the global editor configuration: default settings, the themes
// and syntax modes that ship with the editor, and the loadable bundles.
type Catalog struct {
	Defaults settings.AttributeSet `json:"defaults"`
	Themes   []Option              `json:"themes"`
	Syntaxes []Option              `json:"syntaxes"`
	Bundles  []string              `json:"bundles"`
}

// Get returns the stored value for key, or nil when nothing is stored.
// theme_list and syntax_list return name to label maps.
func (c *Catalog) Get(key string) any {
	switch key {
	case KeyThemeList:
		return optionMap(c.Themes)
	case KeySyntaxList:
		return optionMap(c.Syntaxes)
	}
	value, ok := c.Defaults[key]
	if !ok {
		return nil
	}
	return value
}

// Settings returns a copy of the default editor settings.
func (c *Catalog) Settings() settings.AttributeSet {
	return c.Defaults.Clone()
}

// Exists reports whether a bundle is registered under name. Theme and mode
// bundles are addressed as "theme.<name>" and "mode.<name>".
func (c *Catalog) Exists(name string) bool {
	if rest, ok := strings.CutPrefix(name, themePrefix); ok {
		return hasOption(c.Themes, rest)
	}
	if rest, ok := strings.CutPrefix(name, modePrefix); ok {
		return hasOption(c.Syntaxes, rest)
	}
	for _, bundle := range c.Bundles {
		if bundle == name {
			return true
		}
	}
	return false
}

// ThemeBundle returns the bundle name for a theme.
func ThemeBundle(theme string) string {
	return themePrefix + theme
}

// ModeBundle returns the bundle name for a syntax mode.
func ModeBundle(syntax string) string {
	return modePrefix + syntax
}

func hasOption(options []Option, name string) bool {
	if name == "" {
		return false
	}
	for _, option := range options {
		if option.Name == name {
			return true
		}
	}
	return false
}

func optionMap(options []Option) map[string]string {
	result := make(map[string]string, len(options))
	for _, option := range options {
		result[option.Name] = option.Label
	}
	return result
}

func sortOptions(options []Option) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
}

// labelFor builds a display label from a bundle name, e.g. "tomorrow_night"
// becomes "Tomorrow Night".
func labelFor(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}
