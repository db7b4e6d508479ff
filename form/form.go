package form

import (
	"github.com/rgonek/ace-filter/settings"
)

// FieldType names the widget a host renders for a field.
type FieldType string

const (
	TypeSelect    FieldType = "select"
	TypeTextField FieldType = "textfield"
	TypeCheckbox  FieldType = "checkbox"
	TypeFieldset  FieldType = "fieldset"
)

// Field describes one settings form element. Rendering is left to the host.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
	Style       string            `json:"style,omitempty"`
	Default     any               `json:"default,omitempty"`
	Collapsible bool              `json:"collapsible,omitempty"`
	Children    []Field           `json:"children,omitempty"`
}

// Source supplies the theme and syntax option lists, usually a
// *catalog.Catalog.
type Source interface {
	Get(key string) any
}

// Options tunes which fields Fields emits.
type Options struct {
	// AutoComplete adds the autocomplete checkbox, defaulting to on when the
	// current values do not set it.
	AutoComplete bool
}

const (
	selectStyle = "width: 150px;"
	textStyle   = "width: 100px;"
)

// Fields returns the editor settings form, prefilled with values.
func Fields(values settings.AttributeSet, source Source, opts Options) []Field {
	fields := []Field{
		{
			Name:    settings.KeyTheme,
			Type:    TypeSelect,
			Title:   "Theme",
			Options: optionList(source, "theme_list"),
			Style:   selectStyle,
			Default: values[settings.KeyTheme],
		},
		{
			Name:        settings.KeySyntax,
			Type:        TypeSelect,
			Title:       "Syntax",
			Description: "The syntax that will be highlighted.",
			Options:     optionList(source, "syntax_list"),
			Style:       selectStyle,
			Default:     values[settings.KeySyntax],
		},
		{
			Name:        settings.KeyHeight,
			Type:        TypeTextField,
			Title:       "Height",
			Description: "The height of the editor in either pixels or percents.",
			Style:       textStyle,
			Default:     values[settings.KeyHeight],
		},
		{
			Name:        settings.KeyWidth,
			Type:        TypeTextField,
			Title:       "Width",
			Description: "The width of the editor in either pixels or percents.",
			Style:       textStyle,
			Default:     values[settings.KeyWidth],
		},
		{
			Name:        settings.KeyFontSize,
			Type:        TypeTextField,
			Title:       "Font size",
			Description: "The font size used in the editor.",
			Style:       textStyle,
			Default:     values[settings.KeyFontSize],
		},
		checkbox(values, settings.KeyLineNumbers, "Show line numbers"),
		checkbox(values, settings.KeyPrintMargins, "Show print margin (80 chars)"),
		checkbox(values, settings.KeyShowInvisibles, "Show invisible characters (whitespaces, EOL...)"),
		checkbox(values, settings.KeyUseWrapMode, "Toggle word wrapping"),
	}

	if opts.AutoComplete {
		field := checkbox(values, settings.KeyAutoComplete, "Enable Autocomplete (Ctrl+Space)")
		if _, ok := values[settings.KeyAutoComplete]; !ok {
			field.Default = true
		}
		fields = append(fields, field)
	}

	return fields
}

func checkbox(values settings.AttributeSet, key, title string) Field {
	return Field{
		Name:    key,
		Type:    TypeCheckbox,
		Title:   title,
		Default: values.Bool(key),
	}
}

func optionList(source Source, key string) map[string]string {
	if source == nil {
		return nil
	}
	options, _ := source.Get(key).(map[string]string)
	return options
}
