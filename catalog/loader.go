package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rgonek/ace-filter/settings"
)

const keyBundles = "bundles"

// Load reads a catalog file. The format follows the extension: .yaml/.yml,
// .toml or .json. Settings and lists the file leaves out fall back to the
// built-in catalog.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog extension: %s", ext)
	}

	cat, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Decode builds a catalog from a generic key/value map such as the one a
// host configuration store returns.
func Decode(raw map[string]any) (*Catalog, error) {
	cat := Builtin()
	overrides := make(settings.AttributeSet)

	for rawKey, value := range raw {
		key := settings.NormalizeKey(strings.TrimSpace(rawKey))
		switch key {
		case KeyThemeList:
			options, err := decodeOptions(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", KeyThemeList, err)
			}
			cat.Themes = options
		case KeySyntaxList:
			options, err := decodeOptions(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", KeySyntaxList, err)
			}
			cat.Syntaxes = options
		case keyBundles:
			bundles, err := decodeStrings(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", keyBundles, err)
			}
			cat.Bundles = bundles
		default:
			overrides[key] = normalizeScalar(value)
		}
	}

	cat.Defaults = cat.Defaults.Overlay(overrides)
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks the default settings and that the default theme and
// syntax are part of their lists.
func (c *Catalog) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return err
	}
	for _, option := range append(append([]Option(nil), c.Themes...), c.Syntaxes...) {
		if strings.TrimSpace(option.Name) == "" {
			return fmt.Errorf("catalog options must have non-empty names")
		}
	}
	if theme, _ := c.Defaults.String(settings.KeyTheme); !hasOption(c.Themes, theme) {
		return fmt.Errorf("default theme %q is not in %s", theme, KeyThemeList)
	}
	if syntax, _ := c.Defaults.String(settings.KeySyntax); !hasOption(c.Syntaxes, syntax) {
		return fmt.Errorf("default syntax %q is not in %s", syntax, KeySyntaxList)
	}
	return nil
}

// decodeOptions accepts either a name to label map or a list of names.
func decodeOptions(value any) ([]Option, error) {
	switch typed := value.(type) {
	case map[string]any:
		options := make([]Option, 0, len(typed))
		for name, label := range typed {
			text := strings.TrimSpace(fmt.Sprint(label))
			if text == "" {
				text = labelFor(name)
			}
			options = append(options, Option{Name: name, Label: text})
		}
		sortOptions(options)
		return options, nil
	case []any:
		names, err := decodeStrings(typed)
		if err != nil {
			return nil, err
		}
		return optionsFor(names), nil
	default:
		return nil, fmt.Errorf("expected map or list, got %T", value)
	}
}

func decodeStrings(value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list, got %T", value)
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string entries, got %T", item)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		result = append(result, text)
	}
	return result, nil
}

// normalizeScalar folds the numeric types the decoders produce into int so
// 0/1 flags compare the same regardless of file format.
func normalizeScalar(value any) any {
	switch typed := value.(type) {
	case int64:
		return int(typed)
	case float64:
		if typed == float64(int(typed)) {
			return int(typed)
		}
	}
	return value
}
