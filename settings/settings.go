package settings

import (
	"fmt"
	"strings"
)

// Editor setting names shared by the filter, formatter and editor.
const (
	KeyTheme          = "theme"
	KeySyntax         = "syntax"
	KeyHeight         = "height"
	KeyWidth          = "width"
	KeyFontSize       = "font_size"
	KeyLineNumbers    = "line_numbers"
	KeyShowInvisibles = "show_invisibles"
	KeyPrintMargins   = "print_margins"
	KeyAutoComplete   = "auto_complete"
	KeyUseWrapMode    = "use_wrap_mode"
)

// StringKeys lists the settings that hold free-form or catalog string values.
var StringKeys = []string{KeyTheme, KeySyntax, KeyHeight, KeyWidth, KeyFontSize}

// FlagKeys lists the on/off settings.
var FlagKeys = []string{KeyLineNumbers, KeyShowInvisibles, KeyPrintMargins, KeyAutoComplete, KeyUseWrapMode}

// AttributeSet maps an editor setting name to its value.
//
// Values are strings, booleans, or the integers 0 and 1 produced when a tag
// attribute is coerced. Nested maps are allowed for hosts that group settings
// (the editor stores them under "fieldset").
type AttributeSet map[string]any

// Defaults returns the built-in editor settings.
func Defaults() AttributeSet {
	return AttributeSet{
		KeyTheme:          "cobalt",
		KeySyntax:         "html",
		KeyHeight:         "500px",
		KeyWidth:          "700px",
		KeyFontSize:       "12pt",
		KeyLineNumbers:    true,
		KeyShowInvisibles: false,
		KeyPrintMargins:   true,
		KeyAutoComplete:   true,
		KeyUseWrapMode:    true,
	}
}

// Clone returns a deep copy of s. A nil set clones to an empty one.
func (s AttributeSet) Clone() AttributeSet {
	dst := make(AttributeSet, len(s))
	for key, value := range s {
		dst[key] = cloneValue(value)
	}
	return dst
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case AttributeSet:
		return typed.Clone()
	case map[string]any:
		return map[string]any(AttributeSet(typed).Clone())
	case []string:
		return append([]string(nil), typed...)
	default:
		return value
	}
}

// Overlay returns a copy of s with every key of over applied on top.
// Neither s nor over is modified.
func (s AttributeSet) Overlay(over AttributeSet) AttributeSet {
	merged := s.Clone()
	for key, value := range over {
		merged[key] = cloneValue(value)
	}
	return merged
}

// WithDefaults returns a copy of s with missing keys taken from Defaults.
func (s AttributeSet) WithDefaults() AttributeSet {
	return Defaults().Overlay(s)
}

// String returns the string value stored under key.
func (s AttributeSet) String(key string) (string, bool) {
	value, ok := s[key].(string)
	return value, ok
}

// Bool reports whether the flag stored under key is switched on.
func (s AttributeSet) Bool(key string) bool {
	switch value := s[key].(type) {
	case bool:
		return value
	case int:
		return value != 0
	case int64:
		return value != 0
	case float64:
		return value != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}

// Validate checks that the known settings carry values of the right shape.
// Unknown keys are passed through untouched.
func (s AttributeSet) Validate() error {
	for key := range s {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("settings contain empty key")
		}
	}
	for _, key := range StringKeys {
		raw, ok := s[key]
		if !ok {
			continue
		}
		value, isString := raw.(string)
		if !isString {
			return fmt.Errorf("invalid %s %v: must be a string", key, raw)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("invalid %s %q: must be non-empty", key, value)
		}
	}
	for _, key := range FlagKeys {
		raw, ok := s[key]
		if !ok {
			continue
		}
		if !isFlagValue(raw) {
			return fmt.Errorf("invalid %s %v: must be a boolean or 0/1", key, raw)
		}
	}
	return nil
}

func isFlagValue(value any) bool {
	switch typed := value.(type) {
	case bool:
		return true
	case int:
		return typed == 0 || typed == 1
	case int64:
		return typed == 0 || typed == 1
	case float64:
		return typed == 0 || typed == 1
	}
	return false
}
