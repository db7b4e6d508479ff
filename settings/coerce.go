package settings

import "strings"

// NormalizeKey maps an attribute name to its setting name by replacing
// hyphens with underscores. Case is preserved.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Coerce converts the literal values "1", "0", "TRUE" and "FALSE" to the
// integers 1 and 0. Every other value is returned unchanged.
func Coerce(value string) any {
	switch value {
	case "1", "TRUE":
		return 1
	case "0", "FALSE":
		return 0
	}
	return value
}
