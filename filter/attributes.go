package filter

import (
	"regexp"
	"strings"

	"github.com/rgonek/ace-filter/settings"
)

var (
	attributePairPattern = regexp.MustCompile(`([^\s=]+)\s*=\s*('[^<']*'|"[^<"]*")`)
	directiveOpenTag     = openTagPattern(directiveTag)
)

func openTagPattern(element string) *regexp.Regexp {
	return regexp.MustCompile(`<` + regexp.QuoteMeta(element) + `\s+([^>]+["'])\s?/?>`)
}

// TagAttributes extracts the name="value" and name='value' pairs from the
// opening tag of element found in markup. Names are normalized with
// settings.NormalizeKey and values with settings.Coerce.
//
// The second return value is false when the tag carries no attribute list
// or none of it could be parsed; the returned set is then empty, not nil.
func TagAttributes(element, markup string) (settings.AttributeSet, bool) {
	attrs := make(settings.AttributeSet)

	openTag := directiveOpenTag
	if element != directiveTag {
		openTag = openTagPattern(element)
	}
	match := openTag.FindStringSubmatch(markup)
	if len(match) != 2 {
		return attrs, false
	}

	pairs := attributePairPattern.FindAllStringSubmatch(match[1], -1)
	if len(pairs) == 0 {
		return attrs, false
	}
	for _, pair := range pairs {
		value := pair[2][1 : len(pair[2])-1]
		attrs[settings.NormalizeKey(pair[1])] = settings.Coerce(value)
	}
	return attrs, true
}

// hasAttributeText reports whether the opening tag of a directive carries
// anything besides whitespace between the tag name and the closing bracket.
func hasAttributeText(fullMatch string) bool {
	end := strings.IndexByte(fullMatch, '>')
	if end < 0 {
		return false
	}
	inner := strings.TrimPrefix(fullMatch[:end], "<"+directiveTag)
	inner = strings.TrimSuffix(strings.TrimSpace(inner), "/")
	return strings.TrimSpace(inner) != ""
}
