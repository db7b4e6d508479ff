package filter

import "strings"

// replacer substitutes directive sources one at a time, always targeting the
// first occurrence after the previous substitution. Identical directives are
// therefore each replaced exactly once, in order.
type replacer struct {
	done strings.Builder
	rest string
}

func newReplacer(text string) *replacer {
	return &replacer{rest: text}
}

// replaceNext swaps the first remaining occurrence of needle for replacement.
// It reports false and leaves the text alone when needle is not found.
func (r *replacer) replaceNext(needle, replacement string) bool {
	before, after, found := strings.Cut(r.rest, needle)
	if !found {
		return false
	}
	r.done.WriteString(before)
	r.done.WriteString(replacement)
	r.rest = after
	return true
}

// String returns the text with all substitutions applied.
func (r *replacer) String() string {
	return r.done.String() + r.rest
}
