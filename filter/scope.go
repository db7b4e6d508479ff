package filter

import (
	"errors"

	"github.com/rgonek/ace-filter/settings"
)

// ErrNilScope is returned by Process when no render scope is supplied.
var ErrNilScope = errors.New("filter: nil render scope")

// Instance is one editor placeholder to be initialized client-side.
type Instance struct {
	ID       string                `json:"id"`
	Content  string                `json:"content"`
	Settings settings.AttributeSet `json:"settings"`
}

// Manifest is the client settings payload describing every editor instance
// on a page.
type Manifest struct {
	Instances     []Instance            `json:"instances"`
	ThemeSettings settings.AttributeSet `json:"theme_settings"`
	// Libraries holds the library identifiers the instances need, base
	// library first, without duplicates. It is attached separately and not
	// part of the client payload.
	Libraries []string `json:"-"`
}

// IDGenerator hands out sequence numbers for placeholder ids. Numbers must
// not repeat within one render.
type IDGenerator interface {
	Next() uint64
}

// Scope accumulates the manifest of a single render, e.g. one page request.
// Every render gets its own Scope; a Scope is not safe for concurrent use.
type Scope struct {
	manifest  *Manifest
	libraries librarySet
	counter   uint64
}

// NewScope starts an empty render scope.
func NewScope() *Scope {
	return &Scope{}
}

// Next returns the next placeholder sequence number, starting at 1.
func (s *Scope) Next() uint64 {
	s.counter++
	return s.counter
}

// Merge appends the instances and libraries of delta to the scope. The theme
// settings of the first non-empty delta are kept for the scope's lifetime.
func (s *Scope) Merge(delta Manifest) {
	if len(delta.Instances) == 0 {
		return
	}
	if s.manifest == nil {
		s.manifest = &Manifest{ThemeSettings: delta.ThemeSettings.Clone()}
	}
	s.manifest.Instances = append(s.manifest.Instances, delta.Instances...)
	for _, library := range delta.Libraries {
		s.libraries.add(library)
	}
}

// Manifest returns a copy of the accumulated manifest. The second value is
// false until the first directive has been merged.
func (s *Scope) Manifest() (Manifest, bool) {
	if s.manifest == nil {
		return Manifest{}, false
	}
	return Manifest{
		Instances:     append([]Instance(nil), s.manifest.Instances...),
		ThemeSettings: s.manifest.ThemeSettings.Clone(),
		Libraries:     append([]string(nil), s.libraries.items...),
	}, true
}

// Reset discards everything accumulated so the scope can serve a new render.
func (s *Scope) Reset() {
	s.manifest = nil
	s.libraries = librarySet{}
	s.counter = 0
}

// librarySet is an insertion-ordered set of library identifiers.
type librarySet struct {
	items []string
	seen  map[string]struct{}
}

func (l *librarySet) add(library string) {
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	if _, ok := l.seen[library]; ok {
		return
	}
	l.seen[library] = struct{}{}
	l.items = append(l.items, library)
}
