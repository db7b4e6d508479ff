package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	xhtml "golang.org/x/net/html"

	"github.com/rgonek/ace-filter/catalog"
	"github.com/rgonek/ace-filter/settings"
)

const (
	directiveTag = "ace"
	// contentCutset holds the only characters trimmed from directive content.
	contentCutset = "\n\r\x00\v"
)

// directivePattern matches <ace ...>content</ace>. Group 1 is the opening tag,
// group 2 the content, captured lazily so adjacent directives stay separate.
var directivePattern = regexp.MustCompile(`(?s)(<` + directiveTag + `(?:\s[^>]*)?>)(.*?)</` + directiveTag + `>`)

// errNilIDGenerator is returned by Extract when no id source is supplied.
var errNilIDGenerator = errors.New("filter: nil id generator")

// Filter replaces <ace> directives in rendered text with editor placeholders.
type Filter struct {
	config Config
}

type state struct {
	config    Config
	ids       IDGenerator
	warnings  []Warning
	libraries librarySet
}

// New creates a new Filter with the given config.
func New(config Config) (*Filter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Filter{config: cfg}, nil
}

// Settings returns a copy of the base editor settings directives start from.
func (f *Filter) Settings() settings.AttributeSet {
	return f.config.Settings.Clone()
}

// Process runs Extract with ids taken from scope, merges the resulting
// manifest into scope and reports the attachments the page needs.
// Text without directives comes back unchanged and leaves scope untouched.
func (f *Filter) Process(scope *Scope, text string) (Result, error) {
	if scope == nil {
		return Result{}, ErrNilScope
	}

	result, err := f.Extract(scope, text)
	if err != nil {
		return Result{}, err
	}
	if len(result.Manifest.Instances) == 0 {
		return result, nil
	}

	scope.Merge(result.Manifest)
	page, _ := scope.Manifest()
	result.Attachments = Attachments{
		Libraries: append([]string(nil), result.Manifest.Libraries...),
		Settings: map[string]Manifest{
			f.config.SettingsKey: page,
		},
	}
	return result, nil
}

// Extract replaces every directive in text with a placeholder element and
// returns the manifest delta describing the new instances. It does not
// retain anything; callers merge the delta into their render scope.
func (f *Filter) Extract(ids IDGenerator, text string) (Result, error) {
	if ids == nil {
		return Result{}, errNilIDGenerator
	}

	decoded := xhtml.UnescapeString(text)
	matches := directivePattern.FindAllStringSubmatch(decoded, -1)
	if len(matches) == 0 {
		return Result{Text: text}, nil
	}

	s := &state{
		config: f.config,
		ids:    ids,
	}
	s.libraries.add(s.libraryID(s.config.BaseLibrary))

	out := newReplacer(decoded)
	instances := make([]Instance, 0, len(matches))
	for _, match := range matches {
		instance := s.buildInstance(match[1], match[2])

		placeholder, err := renderPlaceholder(instance.ID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to render placeholder: %w", err)
		}
		if !out.replaceNext(match[0], placeholder) {
			s.addWarning(
				WarningReplacementNotFound,
				instance.ID,
				"directive source could not be located; left as found",
			)
		}

		s.config.Logger.Debug("extracted editor instance",
			zap.String("id", instance.ID),
			zap.Int("contentBytes", len(instance.Content)),
		)
		instances = append(instances, instance)
	}

	return Result{
		Text: out.String(),
		Manifest: Manifest{
			Instances:     instances,
			ThemeSettings: s.config.Settings.Clone(),
			Libraries:     s.libraries.items,
		},
		Warnings: s.warnings,
	}, nil
}

func (s *state) buildInstance(openTag, inner string) Instance {
	id := s.config.IDPrefix + strconv.FormatUint(s.ids.Next(), 10)

	attrs, ok := TagAttributes(directiveTag, openTag)
	if !ok && hasAttributeText(openTag) {
		s.addWarning(
			WarningMalformedAttributes,
			id,
			"tag attributes could not be parsed; using base settings",
		)
	}

	s.attachBundle(id, attrs, settings.KeyTheme, catalog.ThemeBundle)
	s.attachBundle(id, attrs, settings.KeySyntax, catalog.ModeBundle)

	return Instance{
		ID:       id,
		Content:  strings.Trim(inner, contentCutset),
		Settings: s.config.Settings.Overlay(attrs),
	}
}

// attachBundle records the library for a theme or syntax override when the
// registry knows it. Unknown names fall back to the default bundles.
func (s *state) attachBundle(id string, attrs settings.AttributeSet, key string, bundle func(string) string) {
	raw, ok := attrs[key]
	if !ok {
		return
	}
	name, isString := raw.(string)
	if !isString || name == "" || !s.config.Libraries.Exists(bundle(name)) {
		s.addWarning(
			WarningUnresolvedLibrary,
			id,
			fmt.Sprintf("no library for %s %v; using default", key, raw),
		)
		return
	}
	s.libraries.add(s.libraryID(bundle(name)))
}

func (s *state) libraryID(bundle string) string {
	return s.config.Namespace + "/" + bundle
}

func (s *state) addWarning(warnType WarningType, instanceID, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		Instance: instanceID,
		Message:  message,
	})
	s.config.Logger.Debug("directive warning",
		zap.String("type", string(warnType)),
		zap.String("id", instanceID),
		zap.String("message", message),
	)
}
