// Package mdfence renders Markdown to HTML with fenced code blocks emitted as
// <ace> directives, ready for the filter package.
package mdfence

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/rgonek/ace-filter/catalog"
	"github.com/rgonek/ace-filter/settings"
)

var infoAttributePattern = regexp.MustCompile(`([A-Za-z][\w-]*)=("[^"<>]*"|'[^'<>]*'|[^\s"'<>]+)`)

const directiveClose = "</ace>"

// defaultLanguageMap maps common fence languages to editor syntax modes.
var defaultLanguageMap = map[string]string{
	"bash":  "sh",
	"c":     "c_cpp",
	"c++":   "c_cpp",
	"cpp":   "c_cpp",
	"cs":    "csharp",
	"go":    "golang",
	"js":    "javascript",
	"md":    "markdown",
	"objc":  "objectivec",
	"ps1":   "powershell",
	"py":    "python",
	"rb":    "ruby",
	"rs":    "rust",
	"shell": "sh",
	"ts":    "typescript",
	"yml":   "yaml",
	"zsh":   "sh",
}

// Registry reports whether a mode bundle exists, e.g. "mode.rust".
type Registry interface {
	Exists(name string) bool
}

// Config configures Markdown rendering.
type Config struct {
	// LanguageMap overrides or extends the built-in fence language aliases.
	LanguageMap map[string]string `json:"languageMap,omitempty"`
	// AllowRawHTML passes raw HTML (including hand-written <ace> tags)
	// through instead of omitting it.
	AllowRawHTML bool `json:"allowRawHTML,omitempty"`
	// Registry, when set, limits conversion to languages with a mode bundle.
	// Other fences render as plain <pre><code> blocks.
	Registry Registry `json:"-"`
}

func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = make(map[string]string, len(defaultLanguageMap)+len(c.LanguageMap))
	for from, to := range defaultLanguageMap {
		cloned.LanguageMap[from] = to
	}
	for from, to := range c.LanguageMap {
		cloned.LanguageMap[strings.ToLower(from)] = to
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	for from, to := range c.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}
	return nil
}

// Converter renders Markdown documents.
type Converter struct {
	config Config
	md     goldmark.Markdown
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cfg := config.clone()

	rendererOptions := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(&fenceRenderer{config: cfg}, 100)),
	}
	if cfg.AllowRawHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return &Converter{
		config: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}, nil
}

// Convert renders markdown to HTML.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

type fenceRenderer struct {
	config Config
}

func (r *fenceRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *fenceRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block := node.(*ast.FencedCodeBlock)

	language := strings.ToLower(string(block.Language(source)))
	syntax := r.syntaxFor(language)
	// The filter decodes entities before matching, so a body holding the
	// closing tag would end the directive early.
	if (syntax == "" && language != "") || containsDirectiveClose(source, block) {
		r.writePlain(w, source, block, language)
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString("<ace")
	if syntax != "" {
		writeAttribute(w, settings.KeySyntax, syntax)
	}
	if block.Info != nil {
		info := string(block.Info.Segment.Value(source))
		for _, match := range infoAttributePattern.FindAllStringSubmatch(info, -1) {
			name := settings.NormalizeKey(match[1])
			if name == settings.KeySyntax {
				continue
			}
			writeAttribute(w, match[1], unquote(match[2]))
		}
	}
	_, _ = w.WriteString(">\n")
	writeLines(w, source, block)
	_, _ = w.WriteString("</ace>\n")
	return ast.WalkSkipChildren, nil
}

// syntaxFor resolves a fence language to a syntax mode. It returns "" when
// the registry is configured and has no bundle for the mode.
func (r *fenceRenderer) syntaxFor(language string) string {
	if language == "" {
		return ""
	}
	syntax := language
	if mapped, ok := r.config.LanguageMap[language]; ok {
		syntax = mapped
	}
	if r.config.Registry != nil && !r.config.Registry.Exists(catalog.ModeBundle(syntax)) {
		return ""
	}
	return syntax
}

func (r *fenceRenderer) writePlain(w util.BufWriter, source []byte, block *ast.FencedCodeBlock, language string) {
	_, _ = w.WriteString(`<pre><code`)
	if language != "" {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML([]byte(language)))
		_, _ = w.WriteString(`"`)
	}
	_, _ = w.WriteString(`>`)
	writeLines(w, source, block)
	_, _ = w.WriteString("</code></pre>\n")
}

// writeAttribute quotes value with single quotes when it holds a double
// quote, so the value still parses after the filter decodes entities.
func writeAttribute(w util.BufWriter, name, value string) {
	quote := `"`
	if strings.Contains(value, `"`) {
		quote = `'`
	}
	_, _ = w.WriteString(" ")
	_, _ = w.WriteString(name)
	_, _ = w.WriteString("=" + quote)
	_, _ = w.Write(util.EscapeHTML([]byte(value)))
	_, _ = w.WriteString(quote)
}

func containsDirectiveClose(source []byte, block *ast.FencedCodeBlock) bool {
	lines := block.Lines()
	var body bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		body.Write(line.Value(source))
	}
	return bytes.Contains(body.Bytes(), []byte(directiveClose))
}

func unquote(value string) string {
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		return value[1 : len(value)-1]
	}
	return value
}

func writeLines(w util.BufWriter, source []byte, block *ast.FencedCodeBlock) {
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
}
