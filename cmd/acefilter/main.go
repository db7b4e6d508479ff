package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rgonek/ace-filter/catalog"
	"github.com/rgonek/ace-filter/filter"
	"github.com/rgonek/ace-filter/mdfence"
	"github.com/rgonek/ace-filter/settings"
)

const (
	presetDefault      = "default"
	presetReadonly     = "readonly"
	presetPresentation = "presentation"
)

func presetSettings(preset string) (settings.AttributeSet, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetDefault:
		return settings.AttributeSet{}, nil
	case presetReadonly:
		return settings.AttributeSet{
			settings.KeyLineNumbers:  false,
			settings.KeyPrintMargins: false,
			settings.KeyUseWrapMode:  true,
			settings.KeyAutoComplete: false,
		}, nil
	case presetPresentation:
		return settings.AttributeSet{
			settings.KeyFontSize:       "18pt",
			settings.KeyHeight:         "100%",
			settings.KeyWidth:          "100%",
			settings.KeyShowInvisibles: false,
			settings.KeyPrintMargins:   false,
		}, nil
	default:
		return nil, fmt.Errorf("unknown preset %q (allowed: default, readonly, presentation)", preset)
	}
}

// resolveSettings layers catalog defaults, the preset and explicit flags.
func resolveSettings(cat *catalog.Catalog, preset, theme, syntax string) (settings.AttributeSet, error) {
	presetValues, err := presetSettings(preset)
	if err != nil {
		return nil, err
	}

	resolved := cat.Settings().Overlay(presetValues)
	if theme = strings.TrimSpace(theme); theme != "" {
		resolved[settings.KeyTheme] = theme
	}
	if syntax = strings.TrimSpace(syntax); syntax != "" {
		resolved[settings.KeySyntax] = syntax
	}
	return resolved, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

type options struct {
	catalogPath string
	preset      string
	theme       string
	syntax      string
	markdown    bool
	rawHTML     bool
	manifest    bool
}

func run(opts options, input string, logger *zap.Logger, stdout io.Writer) error {
	cat, err := catalog.Load(opts.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	base, err := resolveSettings(cat, opts.preset, opts.theme, opts.syntax)
	if err != nil {
		return err
	}

	if opts.markdown {
		conv, err := mdfence.New(mdfence.Config{AllowRawHTML: opts.rawHTML, Registry: cat})
		if err != nil {
			return fmt.Errorf("invalid markdown config: %w", err)
		}
		input, err = conv.Convert(input)
		if err != nil {
			return err
		}
	}

	f, err := filter.New(filter.Config{
		Settings:  base,
		Libraries: cat,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("invalid filter config: %w", err)
	}

	result, err := f.Process(filter.NewScope(), input)
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning.Message,
			zap.String("type", string(warning.Type)),
			zap.String("instance", warning.Instance),
		)
	}
	logger.Debug("filter pass complete", zap.Int("instances", len(result.Manifest.Instances)))

	if opts.manifest {
		pretty, err := json.MarshalIndent(result.Attachments, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal attachments: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(pretty))
		return err
	}

	_, err = fmt.Fprint(stdout, result.Text)
	return err
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain parses args, runs the filter and returns the process exit code.
// The logger is synced on every return path.
func realMain(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("acefilter", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var opts options
	flags.StringVar(&opts.catalogPath, "catalog", "", "Catalog file (.yaml, .toml or .json)")
	flags.StringVar(&opts.preset, "preset", presetDefault, "Preset: default|readonly|presentation")
	flags.StringVar(&opts.theme, "theme", "", "Override the base theme")
	flags.StringVar(&opts.syntax, "syntax", "", "Override the base syntax mode")
	flags.BoolVar(&opts.markdown, "markdown", false, "Treat input as Markdown and turn fenced code into editors")
	flags.BoolVar(&opts.rawHTML, "allow-html", false, "Keep raw HTML when rendering Markdown")
	flags.BoolVar(&opts.manifest, "manifest", false, "Print the attachments JSON instead of the text")
	verbose := flags.Bool("v", false, "Enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: acefilter [options] <input-file>\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() < 1 {
		flags.Usage()
		return 1
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	path := flags.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading input failed", zap.String("path", path), zap.Error(err))
		return 1
	}

	if err := run(opts, string(data), logger, stdout); err != nil {
		logger.Error("filter failed", zap.Error(err))
		return 1
	}
	return 0
}
