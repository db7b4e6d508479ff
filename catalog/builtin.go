package catalog

import "github.com/rgonek/ace-filter/settings"

var builtinThemes = []string{
	"ambiance", "chaos", "chrome", "clouds", "clouds_midnight", "cobalt",
	"crimson_editor", "dawn", "dracula", "dreamweaver", "eclipse", "github",
	"gob", "gruvbox", "idle_fingers", "iplastic", "katzenmilch", "kr_theme",
	"kuroir", "merbivore", "merbivore_soft", "mono_industrial", "monokai",
	"pastel_on_dark", "solarized_dark", "solarized_light", "sqlserver",
	"terminal", "textmate", "tomorrow", "tomorrow_night",
	"tomorrow_night_blue", "tomorrow_night_bright", "tomorrow_night_eighties",
	"twilight", "vibrant_ink", "xcode",
}

var builtinModes = []string{
	"apache_conf", "batchfile", "c_cpp", "clojure", "coffee", "csharp", "css",
	"dart", "diff", "django", "dockerfile", "elixir", "erlang", "golang",
	"groovy", "haml", "haskell", "html", "ini", "java", "javascript", "json",
	"jsx", "kotlin", "latex", "less", "lua", "makefile", "markdown", "mysql",
	"nginx", "objectivec", "perl", "pgsql", "php", "powershell", "python", "r",
	"ruby", "rust", "sass", "scala", "scss", "sh", "sql", "swift", "text",
	"twig", "typescript", "xml", "yaml",
}

// Builtin returns the catalog that ships with the editor.
func Builtin() *Catalog {
	return &Catalog{
		Defaults: settings.Defaults(),
		Themes:   optionsFor(builtinThemes),
		Syntaxes: optionsFor(builtinModes),
		Bundles:  []string{BundlePrimary, BundleFilter, BundleFormatter},
	}
}

func optionsFor(names []string) []Option {
	options := make([]Option, 0, len(names))
	for _, name := range names {
		options = append(options, Option{Name: name, Label: labelFor(name)})
	}
	return options
}
