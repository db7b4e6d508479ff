package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/ace-filter/settings"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBuiltin(t *testing.T) {
	cat := Builtin()
	require.NoError(t, cat.Validate())

	assert.True(t, cat.Exists("theme.monokai"))
	assert.True(t, cat.Exists("theme.dracula"))
	assert.True(t, cat.Exists("mode.rust"))
	assert.True(t, cat.Exists("mode.html"))
	assert.True(t, cat.Exists(BundleFilter))
	assert.False(t, cat.Exists("theme.nope"))
	assert.False(t, cat.Exists("mode."))
	assert.False(t, cat.Exists("unknown"))
}

func TestGet(t *testing.T) {
	cat := Builtin()

	assert.Equal(t, "cobalt", cat.Get(settings.KeyTheme))
	assert.Equal(t, true, cat.Get(settings.KeyLineNumbers))
	assert.Nil(t, cat.Get("missing"))

	themes, ok := cat.Get(KeyThemeList).(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Tomorrow Night", themes["tomorrow_night"])

	modes, ok := cat.Get(KeySyntaxList).(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "C Cpp", modes["c_cpp"])
}

func TestSettingsReturnsCopy(t *testing.T) {
	cat := Builtin()
	copied := cat.Settings()
	copied[settings.KeyTheme] = "monokai"

	assert.Equal(t, "cobalt", cat.Get(settings.KeyTheme))
}

func TestLoadYAML(t *testing.T) {
	path := writeCatalogFile(t, "ace.yaml", `
theme: monokai
syntax: php
font-size: 14pt
line_numbers: 0
theme_list:
  cobalt: Cobalt
  monokai: Monokai Dark
syntax_list: [php, html]
`)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "monokai", cat.Get(settings.KeyTheme))
	assert.Equal(t, "php", cat.Get(settings.KeySyntax))
	assert.Equal(t, "14pt", cat.Get(settings.KeyFontSize))
	assert.Equal(t, 0, cat.Get(settings.KeyLineNumbers))
	assert.Equal(t, "500px", cat.Get(settings.KeyHeight))
	assert.Equal(t, []Option{{Name: "cobalt", Label: "Cobalt"}, {Name: "monokai", Label: "Monokai Dark"}}, cat.Themes)
	assert.True(t, cat.Exists("mode.php"))
	assert.False(t, cat.Exists("mode.rust"))
}

func TestLoadTOML(t *testing.T) {
	path := writeCatalogFile(t, "ace.toml", `
theme = "twilight"
print_margins = false
bundles = ["primary", "filter"]
`)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "twilight", cat.Get(settings.KeyTheme))
	assert.Equal(t, false, cat.Get(settings.KeyPrintMargins))
	assert.True(t, cat.Exists(BundlePrimary))
	assert.False(t, cat.Exists(BundleFormatter))
}

func TestLoadJSON(t *testing.T) {
	path := writeCatalogFile(t, "ace.json", `{"syntax":"golang","use_wrap_mode":1}`)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "golang", cat.Get(settings.KeySyntax))
	assert.Equal(t, 1, cat.Get(settings.KeyUseWrapMode))
}

func TestLoadEmptyPathReturnsBuiltin(t *testing.T) {
	cat, err := Load("  ")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), cat)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeCatalogFile(t, "ace.ini", "theme=x"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := Load(writeCatalogFile(t, "ace.yaml", "theme: [unclosed"))
		require.Error(t, err)
	})

	t.Run("default theme outside list", func(t *testing.T) {
		_, err := Load(writeCatalogFile(t, "ace.yaml", "theme: monokai\ntheme_list: [cobalt]\n"))
		require.ErrorContains(t, err, "default theme")
	})

	t.Run("invalid flag", func(t *testing.T) {
		_, err := Load(writeCatalogFile(t, "ace.json", `{"line_numbers": 3}`))
		require.Error(t, err)
	})

	t.Run("list of non strings", func(t *testing.T) {
		_, err := Decode(map[string]any{KeySyntaxList: []any{1, 2}})
		require.Error(t, err)
	})
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Tomorrow Night", labelFor("tomorrow_night"))
	assert.Equal(t, "Solarized Dark", labelFor("solarized-dark"))
	assert.Equal(t, "Éclair Ötzi", labelFor("éclair_ötzi"))
	assert.Equal(t, "", labelFor(""))
}
