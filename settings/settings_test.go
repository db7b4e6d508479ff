package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	defaults := Defaults()

	require.NoError(t, defaults.Validate())
	assert.Equal(t, "cobalt", defaults[KeyTheme])
	assert.Equal(t, "html", defaults[KeySyntax])
	assert.Equal(t, "500px", defaults[KeyHeight])
	assert.Equal(t, "700px", defaults[KeyWidth])
	assert.Equal(t, "12pt", defaults[KeyFontSize])
	assert.True(t, defaults.Bool(KeyLineNumbers))
	assert.False(t, defaults.Bool(KeyShowInvisibles))
	assert.True(t, defaults.Bool(KeyPrintMargins))
	assert.True(t, defaults.Bool(KeyAutoComplete))
	assert.True(t, defaults.Bool(KeyUseWrapMode))
}

func TestOverlayDoesNotMutateBase(t *testing.T) {
	base := AttributeSet{KeyTheme: "cobalt", KeyFontSize: "12pt"}
	merged := base.Overlay(AttributeSet{KeyTheme: "monokai", KeyLineNumbers: 0})

	want := AttributeSet{KeyTheme: "monokai", KeyFontSize: "12pt", KeyLineNumbers: 0}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("overlay mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, AttributeSet{KeyTheme: "cobalt", KeyFontSize: "12pt"}, base)
}

func TestCloneIsDeep(t *testing.T) {
	original := AttributeSet{"fieldset": map[string]any{KeyTheme: "cobalt"}}
	cloned := original.Clone()
	cloned["fieldset"].(map[string]any)[KeyTheme] = "monokai"

	assert.Equal(t, "cobalt", original["fieldset"].(map[string]any)[KeyTheme])
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	merged := AttributeSet{KeyTheme: "twilight", KeyLineNumbers: false}.WithDefaults()

	assert.Equal(t, "twilight", merged[KeyTheme])
	assert.Equal(t, false, merged[KeyLineNumbers])
	assert.Equal(t, "html", merged[KeySyntax])
}

func TestBool(t *testing.T) {
	set := AttributeSet{
		"a": true,
		"b": 1,
		"c": 0,
		"d": "TRUE",
		"e": "nope",
		"f": float64(1),
	}

	assert.True(t, set.Bool("a"))
	assert.True(t, set.Bool("b"))
	assert.False(t, set.Bool("c"))
	assert.True(t, set.Bool("d"))
	assert.False(t, set.Bool("e"))
	assert.True(t, set.Bool("f"))
	assert.False(t, set.Bool("missing"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     AttributeSet
		wantErr bool
	}{
		{name: "empty", set: AttributeSet{}},
		{name: "unknown keys pass", set: AttributeSet{"mode_extra": []string{"x"}}},
		{name: "int flags", set: AttributeSet{KeyLineNumbers: 1, KeyPrintMargins: 0}},
		{name: "empty key", set: AttributeSet{" ": "x"}, wantErr: true},
		{name: "blank theme", set: AttributeSet{KeyTheme: "  "}, wantErr: true},
		{name: "theme not string", set: AttributeSet{KeyTheme: 1}, wantErr: true},
		{name: "flag out of range", set: AttributeSet{KeyUseWrapMode: 2}, wantErr: true},
		{name: "flag string", set: AttributeSet{KeyUseWrapMode: "yes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, 1, Coerce("1"))
	assert.Equal(t, 0, Coerce("0"))
	assert.Equal(t, 1, Coerce("TRUE"))
	assert.Equal(t, 0, Coerce("FALSE"))
	assert.Equal(t, "true", Coerce("true"))
	assert.Equal(t, "monokai", Coerce("monokai"))
	assert.Equal(t, "", Coerce(""))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "line_numbers", NormalizeKey("line-numbers"))
	assert.Equal(t, "Font_Size", NormalizeKey("Font-Size"))
	assert.Equal(t, "theme", NormalizeKey("theme"))
}
