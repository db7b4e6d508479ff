package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgonek/ace-filter/settings"
)

func TestTagAttributes(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   settings.AttributeSet
		wantOK bool
	}{
		{
			name:   "double quotes",
			markup: `<ace theme="monokai" syntax="php">x</ace>`,
			want:   settings.AttributeSet{"theme": "monokai", "syntax": "php"},
			wantOK: true,
		},
		{
			name:   "single quotes and spacing",
			markup: `<ace font-size = '14pt'  height="300px">x</ace>`,
			want:   settings.AttributeSet{"font_size": "14pt", "height": "300px"},
			wantOK: true,
		},
		{
			name:   "coerced flags",
			markup: `<ace line-numbers="1" print-margins="FALSE" auto-complete="TRUE" use-wrap-mode="0">x</ace>`,
			want: settings.AttributeSet{
				"line_numbers":  1,
				"print_margins": 0,
				"auto_complete": 1,
				"use_wrap_mode": 0,
			},
			wantOK: true,
		},
		{
			name:   "lowercase true stays string",
			markup: `<ace line-numbers="true">x</ace>`,
			want:   settings.AttributeSet{"line_numbers": "true"},
			wantOK: true,
		},
		{
			name:   "case preserved",
			markup: `<ace Theme="Monokai">x</ace>`,
			want:   settings.AttributeSet{"Theme": "Monokai"},
			wantOK: true,
		},
		{
			name:   "self closing",
			markup: `<ace theme="github" />`,
			want:   settings.AttributeSet{"theme": "github"},
			wantOK: true,
		},
		{
			name:   "empty value",
			markup: `<ace theme="">x</ace>`,
			want:   settings.AttributeSet{"theme": ""},
			wantOK: true,
		},
		{
			name:   "later duplicate wins",
			markup: `<ace theme="a" theme="b">x</ace>`,
			want:   settings.AttributeSet{"theme": "b"},
			wantOK: true,
		},
		{
			name:   "no attributes",
			markup: `<ace>x</ace>`,
			want:   settings.AttributeSet{},
		},
		{
			name:   "unquoted",
			markup: `<ace theme=monokai>x</ace>`,
			want:   settings.AttributeSet{},
		},
		{
			name:   "mixed quotes",
			markup: `<ace theme="monokai'>x</ace>`,
			want:   settings.AttributeSet{},
		},
		{
			name:   "only closing tag attributes ignored",
			markup: `<ace>x</ace theme="monokai">`,
			want:   settings.AttributeSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TagAttributes("ace", tt.markup)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagAttributesOtherElement(t *testing.T) {
	got, ok := TagAttributes("code", `<code lang="go" data-x='1'>x</code>`)
	assert.True(t, ok)
	assert.Equal(t, settings.AttributeSet{"lang": "go", "data_x": 1}, got)
}

func TestHasAttributeText(t *testing.T) {
	assert.False(t, hasAttributeText(`<ace>x</ace>`))
	assert.False(t, hasAttributeText(`<ace  >x</ace>`))
	assert.True(t, hasAttributeText(`<ace theme=x>x</ace>`))
	assert.True(t, hasAttributeText(`<ace readonly>x</ace>`))
}
