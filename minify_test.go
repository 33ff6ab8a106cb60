package maintpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-maintpage/internal/stylesheet"
)

// ---------------------------------------------------------------------------
// TestCSSMinifier_Minify - Levels
// ---------------------------------------------------------------------------

func TestCSSMinifier_Minify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		level Level
		want  string
	}{
		{
			name:  "level 0 keeps values",
			src:   "/* brand */\n.a {\n  color: #ffffff;\n}\n",
			level: LevelWhitespace,
			want:  ".a{color:#ffffff}",
		},
		{
			name:  "level 0 keeps duplicate rules",
			src:   ".a { color: red; }\n.a { color: red; }\n",
			level: LevelWhitespace,
			want:  ".a{color:red}.a{color:red}",
		},
		{
			name:  "level 1 shortens values",
			src:   ".a {\n  color: #ffffff;\n  margin: 0px;\n}\n",
			level: LevelValues,
			want:  ".a{color:#fff;margin:0}",
		},
		{
			name:  "level 2 merges adjacent rules",
			src:   ".a { color: red; }\n.a { margin: 0; }\n",
			level: LevelRestructure,
			want:  ".a{color:red;margin:0}",
		},
		{
			name:  "level 2 drops empty rules",
			src:   ".a { }\n.b { color: red; }\n",
			level: LevelRestructure,
			want:  ".b{color:red}",
		},
		{
			name:  "empty input",
			src:   "",
			level: LevelRestructure,
			want:  "",
		},
	}

	m := NewCSSMinifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := m.Minify(tt.src, tt.level)
			require.Empty(t, res.Errors)
			assert.Equal(t, tt.want, res.Styles)
		})
	}
}

func TestCSSMinifier_Errors(t *testing.T) {
	t.Parallel()

	m := NewCSSMinifier()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		res := m.Minify(".a { color red; margin: 0; }", LevelRestructure)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0], "line 1")
		assert.Empty(t, res.Styles)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		res := m.Minify(".a{color:red}", Level(5))
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "invalid minification level")
	})
}

func TestDropEmptyDeclarations(t *testing.T) {
	t.Parallel()

	sheet := &stylesheet.Stylesheet{Nodes: []stylesheet.Node{
		&stylesheet.Rule{
			Selectors: []string{".a"},
			Declarations: []stylesheet.Declaration{
				{Property: "color", Value: ""},
				{Property: "margin", Value: "0"},
			},
		},
	}}

	warnings := dropEmptyDeclarations(sheet)

	assert.Equal(t, []string{`empty property "color" in ".a" dropped`}, warnings)
	assert.Equal(t, ".a{margin:0}", sheet.Compact())
}
