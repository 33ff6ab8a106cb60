package maintpage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, tpl string, data map[string]any) (string, error) {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "template.njk", tpl)
	return (&TemplateRenderer{}).Render(context.Background(), dir, "template.njk", data)
}

// ---------------------------------------------------------------------------
// TestTemplateRenderer_Render - Engine settings
// ---------------------------------------------------------------------------

func TestTemplateRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tpl  string
		data map[string]any
		want string
	}{
		{
			name: "variable",
			tpl:  "<h1>{{ title }}</h1>",
			data: map[string]any{"title": "Test"},
			want: "<h1>Test</h1>",
		},
		{
			name: "autoescape",
			tpl:  "<h1>{{ title }}</h1>",
			data: map[string]any{"title": "<script>alert(1)</script>"},
			want: "<h1>&lt;script&gt;alert(1)&lt;/script&gt;</h1>",
		},
		{
			name: "safe css",
			tpl:  "<style>{{ css|safe }}</style>",
			data: map[string]any{"css": ".a>.b{color:red}"},
			want: "<style>.a>.b{color:red}</style>",
		},
		{
			name: "nested values",
			tpl:  "{{ reopen.day }} at {{ reopen.hour }}",
			data: map[string]any{"reopen": map[string]any{"day": "Monday", "hour": 9}},
			want: "Monday at 9",
		},
		{
			name: "trim and lstrip blocks",
			tpl:  "<p>\n  {% if show %}\n  open\n  {% endif %}\n</p>\n",
			data: map[string]any{"show": true},
			want: "<p>\n  open\n</p>\n",
		},
		{
			name: "undefined variable renders empty",
			tpl:  "[{{ missing }}]",
			data: map[string]any{},
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderString(t, tt.tpl, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateRenderer_Markdown(t *testing.T) {
	t.Parallel()

	got, err := renderString(t, "{{ message|markdown }}", map[string]any{
		"message": "Back **soon**. <b>raw</b>",
	})
	require.NoError(t, err)

	assert.Contains(t, got, "<p>Back <strong>soon</strong>.")
	assert.NotContains(t, got, "<b>raw</b>")
	assert.NotContains(t, got, "&lt;strong&gt;", "filter output must not be escaped")
}

func TestTemplateRenderer_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown filter", func(t *testing.T) {
		t.Parallel()
		_, err := renderString(t, "{{ title|shout }}", map[string]any{"title": "x"})
		assert.ErrorIs(t, err, ErrRender)
	})

	t.Run("unknown tag", func(t *testing.T) {
		t.Parallel()
		_, err := renderString(t, "{% shout %}", nil)
		assert.ErrorIs(t, err, ErrRender)
	})

	t.Run("unclosed block", func(t *testing.T) {
		t.Parallel()
		_, err := renderString(t, "{% if title %}open", map[string]any{"title": "x"})
		assert.ErrorIs(t, err, ErrRender)
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()
		_, err := (&TemplateRenderer{}).Render(context.Background(), t.TempDir(), "nope.njk", nil)
		assert.ErrorIs(t, err, ErrRender)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nope")
		_, err := (&TemplateRenderer{}).Render(context.Background(), dir, "template.njk", nil)
		assert.ErrorIs(t, err, ErrRender)
	})
}

// ---------------------------------------------------------------------------
// TestTemplateContext - Data merge
// ---------------------------------------------------------------------------

func TestTemplateContext(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"title":     "T",
		"css":       "old",
		"last-name": "x",
		"a.b":       "y",
	}

	ctx, skipped := templateContext(data, ".a{}")

	assert.Equal(t, map[string]any{"title": "T", "css": ".a{}"}, ctx)
	assert.Equal(t, []string{"a.b", "last-name"}, skipped)
	assert.Equal(t, "old", data["css"])
}
