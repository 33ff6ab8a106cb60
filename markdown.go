package maintpage

import (
	"bytes"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown renders page data strings such as "message" in the template:
//
//	{{ message|markdown }}
//
// Raw HTML in the input is omitted (goldmark's unsafe mode stays off), so the
// result is marked safe for autoescaping.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // Tables, strikethrough, autolinks, task lists
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithXHTML(),
	),
)

func filterMarkdown(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(in.String()), &buf); err != nil {
		return nil, &pongo2.Error{
			Sender:    "filter:markdown",
			OrigError: err,
		}
	}
	return pongo2.AsSafeValue(strings.TrimSpace(buf.String())), nil
}
