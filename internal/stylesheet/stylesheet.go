// Package stylesheet holds a minimal CSS syntax tree built on the
// tdewolff/parse tokenizer.
//
// The tree keeps what the pruner and the structural minifier need: rules
// with their selector lists and declarations, at-rules with their prelude
// and nested content, and top-level comments. Values are stored as the
// tokenizer normalised them (collapsed whitespace, lowercased property names),
// so printing a parsed sheet is lossless in meaning but not byte-for-byte.
//
//	src --Parse--> *Stylesheet --Prune/Optimize--> *Stylesheet --String/Compact--> css
package stylesheet

import "strings"

// Node is a top-level or nested stylesheet item: *Rule, *AtRule or *Comment.
type Node interface {
	node()
}

// Stylesheet is a parsed CSS document.
type Stylesheet struct {
	Nodes []Node
}

// Rule is a qualified rule such as ".a, .b { color: red }".
type Rule struct {
	Selectors    []string
	Declarations []Declaration
	// Children holds nested at-rules (CSS nesting); compiled Sass rarely has any.
	Children []Node
}

// Declaration is a single "property: value" pair. Value includes any
// trailing "!important".
type Declaration struct {
	Property string
	Value    string
}

// AtRule is an at-rule, with or without a block. Grouping at-rules (@media,
// @supports, @layer, @document) and @keyframes carry nested nodes in
// Children; @font-face and @page carry Declarations; unknown at-rules keep
// their body verbatim in Raw.
type AtRule struct {
	Name         string // lowercased, without "@"
	Prelude      string
	Block        bool
	Declarations []Declaration
	Children     []Node
	Raw          string
}

// Comment is a top-level comment including its delimiters.
type Comment struct {
	Text string
}

func (*Rule) node()    {}
func (*AtRule) node()  {}
func (*Comment) node() {}

// SelectorText joins the selector list the way it is printed compactly.
func (r *Rule) SelectorText() string {
	return strings.Join(r.Selectors, ",")
}

// IsEmpty reports whether the rule has neither declarations nor nested nodes.
func (r *Rule) IsEmpty() bool {
	return len(r.Declarations) == 0 && len(r.Children) == 0
}

// IsGrouping reports whether the at-rule conditionally groups other rules
// rather than defining something by itself.
func (a *AtRule) IsGrouping() bool {
	switch baseName(a.Name) {
	case "media", "supports", "layer", "document", "container", "scope":
		return a.Block
	}
	return false
}

// IsEmpty reports whether a block at-rule has no content at all.
func (a *AtRule) IsEmpty() bool {
	return a.Block && len(a.Declarations) == 0 && len(a.Children) == 0 && strings.TrimSpace(a.Raw) == ""
}

// baseName strips a vendor prefix: "-webkit-keyframes" becomes "keyframes".
func baseName(name string) string {
	if strings.HasPrefix(name, "-") {
		if i := strings.Index(name[1:], "-"); i != -1 {
			return name[i+2:]
		}
	}
	return name
}

// BaseName returns the at-rule name without its vendor prefix.
func (a *AtRule) BaseName() string {
	return baseName(a.Name)
}

// Walk calls fn for every rule in nodes, descending into at-rules and
// nested rule children.
func Walk(nodes []Node, fn func(*Rule)) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Rule:
			fn(v)
			Walk(v.Children, fn)
		case *AtRule:
			Walk(v.Children, fn)
		}
	}
}
