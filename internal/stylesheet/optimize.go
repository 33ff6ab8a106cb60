package stylesheet

import (
	"slices"
	"strings"
)

// StripComments removes every comment except "/*!" license comments.
func (s *Stylesheet) StripComments() {
	s.Nodes = stripComments(s.Nodes)
}

func stripComments(nodes []Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		switch v := n.(type) {
		case *Comment:
			if strings.HasPrefix(v.Text, "/*!") {
				out = append(out, v)
			}
			continue
		case *AtRule:
			v.Children = stripComments(v.Children)
		case *Rule:
			v.Children = stripComments(v.Children)
		}
		out = append(out, n)
	}
	return out
}

// Restructure applies structural optimisations that do not depend on
// property semantics:
//   - rules without declarations and empty block at-rules are dropped
//   - an exact duplicate of a later rule in the same block is dropped
//   - adjacent rules with identical selectors are merged
//   - adjacent rules with identical declarations are merged
//
// It reports whether anything changed.
func (s *Stylesheet) Restructure() bool {
	var changed bool
	s.Nodes, changed = restructure(s.Nodes)
	return changed
}

func restructure(nodes []Node) ([]Node, bool) {
	changed := false
	for _, n := range nodes {
		if at, ok := n.(*AtRule); ok && len(at.Children) > 0 {
			var c bool
			at.Children, c = restructure(at.Children)
			changed = changed || c
		}
	}

	for {
		before := len(nodes)
		nodes = dropEmpty(nodes)
		nodes = dropDuplicates(nodes)
		nodes = mergeAdjacent(nodes, sameSelectors, mergeDeclarations)
		nodes = mergeAdjacent(nodes, sameDeclarations, mergeSelectors)
		if len(nodes) == before {
			break
		}
		changed = true
	}
	return nodes, changed
}

func dropEmpty(nodes []Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		switch v := n.(type) {
		case *Rule:
			if v.IsEmpty() {
				continue
			}
		case *AtRule:
			if v.IsEmpty() {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// dropDuplicates keeps the last of several identical rules in a block.
func dropDuplicates(nodes []Node) []Node {
	last := make(map[string]int)
	for i, n := range nodes {
		if r, ok := n.(*Rule); ok && len(r.Children) == 0 {
			last[ruleKey(r)] = i
		}
	}

	out := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		if r, ok := n.(*Rule); ok && len(r.Children) == 0 && last[ruleKey(r)] != i {
			continue
		}
		out = append(out, n)
	}
	return out
}

func mergeAdjacent(nodes []Node, match func(a, b *Rule) bool, merge func(a, b *Rule)) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		cur, ok := n.(*Rule)
		if ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*Rule); ok && mergeable(prev, cur) && match(prev, cur) {
				merge(prev, cur)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// mergeable excludes rules with nested children and selectors carrying
// vendor-prefixed pseudo classes, which invalidate a whole selector list in
// engines that do not know them.
func mergeable(a, b *Rule) bool {
	if len(a.Children) > 0 || len(b.Children) > 0 {
		return false
	}
	return !hasVendorPseudo(a.Selectors) && !hasVendorPseudo(b.Selectors)
}

func hasVendorPseudo(selectors []string) bool {
	for _, s := range selectors {
		if strings.Contains(s, ":-") {
			return true
		}
	}
	return false
}

func sameSelectors(a, b *Rule) bool {
	return a.SelectorText() == b.SelectorText()
}

func sameDeclarations(a, b *Rule) bool {
	return declKey(a.Declarations) == declKey(b.Declarations)
}

func mergeDeclarations(into, from *Rule) {
	into.Declarations = append(into.Declarations, from.Declarations...)
}

func mergeSelectors(into, from *Rule) {
	for _, s := range from.Selectors {
		if !slices.Contains(into.Selectors, s) {
			into.Selectors = append(into.Selectors, s)
		}
	}
}

func ruleKey(r *Rule) string {
	return r.SelectorText() + "{" + declKey(r.Declarations) + "}"
}

func declKey(decls []Declaration) string {
	var sb strings.Builder
	for _, d := range decls {
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(d.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}
