package stylesheet

import "strings"

// String prints the sheet in expanded form: one selector per line, one
// declaration per line, two-space indentation.
func (s *Stylesheet) String() string {
	p := &printer{}
	p.nodes(s.Nodes, 0)
	return p.sb.String()
}

// Compact prints the sheet without optional whitespace or comments. It does
// not rewrite values.
func (s *Stylesheet) Compact() string {
	p := &printer{compact: true}
	p.nodes(s.Nodes, 0)
	return p.sb.String()
}

type printer struct {
	sb      strings.Builder
	compact bool
}

func (p *printer) indent(depth int) {
	if !p.compact {
		p.sb.WriteString(strings.Repeat("  ", depth))
	}
}

func (p *printer) newline() {
	if !p.compact {
		p.sb.WriteByte('\n')
	}
}

func (p *printer) nodes(nodes []Node, depth int) {
	for i, n := range nodes {
		if i > 0 && depth == 0 && !p.compact {
			p.sb.WriteByte('\n')
		}
		switch v := n.(type) {
		case *Rule:
			p.rule(v, depth)
		case *AtRule:
			p.atRule(v, depth)
		case *Comment:
			if !p.compact {
				p.indent(depth)
				p.sb.WriteString(v.Text)
				p.newline()
			}
		}
	}
}

func (p *printer) rule(r *Rule, depth int) {
	p.indent(depth)
	if p.compact {
		p.sb.WriteString(r.SelectorText())
	} else {
		p.sb.WriteString(strings.Join(r.Selectors, ",\n"+strings.Repeat("  ", depth)))
		p.sb.WriteByte(' ')
	}
	p.block(r.Declarations, r.Children, "", depth)
}

func (p *printer) atRule(a *AtRule, depth int) {
	p.indent(depth)
	p.sb.WriteByte('@')
	p.sb.WriteString(a.Name)
	if a.Prelude != "" {
		p.sb.WriteByte(' ')
		p.sb.WriteString(a.Prelude)
	}
	if !a.Block {
		p.sb.WriteByte(';')
		p.newline()
		return
	}
	if !p.compact {
		p.sb.WriteByte(' ')
	}
	p.block(a.Declarations, a.Children, a.Raw, depth)
}

func (p *printer) block(decls []Declaration, children []Node, raw string, depth int) {
	p.sb.WriteByte('{')
	p.newline()
	for i, d := range decls {
		p.indent(depth + 1)
		p.sb.WriteString(d.Property)
		p.sb.WriteByte(':')
		if !p.compact {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString(d.Value)
		if !p.compact || i < len(decls)-1 || len(children) > 0 {
			p.sb.WriteByte(';')
		}
		p.newline()
	}
	p.nodes(children, depth+1)
	if raw = strings.TrimSpace(raw); raw != "" {
		p.indent(depth + 1)
		p.sb.WriteString(raw)
		p.newline()
	}
	p.indent(depth)
	p.sb.WriteByte('}')
	p.newline()
}
