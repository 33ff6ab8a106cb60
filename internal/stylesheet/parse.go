package stylesheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SyntaxError is a recoverable parse error. The parser skips the offending
// rule or declaration and keeps going.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

// Parse builds a tree from CSS source. Syntax errors do not stop parsing;
// they are returned alongside the best-effort tree.
func Parse(src string) (*Stylesheet, []*SyntaxError) {
	p := css.NewParser(parse.NewInputString(src), false)
	b := &builder{sheet: &Stylesheet{}}

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if !p.HasParseError() {
				// io.EOF, or a read error that cannot happen on in-memory input.
				return b.sheet, b.errs
			}
			b.errs = append(b.errs, syntaxError(p.Err()))
		case css.CommentGrammar:
			b.add(&Comment{Text: string(data)})
		case css.AtRuleGrammar:
			b.add(&AtRule{
				Name:    atName(data),
				Prelude: tokenText(p.Values()),
			})
		case css.BeginAtRuleGrammar:
			at := &AtRule{
				Name:    atName(data),
				Prelude: tokenText(p.Values()),
				Block:   true,
			}
			b.add(at)
			b.push(at)
		case css.BeginRulesetGrammar:
			r := &Rule{Selectors: splitSelectors(p.Values())}
			b.add(r)
			b.push(r)
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			b.pop()
		case css.DeclarationGrammar:
			b.addDecl(Declaration{
				Property: string(data),
				Value:    tokenText(p.Values()),
			})
		case css.CustomPropertyGrammar:
			var value string
			if vals := p.Values(); len(vals) > 0 {
				value = strings.TrimSpace(string(vals[0].Data))
			}
			b.addDecl(Declaration{Property: string(data), Value: value})
		case css.TokenGrammar:
			if at, ok := b.top().(*AtRule); ok {
				at.Raw += string(data)
			}
		}
	}
}

type builder struct {
	sheet *Stylesheet
	stack []Node
	errs  []*SyntaxError
}

func (b *builder) top() Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(n Node) { b.stack = append(b.stack, n) }

func (b *builder) pop() {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *builder) add(n Node) {
	switch parent := b.top().(type) {
	case *AtRule:
		parent.Children = append(parent.Children, n)
	case *Rule:
		parent.Children = append(parent.Children, n)
	default:
		b.sheet.Nodes = append(b.sheet.Nodes, n)
	}
}

func (b *builder) addDecl(d Declaration) {
	switch parent := b.top().(type) {
	case *AtRule:
		parent.Declarations = append(parent.Declarations, d)
	case *Rule:
		parent.Declarations = append(parent.Declarations, d)
	}
}

func syntaxError(err error) *SyntaxError {
	var perr *parse.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Message: perr.Message, Line: perr.Line, Column: perr.Column}
	}
	return &SyntaxError{Message: err.Error()}
}

func atName(data []byte) string {
	return strings.TrimPrefix(string(data), "@")
}

func tokenText(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// splitSelectors splits a selector list on top-level commas, leaving commas
// inside :is(), :not() and attribute values alone.
func splitSelectors(tokens []css.Token) []string {
	var (
		selectors []string
		sb        strings.Builder
		depth     int
	)
	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
	}

	for _, t := range tokens {
		switch t.TokenType {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				flush()
				continue
			}
		}
		sb.Write(t.Data)
	}
	flush()
	return selectors
}
