package purge

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type simpleKind int

const (
	tagSelector simpleKind = iota
	classSelector
	idSelector
	attrSelector
)

// simple is one name-bearing part of a compound selector. Universal
// selectors, combinators and pseudo-classes are not represented.
type simple struct {
	kind  simpleKind
	name  string
	op    string // attribute operator: "=", "~=", "|=", "^=", "$=", "*=" or ""
	value string
	fold  bool // attribute selector "i" flag
}

// parseSelector lists the tag, class, id and attribute parts of a single
// complex selector. Arguments of functional pseudo-classes such as :not()
// are skipped entirely.
func parseSelector(sel string) []simple {
	l := css.NewLexer(parse.NewInputString(sel))

	var (
		out        []simple
		afterDot   bool
		afterColon bool
	)
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return out
		case css.DelimToken:
			afterDot = len(data) == 1 && data[0] == '.'
			afterColon = false
			continue
		case css.ColonToken:
			afterColon = true
			afterDot = false
			continue
		case css.IdentToken:
			name := unescape(string(data))
			switch {
			case afterDot:
				out = append(out, simple{kind: classSelector, name: name})
			case afterColon:
				// pseudo-class or pseudo-element
			default:
				out = append(out, simple{kind: tagSelector, name: name})
			}
		case css.HashToken:
			out = append(out, simple{kind: idSelector, name: unescape(string(data[1:]))})
		case css.FunctionToken:
			skipArguments(l)
		case css.LeftBracketToken:
			if attr, ok := parseAttribute(l); ok {
				out = append(out, attr)
			}
		}
		afterDot, afterColon = false, false
	}
}

func skipArguments(l *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := l.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
	}
}

func parseAttribute(l *css.Lexer) (simple, bool) {
	attr := simple{kind: attrSelector}
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return attr, attr.name != ""
		case css.RightBracketToken:
			return attr, attr.name != ""
		case css.WhitespaceToken:
		case css.IdentToken:
			switch {
			case attr.name == "":
				attr.name = unescape(string(data))
			case attr.op == "":
				// namespace prefix: "svg|href" lexes as ident, delim, ident
				attr.name = unescape(string(data))
			case attr.value == "":
				attr.value = unescape(string(data))
			default:
				attr.fold = strings.EqualFold(string(data), "i")
			}
		case css.StringToken:
			attr.value = unquote(string(data))
		case css.IncludeMatchToken, css.DashMatchToken, css.PrefixMatchToken,
			css.SuffixMatchToken, css.SubstringMatchToken:
			attr.op = string(data)
		case css.DelimToken:
			if len(data) == 1 && data[0] == '=' {
				attr.op = "="
			}
		}
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return unescape(s)
}

// unescape resolves CSS escapes: "\:" becomes ":" and "\31 " becomes "1".
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		j := i
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		if j == i {
			sb.WriteByte(s[i])
			continue
		}
		code, err := strconv.ParseUint(s[i:j], 16, 32)
		if err != nil || code == 0 || code > 0x10FFFF {
			sb.WriteRune('\uFFFD')
		} else {
			sb.WriteRune(rune(code))
		}
		// one whitespace after a hex escape belongs to the escape
		if j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n') {
			j++
		}
		i = j - 1
	}
	return sb.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
