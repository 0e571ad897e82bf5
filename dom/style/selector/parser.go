package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse parses a compound selector. Combinators and selector lists are
// rejected; use ParseList for comma-separated lists.
func Parse(text string) (*Selector, error) {
	p := &parser{s: text}
	p.skipWhitespace()
	c, err := p.parseCompound(false)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.i < len(p.s) {
		switch p.s[p.i] {
		case ',':
			return nil, p.errorf("unexpected ',': selector lists are not a single selector")
		case '>', '+', '~':
			return nil, p.errorf("combinator %q is not supported", p.s[p.i])
		}
		return nil, p.errorf("descendant combinators are not supported")
	}
	sel := &Selector{Compound: *c, Text: text}
	sel.spec = sel.Compound.Specificity()
	tracer().Debugf("parsed selector %q, specificity %v", text, sel.spec)
	return sel, nil
}

// ParseList parses a comma-separated list of compound selectors.
func ParseList(text string) ([]*Selector, error) {
	var sels []*Selector
	for _, part := range splitTopLevel(text) {
		sel, err := Parse(part)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

// MustParse is like Parse, but panics on error. Intended for tests and
// static selector tables.
func MustParse(text string) *Selector {
	sel, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sel
}

// splitTopLevel splits at commas not enclosed in parentheses, brackets or
// quotes.
func splitTopLevel(text string) []string {
	var parts []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '\\':
			i++
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}

// a parser for CSS selectors
type parser struct {
	s string // the source text
	i int    // the current position
}

func (p *parser) errorf(msg string, args ...interface{}) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &SyntaxError{Selector: p.s, Pos: p.i, Msg: msg}
}

func (p *parser) skipWhitespace() bool {
	start := p.i
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\r', '\n', '\f':
			p.i++
		default:
			return p.i > start
		}
	}
	return p.i > start
}

func (p *parser) peek() byte {
	if p.i < len(p.s) {
		return p.s[p.i]
	}
	return 0
}

// parseCompound parses a sequence of simple selectors. With nested set, the
// compound is an argument of :not(), :is() or :where() and may not carry a
// pseudo-element.
func (p *parser) parseCompound(nested bool) (*Compound, error) {
	c := &Compound{}
	start := p.i
	switch ch := p.peek(); {
	case ch == '*':
		p.i++
		c.Parts = append(c.Parts, Simple{Kind: KindUniversal})
	case ch == '|':
		return nil, p.errorf("namespaces are not supported")
	case nameStart(ch) || ch == '-' || ch == '\\':
		tag, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		c.Parts = append(c.Parts, Simple{Kind: KindType, Name: strings.ToLower(tag)})
	}
	if p.peek() == '|' {
		return nil, p.errorf("namespaces are not supported")
	}
loop:
	for p.i < len(p.s) {
		if c.PseudoElement != "" {
			return nil, p.errorf("pseudo-element must be the last part of a selector")
		}
		switch p.s[p.i] {
		case '#':
			p.i++
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			c.Parts = append(c.Parts, Simple{Kind: KindID, Name: name})
		case '.':
			p.i++
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			c.Parts = append(c.Parts, Simple{Kind: KindClass, Name: name})
		case '[':
			sel, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			c.Parts = append(c.Parts, sel)
		case ':':
			sel, pseudoElement, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			if pseudoElement != "" {
				if nested {
					return nil, p.errorf("pseudo-element ::%s not allowed here", pseudoElement)
				}
				c.PseudoElement = pseudoElement
			} else {
				c.Parts = append(c.Parts, sel)
			}
		default:
			break loop
		}
	}
	if p.i == start {
		if p.i >= len(p.s) {
			return nil, p.errorf("expected selector, found EOF instead")
		}
		return nil, p.errorf("expected selector, found %q instead", p.s[p.i])
	}
	return c, nil
}

// parseAttribute parses an attribute selector such as [href^="https:" i].
func (p *parser) parseAttribute() (Simple, error) {
	p.i++ // '['
	p.skipWhitespace()
	name, err := p.parseIdentifier()
	if err != nil {
		return Simple{}, err
	}
	sel := Simple{Kind: KindAttribute, Name: strings.ToLower(name)}
	p.skipWhitespace()
	if p.i >= len(p.s) {
		return Simple{}, p.errorf("expected attribute selector ([attribute]), found EOF instead")
	}
	if p.s[p.i] == ']' {
		p.i++
		return sel, nil
	}
	if p.i+2 > len(p.s) {
		return Simple{}, p.errorf("expected attribute operator, found EOF instead")
	}
	switch op := p.s[p.i : p.i+2]; {
	case op[0] == '=':
		sel.Op = AttrEquals
		p.i++
	case op == "~=":
		sel.Op = AttrIncludes
		p.i += 2
	case op == "|=":
		sel.Op = AttrDash
		p.i += 2
	case op == "^=":
		sel.Op = AttrPrefix
		p.i += 2
	case op == "$=":
		sel.Op = AttrSuffix
		p.i += 2
	case op == "*=":
		sel.Op = AttrSubstring
		p.i += 2
	default:
		return Simple{}, p.errorf("attribute operator %q is not supported", op)
	}
	p.skipWhitespace()
	if p.i >= len(p.s) {
		return Simple{}, p.errorf("expected attribute value, found EOF instead")
	}
	var val string
	if c := p.s[p.i]; c == '\'' || c == '"' {
		val, err = p.parseString()
	} else {
		val, err = p.parseIdentifier()
	}
	if err != nil {
		return Simple{}, err
	}
	sel.Value = val
	p.skipWhitespace()
	if p.i < len(p.s) && (p.s[p.i] == 'i' || p.s[p.i] == 'I') {
		sel.Fold = true
		p.i++
		p.skipWhitespace()
	} else if p.i < len(p.s) && (p.s[p.i] == 's' || p.s[p.i] == 'S') {
		p.i++
		p.skipWhitespace()
	}
	if p.i >= len(p.s) || p.s[p.i] != ']' {
		return Simple{}, p.errorf("expected ']' to close attribute selector")
	}
	p.i++
	return sel, nil
}

// parsePseudo parses a pseudo-class or a pseudo-element. For a
// pseudo-element, only its name is returned.
func (p *parser) parsePseudo() (Simple, string, error) {
	p.i++ // ':'
	doubleColon := false
	if p.peek() == ':' {
		doubleColon = true
		p.i++
	}
	at := p.i
	name, err := p.parseIdentifier()
	if err != nil {
		return Simple{}, "", err
	}
	name = strings.ToLower(name)
	if doubleColon {
		if _, ok := pseudoElements[name]; !ok {
			p.i = at
			return Simple{}, "", p.errorf("unknown pseudo-element ::%s", name)
		}
		return Simple{}, name, nil
	}
	if legacy, ok := pseudoElements[name]; ok && legacy {
		return Simple{}, name, nil
	}
	if p.peek() != '(' {
		pc, ok := pseudoClasses[name]
		if !ok {
			p.i = at
			if _, fn := functionalPseudoClasses[name]; fn {
				return Simple{}, "", p.errorf("pseudo-class :%s requires an argument", name)
			}
			return Simple{}, "", p.errorf("unknown pseudo-class :%s", name)
		}
		return Simple{Kind: KindPseudoClass, Name: name, Pseudo: pc}, "", nil
	}
	pc, ok := functionalPseudoClasses[name]
	if !ok {
		p.i = at
		return Simple{}, "", p.errorf("unknown functional pseudo-class :%s()", name)
	}
	p.i++ // '('
	sel := Simple{Kind: KindPseudoClass, Name: name, Pseudo: pc}
	switch pc {
	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		arg, err := p.consumeArgument()
		if err != nil {
			return Simple{}, "", err
		}
		if sel.Nth, err = ParseAnB(arg); err != nil {
			return Simple{}, "", err
		}
	case PseudoLang, PseudoDir:
		arg, err := p.consumeArgument()
		if err != nil {
			return Simple{}, "", err
		}
		arg = strings.Trim(strings.TrimSpace(arg), `"'`)
		if arg == "" {
			return Simple{}, "", p.errorf("pseudo-class :%s() requires an argument", name)
		}
		if pc == PseudoDir {
			arg = strings.ToLower(arg)
			if arg != "ltr" && arg != "rtl" {
				return Simple{}, "", p.errorf("invalid direction %q", arg)
			}
		}
		sel.Value = arg
	default: // :not(), :is(), :where()
		for {
			p.skipWhitespace()
			c, err := p.parseCompound(true)
			if err != nil {
				return Simple{}, "", err
			}
			sel.Args = append(sel.Args, c)
			p.skipWhitespace()
			if p.peek() == ',' {
				p.i++
				continue
			}
			if p.peek() != ')' {
				if p.i >= len(p.s) {
					return Simple{}, "", p.errorf("expected ')', found EOF instead")
				}
				return Simple{}, "", p.errorf("combinators are not supported in :%s()", name)
			}
			p.i++
			break
		}
	}
	return sel, "", nil
}

// consumeArgument returns the raw text up to the closing parenthesis and
// consumes the parenthesis.
func (p *parser) consumeArgument() (string, error) {
	end := strings.IndexByte(p.s[p.i:], ')')
	if end < 0 {
		return "", p.errorf("expected ')', found EOF instead")
	}
	arg := p.s[p.i : p.i+end]
	p.i += end + 1
	return arg, nil
}

// parseEscape parses a backslash escape.
func (p *parser) parseEscape() (string, error) {
	if len(p.s) < p.i+2 || p.s[p.i] != '\\' {
		return "", p.errorf("invalid escape sequence")
	}
	start := p.i + 1
	c := p.s[start]
	switch {
	case c == '\r' || c == '\n' || c == '\f':
		return "", p.errorf("escaped line ending outside string")
	case hexDigit(c):
		// unicode escape (hex)
		var i int
		for i = start; i < start+6 && i < len(p.s) && hexDigit(p.s[i]); i++ {
			// empty
		}
		v, _ := strconv.ParseUint(p.s[start:i], 16, 64)
		if len(p.s) > i {
			switch p.s[i] {
			case '\r':
				i++
				if len(p.s) > i && p.s[i] == '\n' {
					i++
				}
			case ' ', '\t', '\n', '\f':
				i++
			}
		}
		p.i = i
		if v == 0 || v > utf8.MaxRune {
			return string(utf8.RuneError), nil
		}
		return string(rune(v)), nil
	}
	// Return the literal character after the backslash.
	_, size := utf8.DecodeRuneInString(p.s[start:])
	p.i = start + size
	return p.s[start : start+size], nil
}

func hexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// nameStart returns whether c can be the first character of an identifier
// (not counting an initial hyphen, or an escape sequence).
func nameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c > 127
}

// nameChar returns whether c can be a character within an identifier
// (not counting an escape sequence).
func nameChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c > 127 ||
		c == '-' || '0' <= c && c <= '9'
}

// parseIdentifier parses an identifier.
func (p *parser) parseIdentifier() (string, error) {
	startingDash := false
	if len(p.s) > p.i && p.s[p.i] == '-' {
		startingDash = true
		p.i++
	}
	if len(p.s) <= p.i {
		return "", p.errorf("expected identifier, found EOF instead")
	}
	if c := p.s[p.i]; !(nameStart(c) || c == '\\' || (startingDash && c == '-')) {
		return "", p.errorf("expected identifier, found %q instead", c)
	}
	result, err := p.parseName()
	if startingDash && err == nil {
		result = "-" + result
	}
	return result, err
}

// parseName parses a name (which is like an identifier, but doesn't have
// extra restrictions on the first character).
func (p *parser) parseName() (string, error) {
	var b strings.Builder
	i := p.i
loop:
	for i < len(p.s) {
		c := p.s[i]
		switch {
		case nameChar(c):
			start := i
			for i < len(p.s) && nameChar(p.s[i]) {
				i++
			}
			b.WriteString(p.s[start:i])
		case c == '\\':
			p.i = i
			val, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			i = p.i
			b.WriteString(val)
		default:
			break loop
		}
	}
	if b.Len() == 0 {
		p.i = i
		if i >= len(p.s) {
			return "", p.errorf("expected name, found EOF instead")
		}
		return "", p.errorf("expected name, found %q instead", p.s[i])
	}
	p.i = i
	return b.String(), nil
}

// parseString parses a single- or double-quoted string.
func (p *parser) parseString() (string, error) {
	i := p.i
	if len(p.s) < i+2 {
		return "", p.errorf("expected string, found EOF instead")
	}
	quote := p.s[i]
	i++
	var b strings.Builder
loop:
	for i < len(p.s) {
		switch p.s[i] {
		case '\\':
			if len(p.s) > i+1 {
				switch c := p.s[i+1]; c {
				case '\r':
					if len(p.s) > i+2 && p.s[i+2] == '\n' {
						i += 3
						continue loop
					}
					fallthrough
				case '\n', '\f':
					i += 2
					continue loop
				}
			}
			p.i = i
			val, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			i = p.i
			b.WriteString(val)
		case quote:
			break loop
		case '\r', '\n', '\f':
			p.i = i
			return "", p.errorf("unexpected end of line in string")
		default:
			start := i
			for i < len(p.s) {
				if c := p.s[i]; c == quote || c == '\\' || c == '\r' || c == '\n' || c == '\f' {
					break
				}
				i++
			}
			b.WriteString(p.s[start:i])
		}
	}
	if i >= len(p.s) {
		p.i = i
		return "", p.errorf("EOF in string")
	}
	// Consume the final quote.
	p.i = i + 1
	return b.String(), nil
}
