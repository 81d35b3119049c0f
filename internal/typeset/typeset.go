// Package typeset converts a subset of TeX math notation into MathML
// markup. It covers the constructs that appear in worked engineering
// problems: scripts, fractions, roots, greek letters, and common operator
// symbols. Anything it does not recognize is an error, and callers are
// expected to fall back to the literal source.
package typeset

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const mathmlNS = "http://www.w3.org/1998/Math/MathML"

// MathML renders typeset spans as MathML. The zero value is ready to use.
type MathML struct{}

// RenderToString converts src to MathML markup. displayMode selects block
// layout. It returns an error for unknown commands or unbalanced groups.
func (MathML) RenderToString(src string, displayMode bool) (string, error) {
	p := &parser{toks: tokenize(src)}
	nodes, err := p.parseList(false)
	if err != nil {
		return "", err
	}
	if p.pos < len(p.toks) {
		return "", fmt.Errorf("typeset: unexpected %q", p.toks[p.pos].text)
	}

	display := "inline"
	if displayMode {
		display = "block"
	}
	root := elem("math",
		html.Attribute{Key: "xmlns", Val: mathmlNS},
		html.Attribute{Key: "display", Val: display},
	)
	row := elem("mrow")
	for _, n := range nodes {
		row.AppendChild(n)
	}
	root.AppendChild(row)

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		return "", fmt.Errorf("typeset: render: %w", err)
	}
	return b.String(), nil
}

type tokKind int

const (
	tokChar tokKind = iota
	tokCommand
	tokOpen  // {
	tokClose // }
	tokSup   // ^
	tokSub   // _
	tokSpace // run of whitespace, significant only inside \text
)

type tok struct {
	kind tokKind
	text string
}

func tokenize(src string) []tok {
	var toks []tok
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			for i < len(rs) && (rs[i] == ' ' || rs[i] == '\t' || rs[i] == '\n' || rs[i] == '\r') {
				i++
			}
			toks = append(toks, tok{tokSpace, " "})
		case r == '\\':
			i++
			if i >= len(rs) {
				toks = append(toks, tok{tokCommand, ""})
				continue
			}
			if isLetter(rs[i]) {
				j := i
				for j < len(rs) && isLetter(rs[j]) {
					j++
				}
				toks = append(toks, tok{tokCommand, string(rs[i:j])})
				i = j
			} else {
				toks = append(toks, tok{tokCommand, string(rs[i])})
				i++
			}
		case r == '{':
			toks = append(toks, tok{tokOpen, "{"})
			i++
		case r == '}':
			toks = append(toks, tok{tokClose, "}"})
			i++
		case r == '^':
			toks = append(toks, tok{tokSup, "^"})
			i++
		case r == '_':
			toks = append(toks, tok{tokSub, "_"})
			i++
		default:
			toks = append(toks, tok{tokChar, string(r)})
			i++
		}
	}
	return toks
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

type parser struct {
	toks []tok
	pos  int
}

// parseList parses atoms until end of input or, when inGroup, the closing
// brace (which is consumed).
func (p *parser) parseList(inGroup bool) ([]*html.Node, error) {
	var out []*html.Node
	for p.pos < len(p.toks) {
		p.skipSpaces()
		if p.pos >= len(p.toks) {
			break
		}
		t := p.toks[p.pos]
		if t.kind == tokClose {
			if inGroup {
				p.pos++
				return out, nil
			}
			return nil, fmt.Errorf("typeset: unbalanced }")
		}
		n, err := p.parseScripted()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if inGroup {
		return nil, fmt.Errorf("typeset: unbalanced {")
	}
	return out, nil
}

// parseScripted parses one atom plus any ^ and _ scripts attached to it.
func (p *parser) parseScripted() (*html.Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	var sup, sub *html.Node
	for p.pos < len(p.toks) {
		p.skipSpaces()
		if p.pos >= len(p.toks) {
			break
		}
		t := p.toks[p.pos]
		switch t.kind {
		case tokSup:
			if sup != nil {
				return nil, fmt.Errorf("typeset: double superscript")
			}
			p.pos++
			sup, err = p.parseAtom()
		case tokSub:
			if sub != nil {
				return nil, fmt.Errorf("typeset: double subscript")
			}
			p.pos++
			sub, err = p.parseAtom()
		default:
			goto done
		}
		if err != nil {
			return nil, err
		}
	}
done:
	switch {
	case sup != nil && sub != nil:
		n := elem("msubsup")
		n.AppendChild(base)
		n.AppendChild(sub)
		n.AppendChild(sup)
		return n, nil
	case sup != nil:
		n := elem("msup")
		n.AppendChild(base)
		n.AppendChild(sup)
		return n, nil
	case sub != nil:
		n := elem("msub")
		n.AppendChild(base)
		n.AppendChild(sub)
		return n, nil
	default:
		return base, nil
	}
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.toks) && p.toks[p.pos].kind == tokSpace {
		p.pos++
	}
}

func (p *parser) parseAtom() (*html.Node, error) {
	p.skipSpaces()
	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("typeset: unexpected end of input")
	}
	t := p.toks[p.pos]
	switch t.kind {
	case tokOpen:
		p.pos++
		children, err := p.parseList(true)
		if err != nil {
			return nil, err
		}
		if len(children) == 1 {
			return children[0], nil
		}
		row := elem("mrow")
		for _, c := range children {
			row.AppendChild(c)
		}
		return row, nil
	case tokCommand:
		return p.parseCommand(t.text)
	case tokChar:
		r := []rune(t.text)[0]
		switch {
		case isDigit(r):
			return p.parseNumber(), nil
		case isLetter(r):
			p.pos++
			return textElem("mi", t.text), nil
		default:
			p.pos++
			return textElem("mo", t.text), nil
		}
	case tokSup, tokSub:
		return nil, fmt.Errorf("typeset: script without base")
	default:
		return nil, fmt.Errorf("typeset: unexpected %q", t.text)
	}
}

// parseNumber consumes a run of digits with at most one interior dot.
func (p *parser) parseNumber() *html.Node {
	var b strings.Builder
	dot := false
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		if t.kind != tokChar {
			break
		}
		r := []rune(t.text)[0]
		if isDigit(r) {
			b.WriteRune(r)
			p.pos++
			continue
		}
		if r == '.' && !dot && p.pos+1 < len(p.toks) && p.toks[p.pos+1].kind == tokChar && isDigit([]rune(p.toks[p.pos+1].text)[0]) {
			dot = true
			b.WriteRune(r)
			p.pos++
			continue
		}
		break
	}
	return textElem("mn", b.String())
}

func (p *parser) parseCommand(name string) (*html.Node, error) {
	p.pos++
	switch name {
	case "frac":
		num, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		den, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		n := elem("mfrac")
		n.AppendChild(num)
		n.AppendChild(den)
		return n, nil
	case "sqrt":
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		n := elem("msqrt")
		n.AppendChild(arg)
		return n, nil
	case "text":
		return p.parseText()
	case "left", "right":
		// The delimiter itself follows; render it as a plain operator.
		p.skipSpaces()
		if p.pos >= len(p.toks) {
			return nil, fmt.Errorf("typeset: \\%s without delimiter", name)
		}
		d := p.toks[p.pos]
		p.pos++
		if d.kind == tokCommand {
			if sym, ok := symbols[d.text]; ok {
				return textElem(sym.tag, sym.text), nil
			}
			return nil, fmt.Errorf("typeset: unknown delimiter \\%s", d.text)
		}
		if d.text == "." {
			// Invisible delimiter.
			return textElem("mo", ""), nil
		}
		return textElem("mo", d.text), nil
	case ",", ";", "quad", "qquad":
		n := elem("mspace", html.Attribute{Key: "width", Val: spaceWidth(name)})
		return n, nil
	case "\\":
		// Row separator; approximate with a line break inside the formula.
		return elem("mspace", html.Attribute{Key: "linebreak", Val: "newline"}), nil
	}
	if sym, ok := symbols[name]; ok {
		return textElem(sym.tag, sym.text), nil
	}
	return nil, fmt.Errorf("typeset: unknown command \\%s", name)
}

// parseText consumes a braced argument verbatim, spaces included.
func (p *parser) parseText() (*html.Node, error) {
	p.skipSpaces()
	if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokOpen {
		return nil, fmt.Errorf("typeset: \\text requires a braced argument")
	}
	p.pos++
	var b strings.Builder
	for {
		if p.pos >= len(p.toks) {
			return nil, fmt.Errorf("typeset: unbalanced { in \\text")
		}
		t := p.toks[p.pos]
		if t.kind == tokClose {
			p.pos++
			return textElem("mtext", b.String()), nil
		}
		b.WriteString(t.text)
		p.pos++
	}
}

func spaceWidth(name string) string {
	switch name {
	case ",":
		return "0.167em"
	case ";":
		return "0.278em"
	case "quad":
		return "1em"
	default:
		return "2em"
	}
}

func elem(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
}

func textElem(tag, text string) *html.Node {
	n := elem(tag)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
