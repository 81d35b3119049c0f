package eval

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	// tokenNum is a decimal literal, optionally with an exponent part.
	tokenNum
	// tokenIdent is a function or constant name.
	tokenIdent
	// tokenOp is one of + - * / % ^.
	tokenOp
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "end of expression"
	}
	return strconv.Quote(t.text)
}

// lexer scans an expression byte-wise. All meaningful characters are ASCII;
// anything else is rejected as a disallowed token.
type lexer struct {
	src  string
	pos  int
	peek *token
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next returns the next token, consuming it.
func (l *lexer) next() (token, error) {
	if l.peek != nil {
		tok := *l.peek
		l.peek = nil
		return tok, nil
	}
	return l.scan()
}

// lookahead returns the next token without consuming it.
func (l *lexer) lookahead() (token, error) {
	if l.peek == nil {
		tok, err := l.scan()
		if err != nil {
			return tok, err
		}
		l.peek = &tok
	}
	return *l.peek, nil
}

func (l *lexer) scan() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, pos: l.pos}, nil
	}
	start := l.pos
	c := l.src[l.pos]
	switch {
	case c >= '0' && c <= '9', c == '.':
		return l.scanNum()
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.src[start:l.pos], pos: start}, nil
	case c == '+', c == '-', c == '*', c == '/', c == '%', c == '^':
		l.pos++
		return token{kind: tokenOp, text: string(c), pos: start}, nil
	case c == '(':
		l.pos++
		return token{kind: tokenLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokenRParen, text: ")", pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokenComma, text: ",", pos: start}, nil
	default:
		return token{}, invalid("disallowed character %q at position %d", c, start)
	}
}

func (l *lexer) scanNum() (token, error) {
	start := l.pos
	var dig, dot, exp bool
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9':
			dig = true
		case c == '.':
			if dot || exp {
				return token{}, invalid("malformed number at position %d", start)
			}
			dot = true
		case c == 'e' || c == 'E':
			if !dig || exp {
				return token{}, invalid("malformed number at position %d", start)
			}
			exp = true
			// Optional sign directly after the exponent marker.
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == '+' || l.src[l.pos+1] == '-') {
				l.pos++
			}
		default:
			goto done
		}
		l.pos++
	}
done:
	text := l.src[start:l.pos]
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return token{}, invalid("malformed number %q at position %d", text, start)
	}
	return token{kind: tokenNum, text: text, pos: start}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func invalid(format string, args ...any) error {
	return &InvalidExpressionError{Reason: fmt.Sprintf(format, args...)}
}
