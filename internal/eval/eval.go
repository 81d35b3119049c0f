// Package eval evaluates the bracketed arithmetic expressions embedded in
// problem text. The grammar is a fixed allow-list of math functions,
// constants, and operators; anything outside it is rejected. Expressions
// are parsed into a small syntax tree and evaluated directly — there is
// no dynamic code execution of any kind.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidExpression is the sentinel wrapped by every evaluation failure.
var ErrInvalidExpression = errors.New("invalid expression")

// InvalidExpressionError reports why an expression was rejected: empty
// input, a token outside the allow-list, malformed syntax, or a
// non-finite result.
type InvalidExpressionError struct {
	Expr   string
	Reason string
}

func (e *InvalidExpressionError) Error() string {
	if e.Expr == "" {
		return "invalid expression: " + e.Reason
	}
	return fmt.Sprintf("invalid expression %q: %s", e.Expr, e.Reason)
}

func (e *InvalidExpressionError) Unwrap() error { return ErrInvalidExpression }

// Grammar, in precedence order (loosest first):
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/" | "%") unary }
//	unary  = ("+" | "-") unary | power
//	power  = atom [ "^" unary ]          (right-associative)
//	atom   = number | constant | func "(" [ expr { "," expr } ] ")" | "(" expr ")"

type nodeKind int8

const (
	nodeNum nodeKind = iota
	nodeCall
	nodeNeg
	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeMod
	nodePow
)

type node struct {
	kind nodeKind

	val  float64
	fn   function
	args []*node

	left  *node
	right *node
}

// Evaluate parses and evaluates an expression against the allow-list.
// The result is always finite; NaN and ±Inf are rejected.
func Evaluate(expr string) (float64, error) {
	p := &parser{lex: newLexer(expr)}
	n, err := p.parseExpr()
	if err != nil {
		return 0, wrap(expr, err)
	}
	end, err := p.lex.next()
	if err != nil {
		return 0, wrap(expr, err)
	}
	if end.kind != tokenEOF {
		return 0, wrap(expr, invalid("unexpected %s at position %d", end, end.pos))
	}
	v := n.eval()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, wrap(expr, invalid("result is not finite"))
	}
	return v, nil
}

func wrap(expr string, err error) error {
	var ie *InvalidExpressionError
	if errors.As(err, &ie) && ie.Expr == "" {
		ie.Expr = expr
	}
	return err
}

type parser struct {
	lex *lexer
}

func (p *parser) parseExpr() (*node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lex.lookahead()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			return n, nil
		}
		p.lex.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		kind := nodeAdd
		if tok.text == "-" {
			kind = nodeSub
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func (p *parser) parseTerm() (*node, error) {
	n, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lex.lookahead()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp {
			return n, nil
		}
		var kind nodeKind
		switch tok.text {
		case "*":
			kind = nodeMul
		case "/":
			kind = nodeDiv
		case "%":
			kind = nodeMod
		default:
			return n, nil
		}
		p.lex.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func (p *parser) parseUnary() (*node, error) {
	tok, err := p.lex.lookahead()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && (tok.text == "+" || tok.text == "-") {
		p.lex.next()
		n, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.text == "-" {
			n = &node{kind: nodeNeg, left: n}
		}
		return n, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	tok, err := p.lex.lookahead()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && tok.text == "^" {
		p.lex.next()
		// Right-associative: 2^3^2 = 2^(3^2). The exponent may carry its
		// own unary sign, as in 10^-3.
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodePow, left: n, right: rhs}, nil
	}
	return n, nil
}

func (p *parser) parseAtom() (*node, error) {
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, invalid("malformed number %q", tok.text)
		}
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		next, err := p.lex.lookahead()
		if err != nil {
			return nil, err
		}
		if next.kind == tokenLParen {
			fn, ok := functions[tok.text]
			if !ok {
				return nil, invalid("unknown function %q", tok.text)
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if len(args) != fn.arity {
				return nil, invalid("%s takes %d argument(s), got %d", tok.text, fn.arity, len(args))
			}
			return &node{kind: nodeCall, fn: fn, args: args}, nil
		}
		if v, ok := lookupConstant(tok.text); ok {
			return &node{kind: nodeNum, val: v}, nil
		}
		return nil, invalid("disallowed identifier %q", tok.text)
	case tokenLParen:
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return n, nil
	case tokenEOF:
		return nil, invalid("empty expression")
	default:
		return nil, invalid("unexpected %s at position %d", tok, tok.pos)
	}
}

func (p *parser) parseArgs() ([]*node, error) {
	if err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	next, err := p.lex.lookahead()
	if err != nil {
		return nil, err
	}
	if next.kind == tokenRParen {
		p.lex.next()
		return nil, nil
	}
	var args []*node
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenComma:
			continue
		case tokenRParen:
			return args, nil
		default:
			return nil, invalid("unexpected %s in argument list at position %d", tok, tok.pos)
		}
	}
}

func (p *parser) expect(kind tokenKind) error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	if tok.kind != kind {
		if kind == tokenRParen {
			return invalid("missing closing parenthesis, found %s", tok)
		}
		return invalid("unexpected %s at position %d", tok, tok.pos)
	}
	return nil
}

func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeCall:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			args[i] = a.eval()
		}
		return n.fn.call(args)
	case nodeNeg:
		return -n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodeMod:
		return math.Mod(n.left.eval(), n.right.eval())
	case nodePow:
		return math.Pow(n.left.eval(), n.right.eval())
	default:
		panic("eval: invalid node kind")
	}
}
