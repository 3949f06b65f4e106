/*
File    : royc/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/lexer"
)

// Operator precedence table (higher binds tighter), per spec.md §4.2.2.
// Both rows are left-associative, encoded by recursing with prec+1 on
// the right-hand side rather than prec.
const (
	addPrec = 0 // + -
	mulPrec = 1 // * /
)

// precedenceOf returns the precedence of a binary operator token, and
// false if the token is not one of the four arithmetic operators.
func precedenceOf(t lexer.TokenType) (int, bool) {
	if !lexer.IsBinOp(t) {
		return 0, false
	}
	switch t {
	case lexer.Plus, lexer.Minus:
		return addPrec, true
	default: // lexer.Star, lexer.FSlash
		return mulPrec, true
	}
}

// parseExpr implements precedence climbing: it parses a Term as the
// initial left-hand side, then repeatedly consumes a binary operator
// whose precedence is at least minPrec, recursing on the right-hand side
// with minPrec'=prec+1 to get left-associativity, and wraps the two
// sides into a BinExpr. It stops when the next token isn't a binary
// operator or its precedence is too low.
//
// The reference parser's inner loop calls its token-consume operation
// twice per operator (once to capture it, once discarded) — consuming an
// extra token on every binary operation. That bug is not reproduced
// here: the operator token is consumed exactly once.
func (p *Parser) parseExpr(minPrec int) (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek(0)
		if !ok {
			break
		}
		prec, isOp := precedenceOf(tok.Type)
		if !isOp || prec < minPrec {
			break
		}
		op := p.consume()

		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}

		bin, err := arena.Alloc[BinExpr](p.arena)
		if err != nil {
			return nil, err
		}
		bin.Op = op.Type
		bin.Left = left
		bin.Right = right
		left = bin
	}
	return left, nil
}

// parseTerm parses an integer literal, an identifier, or a parenthesised
// expression — the three leaves of the expression grammar.
func (p *Parser) parseTerm() (Expr, error) {
	tok, ok := p.peek(0)
	if !ok {
		return nil, p.errExpected("an expression")
	}

	switch tok.Type {
	case lexer.IntLit:
		p.consume()
		lit, err := arena.Alloc[IntLitExpr](p.arena)
		if err != nil {
			return nil, err
		}
		lit.Token = tok
		return lit, nil

	case lexer.Ident:
		p.consume()
		id, err := arena.Alloc[IdentExpr](p.arena)
		if err != nil {
			return nil, err
		}
		id.Token = tok
		return id, nil

	case lexer.OpenParen:
		p.consume()
		inner, err := p.parseExpr(addPrec)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CloseParen); err != nil {
			return nil, err
		}
		paren, err := arena.Alloc[ParenExpr](p.arena)
		if err != nil {
			return nil, err
		}
		paren.Inner = inner
		return paren, nil

	default:
		return nil, p.errExpected("an expression")
	}
}
