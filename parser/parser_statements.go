/*
File    : royc/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/lexer"
)

// parseStmt selects a statement production from its leading token (two
// leading tokens for an assignment); the remaining opening tokens shown
// below are then required by the chosen production via expect:
//
//	exit (            -> ExitStmt
//	let ident =       -> LetStmt
//	ident =           -> AssignStmt
//	{                 -> ScopeStmt
//	if                -> IfStmt
//
// Anything else is a ParseError citing the line of the most recently
// consumed token.
func (p *Parser) parseStmt() (Stmt, error) {
	switch {
	case p.peekIs(0, lexer.Exit):
		return p.parseExitStmt()
	case p.peekIs(0, lexer.Let):
		return p.parseLetStmt()
	case p.peekIs(0, lexer.Ident) && p.peekIs(1, lexer.Eq):
		return p.parseAssignStmt()
	case p.peekIs(0, lexer.OpenCurly):
		return p.parseScope()
	case p.peekIs(0, lexer.If):
		return p.parseIfStmt()
	default:
		return nil, p.errExpected("a statement")
	}
}

// parseExitStmt parses `exit ( Expr ) ;`.
func (p *Parser) parseExitStmt() (Stmt, error) {
	p.consume() // exit
	if _, err := p.expect(lexer.OpenParen); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(addPrec)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CloseParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semi); err != nil {
		return nil, err
	}
	stmt, err := arena.Alloc[ExitStmt](p.arena)
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, nil
}

// parseLetStmt parses `let ident = Expr ;`.
func (p *Parser) parseLetStmt() (Stmt, error) {
	p.consume() // let
	ident, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Eq); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(addPrec)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semi); err != nil {
		return nil, err
	}
	stmt, err := arena.Alloc[LetStmt](p.arena)
	if err != nil {
		return nil, err
	}
	stmt.Ident = ident
	stmt.Value = value
	return stmt, nil
}

// parseAssignStmt parses `ident = Expr ;`.
func (p *Parser) parseAssignStmt() (Stmt, error) {
	ident := p.consume()
	if _, err := p.expect(lexer.Eq); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(addPrec)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semi); err != nil {
		return nil, err
	}
	stmt, err := arena.Alloc[AssignStmt](p.arena)
	if err != nil {
		return nil, err
	}
	stmt.Ident = ident
	stmt.Value = value
	return stmt, nil
}

// parseScope parses `{ Stmt* }`.
func (p *Parser) parseScope() (*ScopeStmt, error) {
	if _, err := p.expect(lexer.OpenCurly); err != nil {
		return nil, err
	}
	scope, err := arena.Alloc[ScopeStmt](p.arena)
	if err != nil {
		return nil, err
	}
	for !p.peekIs(0, lexer.CloseCurly) {
		if p.atEnd() {
			return nil, p.errExpected(lexer.Describe(lexer.CloseCurly))
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		scope.Stmts = append(scope.Stmts, stmt)
	}
	p.consume() // }
	return scope, nil
}

// parseIfStmt parses `if ( Expr ) Scope [IfTail]`.
func (p *Parser) parseIfStmt() (Stmt, error) {
	p.consume() // if
	if _, err := p.expect(lexer.OpenParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(addPrec)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CloseParen); err != nil {
		return nil, err
	}
	body, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseIfTail()
	if err != nil {
		return nil, err
	}
	stmt, err := arena.Alloc[IfStmt](p.arena)
	if err != nil {
		return nil, err
	}
	stmt.Cond = cond
	stmt.Body = body
	stmt.Tail = tail
	return stmt, nil
}

// parseIfTail parses the optional elif/else continuation of an if chain,
// per spec.md §4.2.3. A bare `elif` recurses to allow further chaining;
// an `else` always terminates the chain. Returns a nil IfTail (not an
// error) when neither keyword follows — the chain simply ends there.
func (p *Parser) parseIfTail() (IfTail, error) {
	switch {
	case p.peekIs(0, lexer.Elif):
		p.consume()
		if _, err := p.expect(lexer.OpenParen); err != nil {
			return nil, err
		}
		cond, err := p.parseExpr(addPrec)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CloseParen); err != nil {
			return nil, err
		}
		body, err := p.parseScope()
		if err != nil {
			return nil, err
		}
		next, err := p.parseIfTail()
		if err != nil {
			return nil, err
		}
		clause, err := arena.Alloc[ElifClause](p.arena)
		if err != nil {
			return nil, err
		}
		clause.Cond = cond
		clause.Body = body
		clause.Next = next
		return clause, nil

	case p.peekIs(0, lexer.Else):
		p.consume()
		body, err := p.parseScope()
		if err != nil {
			return nil, err
		}
		clause, err := arena.Alloc[ElseClause](p.arena)
		if err != nil {
			return nil, err
		}
		clause.Body = body
		return clause, nil

	default:
		return nil, nil
	}
}
