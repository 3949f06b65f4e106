/*
File    : royc/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for RoyC, with a
Pratt-style precedence-climbing expression parser at its core (see
precedence.go). It turns the flat token sequence produced by the lexer
into a Program AST.

The parser does not recover from errors: on the first missing or
unexpected construct it returns a *ParseError citing the expected
construct and the source line of the most recently consumed token,
exactly as spec.md §4.2 specifies. This mirrors the reference parser's
own behaviour (error_expected() prints and exits immediately) rather
than the teacher interpreter's error-collecting style, since spec.md's
contract calls for fail-fast, not best-effort recovery.

All AST nodes are allocated from a shared arena (see package arena)
whose lifetime spans parsing and the generation pass that follows it.
*/
package parser

import (
	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/lexer"
)

// Parser holds the token stream and current position, plus the arena
// backing every AST node it allocates.
type Parser struct {
	tokens []lexer.Token
	pos    int
	arena  *arena.Arena
}

// NewParser creates a Parser over tokens, allocating AST nodes from a.
func NewParser(tokens []lexer.Token, a *arena.Arena) *Parser {
	return &Parser{tokens: tokens, arena: a}
}

// Parse consumes the whole token stream and returns the resulting
// Program, or the first ParseError encountered.
func (p *Parser) Parse() (*Program, error) {
	prog, err := arena.Alloc[Program](p.arena)
	if err != nil {
		return nil, err
	}
	for !p.atEnd() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek looks ahead `offset` tokens without consuming, returning ok=false
// past the end of the stream.
func (p *Parser) peek(offset int) (lexer.Token, bool) {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[i], true
}

// peekIs reports whether the token `offset` ahead has the given type.
func (p *Parser) peekIs(offset int, typ lexer.TokenType) bool {
	tok, ok := p.peek(offset)
	return ok && tok.Type == typ
}

// consume returns the current token and advances past it.
func (p *Parser) consume() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// lastLine is the source line to blame when the next construct is
// missing — the line of the most recently consumed token, or the first
// token's line if nothing has been consumed yet (1 for an empty stream).
func (p *Parser) lastLine() int {
	if p.pos == 0 {
		if len(p.tokens) > 0 {
			return p.tokens[0].Line
		}
		return 1
	}
	return p.tokens[p.pos-1].Line
}

// expect consumes the current token if it has the given type, or fails
// with a ParseError citing lastLine().
func (p *Parser) expect(typ lexer.TokenType) (lexer.Token, error) {
	if p.peekIs(0, typ) {
		return p.consume(), nil
	}
	return lexer.Token{}, &ParseError{Expected: lexer.Describe(typ), Line: p.lastLine()}
}

// errExpected builds a ParseError for a named construct (e.g. "an
// expression" or "a scope") rather than a single token type.
func (p *Parser) errExpected(what string) error {
	return &ParseError{Expected: what, Line: p.lastLine()}
}
