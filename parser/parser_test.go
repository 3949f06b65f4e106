/*
File    : royc/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/lexer"
)

func parseSrc(t *testing.T, src string) *Program {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	prog, err := NewParser(tokens, arena.New(arena.MinCapacity)).Parse()
	require.NoError(t, err)
	return prog
}

func parseSrcErr(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	_, err = NewParser(tokens, arena.New(arena.MinCapacity)).Parse()
	return err
}

func TestParse_ExitLiteral(t *testing.T) {
	prog := parseSrc(t, "exit(0);")
	require.Len(t, prog.Stmts, 1)
	exitStmt, ok := prog.Stmts[0].(*ExitStmt)
	require.True(t, ok)
	lit, ok := exitStmt.Value.(*IntLitExpr)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Token.Value)
}

func TestParse_LetThenExitIdent(t *testing.T) {
	prog := parseSrc(t, "let x = 5; exit(x);")
	require.Len(t, prog.Stmts, 2)

	let, ok := prog.Stmts[0].(*LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Ident.Value)
	lit, ok := let.Value.(*IntLitExpr)
	require.True(t, ok)
	assert.Equal(t, "5", lit.Token.Value)

	exitStmt, ok := prog.Stmts[1].(*ExitStmt)
	require.True(t, ok)
	ident, ok := exitStmt.Value.(*IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "x", ident.Token.Value)
}

func TestParse_Assignment(t *testing.T) {
	prog := parseSrc(t, "let x = 1; x = 2; exit(x);")
	require.Len(t, prog.Stmts, 3)
	assign, ok := prog.Stmts[1].(*AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Ident.Value)
}

func TestParse_PrecedenceMulBindsTighterThanAdd(t *testing.T) {
	prog := parseSrc(t, "exit(1 + 2 * 3);")
	exitStmt := prog.Stmts[0].(*ExitStmt)
	bin, ok := exitStmt.Value.(*BinExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, bin.Op)
	assert.Equal(t, "1", bin.Left.(*IntLitExpr).Token.Value)
	rhs, ok := bin.Right.(*BinExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Star, rhs.Op)
}

func TestParse_LeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3, not 1 - (2 - 3).
	prog := parseSrc(t, "exit(1 - 2 - 3);")
	exitStmt := prog.Stmts[0].(*ExitStmt)
	outer, ok := exitStmt.Value.(*BinExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Minus, outer.Op)
	_, rightIsBin := outer.Right.(*BinExpr)
	assert.False(t, rightIsBin, "rhs of left-associative chain must be a leaf, not another BinExpr")
	inner, ok := outer.Left.(*BinExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Minus, inner.Op)
}

func TestParse_ParenthesesOverridePrecedence(t *testing.T) {
	prog := parseSrc(t, "exit((1 + 2) * 3);")
	exitStmt := prog.Stmts[0].(*ExitStmt)
	bin, ok := exitStmt.Value.(*BinExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Star, bin.Op)
	paren, ok := bin.Left.(*ParenExpr)
	require.True(t, ok)
	inner, ok := paren.Inner.(*BinExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, inner.Op)
}

func TestParse_Scope(t *testing.T) {
	prog := parseSrc(t, "{ let x = 1; exit(x); }")
	require.Len(t, prog.Stmts, 1)
	scope, ok := prog.Stmts[0].(*ScopeStmt)
	require.True(t, ok)
	assert.Len(t, scope.Stmts, 2)
}

func TestParse_IfNoTail(t *testing.T) {
	prog := parseSrc(t, "if (1) { exit(1); }")
	ifStmt, ok := prog.Stmts[0].(*IfStmt)
	require.True(t, ok)
	assert.Nil(t, ifStmt.Tail)
}

func TestParse_IfElifElseChain(t *testing.T) {
	prog := parseSrc(t, "if (1) { exit(1); } elif (2) { exit(2); } else { exit(3); }")
	ifStmt, ok := prog.Stmts[0].(*IfStmt)
	require.True(t, ok)
	elif, ok := ifStmt.Tail.(*ElifClause)
	require.True(t, ok)
	lit := elif.Cond.(*IntLitExpr)
	assert.Equal(t, "2", lit.Token.Value)
	elseClause, ok := elif.Next.(*ElseClause)
	require.True(t, ok)
	require.Len(t, elseClause.Body.Stmts, 1)
}

func TestParse_MissingSemicolonIsParseError(t *testing.T) {
	err := parseSrcErr(t, "exit(1)")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Expected, ";")
}

func TestParse_MissingClosingParenIsParseError(t *testing.T) {
	err := parseSrcErr(t, "exit(1;")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Expected, ")")
}

func TestParse_UnrecognisedStatementStartIsParseError(t *testing.T) {
	err := parseSrcErr(t, "+ 1;")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "a statement", parseErr.Expected)
}

func TestLiteral_RoundTripsParenthesisation(t *testing.T) {
	prog := parseSrc(t, "exit((1 + 2) * 3);")
	exitStmt := prog.Stmts[0].(*ExitStmt)
	assert.Equal(t, "exit((((1 + 2)) * 3))", exitStmt.Literal())
}
