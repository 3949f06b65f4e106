/*
File    : royc/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/royc/lexer"

// Node is the base interface implemented by every AST node. Literal
// renders a short, debuggable form of the node — useful in tests and in
// the `royc repl` diagnostic output, not part of code generation proper.
type Node interface {
	Literal() string
}

// Stmt is the sealed interface implemented by the five statement kinds
// named in spec.md §3.2: Exit, Let, Assign, Scope, and If. The unexported
// stmtNode method seals the set so the compiler rejects any Stmt
// implementation declared outside this package — the closest Go comes to
// the reference's closed std::variant.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the sealed interface implemented by every expression node:
// the three Term kinds (IntLit, Ident, Paren) and the four BinExpr kinds
// (Add, Sub, Mul, Div).
type Expr interface {
	Node
	exprNode()
}

// IfTail is the sealed interface implemented by the optional continuation
// of an if statement — either an Elif (which may itself chain into a
// further tail) or a terminal Else.
type IfTail interface {
	Node
	ifTailNode()
}

// Program is the root of the AST: a flat sequence of top-level
// statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Literal() string { return "<program>" }

// ExitStmt is `exit(Expr);`.
type ExitStmt struct {
	Value Expr
}

func (s *ExitStmt) Literal() string { return "exit(" + s.Value.Literal() + ")" }
func (*ExitStmt) stmtNode()         {}

// LetStmt is `let ident = Expr;`, introducing a new variable in the
// current (innermost) scope.
type LetStmt struct {
	Ident lexer.Token
	Value Expr
}

func (s *LetStmt) Literal() string { return "let " + s.Ident.Value + " = " + s.Value.Literal() }
func (*LetStmt) stmtNode()         {}

// AssignStmt is `ident = Expr;`, rebinding an already-declared variable.
type AssignStmt struct {
	Ident lexer.Token
	Value Expr
}

func (s *AssignStmt) Literal() string { return s.Ident.Value + " = " + s.Value.Literal() }
func (*AssignStmt) stmtNode()         {}

// ScopeStmt is `{ Stmt* }`, a lexical scope whose locally declared
// variables are reclaimed when the block exits.
type ScopeStmt struct {
	Stmts []Stmt
}

func (s *ScopeStmt) Literal() string { return "{ ... }" }
func (*ScopeStmt) stmtNode()         {}

// IfStmt is `if (Expr) Scope [IfTail]`.
type IfStmt struct {
	Cond  Expr
	Body  *ScopeStmt
	Tail  IfTail // nil if there is no elif/else chain
}

func (s *IfStmt) Literal() string { return "if (" + s.Cond.Literal() + ") { ... }" }
func (*IfStmt) stmtNode()         {}

// ElifClause is `elif (Expr) Scope [IfTail]`; it may itself chain into a
// further elif or a terminating else.
type ElifClause struct {
	Cond Expr
	Body *ScopeStmt
	Next IfTail // nil if this elif terminates the chain
}

func (c *ElifClause) Literal() string { return "elif (" + c.Cond.Literal() + ") { ... }" }
func (*ElifClause) ifTailNode()       {}

// ElseClause is `else Scope`, the unconditional tail of an if chain.
type ElseClause struct {
	Body *ScopeStmt
}

func (c *ElseClause) Literal() string { return "else { ... }" }
func (*ElseClause) ifTailNode()       {}

// IntLitExpr is an integer literal term.
type IntLitExpr struct {
	Token lexer.Token // Value holds the decimal-digit string
}

func (e *IntLitExpr) Literal() string { return e.Token.Value }
func (*IntLitExpr) exprNode()         {}

// IdentExpr is an identifier term referring to a previously declared
// variable; resolution happens in the generator, not here.
type IdentExpr struct {
	Token lexer.Token
}

func (e *IdentExpr) Literal() string { return e.Token.Value }
func (*IdentExpr) exprNode()         {}

// ParenExpr is a parenthesised sub-expression, `(Expr)`. It exists purely
// to let the source express grouping; it carries no precedence of its
// own, since the Pratt parser already resolved the grouping before
// wrapping it.
type ParenExpr struct {
	Inner Expr
}

func (e *ParenExpr) Literal() string { return "(" + e.Inner.Literal() + ")" }
func (*ParenExpr) exprNode()         {}

// BinExpr is a binary arithmetic expression; Op is one of Plus, Minus,
// Star, FSlash (the same token types used to distinguish the four
// BinExpr variants named in spec.md §3.2).
type BinExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func (e *BinExpr) Literal() string {
	return "(" + e.Left.Literal() + " " + string(e.Op) + " " + e.Right.Literal() + ")"
}
func (*BinExpr) exprNode() {}
