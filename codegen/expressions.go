/*
File    : royc/codegen/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"fmt"

	"github.com/akashmaji946/royc/lexer"
	"github.com/akashmaji946/royc/parser"
)

// genExpr dispatches on the dynamic type of expr. Every branch leaves
// exactly one value on top of the machine stack — a net push of one
// slot — regardless of how many intermediate pushes/pops it performs
// internally.
func (g *Generator) genExpr(expr parser.Expr) error {
	switch e := expr.(type) {
	case *parser.IntLitExpr:
		return g.genIntLit(e)
	case *parser.IdentExpr:
		return g.genIdent(e)
	case *parser.ParenExpr:
		return g.genExpr(e.Inner)
	case *parser.BinExpr:
		return g.genBinExpr(e)
	default:
		return &CodegenError{Message: "unhandled expression node"}
	}
}

// genIntLit loads the literal into rax and pushes it.
func (g *Generator) genIntLit(e *parser.IntLitExpr) error {
	g.emitf("    mov rax, %s\n", e.Token.Value)
	g.push("rax")
	return nil
}

// genIdent resolves the identifier against the variable table (most
// recent declaration wins) and pushes a copy of its current value read
// straight off its permanent stack slot.
func (g *Generator) genIdent(e *parser.IdentExpr) error {
	slot, ok := g.resolve(e.Token.Value)
	if !ok {
		return errUndeclared(e.Token.Value)
	}
	offset := g.offsetOf(slot)
	g.pushOperand(fmt.Sprintf("QWORD [rsp + %d]", offset))
	return nil
}

// genBinExpr generates the right-hand side first, then the left, so
// that popping afterwards yields lhs into rax before rhs into rbx. This
// order is deliberate (it matches the reference's pop order), not an
// oversight.
func (g *Generator) genBinExpr(e *parser.BinExpr) error {
	if err := g.genExpr(e.Right); err != nil {
		return err
	}
	if err := g.genExpr(e.Left); err != nil {
		return err
	}

	g.pop("rax")
	g.pop("rbx")

	switch e.Op {
	case lexer.Plus:
		g.emitf("    add rax, rbx\n")
	case lexer.Minus:
		g.emitf("    sub rax, rbx\n")
	case lexer.Star:
		g.emitf("    mul rbx\n")
	case lexer.FSlash:
		g.emitf("    xor rdx, rdx\n")
		g.emitf("    div rbx\n")
	default:
		return &CodegenError{Message: "unknown binary operator"}
	}

	g.push("rax")
	return nil
}
