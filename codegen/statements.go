/*
File    : royc/codegen/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import "github.com/akashmaji946/royc/parser"

// genStmt dispatches on the dynamic type of stmt. On entry and exit from
// every statement, stack_size equals the length of the variable table:
// each live variable occupies exactly one slot and no expression leaves
// residue behind.
func (g *Generator) genStmt(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExitStmt:
		return g.genExitStmt(s)
	case *parser.LetStmt:
		return g.genLetStmt(s)
	case *parser.AssignStmt:
		return g.genAssignStmt(s)
	case *parser.ScopeStmt:
		return g.genScopeStmt(s)
	case *parser.IfStmt:
		return g.genIfStmt(s)
	default:
		return &CodegenError{Message: "unhandled statement node"}
	}
}

// genExitStmt generates the exit value, pops it into rdi, and emits the
// Linux x86-64 exit syscall (rax=60).
func (g *Generator) genExitStmt(s *parser.ExitStmt) error {
	if err := g.genExpr(s.Value); err != nil {
		return err
	}
	g.pop("rdi")
	g.emitf("    mov rax, 60\n")
	g.emitf("    syscall\n")
	return nil
}

// genLetStmt declares the new name at the current stack_size before
// generating its initialiser, so the initialiser's push lands in
// exactly the slot just recorded.
func (g *Generator) genLetStmt(s *parser.LetStmt) error {
	if err := g.declareLocal(s.Ident.Value); err != nil {
		return err
	}
	return g.genExpr(s.Value)
}

// genAssignStmt resolves the target, generates the new value, and
// overwrites the variable's permanent slot in place. The offset is
// computed after the pop, since stack_size has already dropped by the
// time the write happens.
func (g *Generator) genAssignStmt(s *parser.AssignStmt) error {
	slot, ok := g.resolve(s.Ident.Value)
	if !ok {
		return errUndeclared(s.Ident.Value)
	}
	if err := g.genExpr(s.Value); err != nil {
		return err
	}
	g.pop("rax")
	offset := g.offsetOf(slot)
	g.emitf("    mov [rsp + %d], rax\n", offset)
	return nil
}

// genScopeStmt enters a new scope frame, generates every inner
// statement in order, then reclaims the frame's locals with one batched
// `add rsp, N*8` rather than a pop per variable.
func (g *Generator) genScopeStmt(s *parser.ScopeStmt) error {
	g.enterScope()
	for _, inner := range s.Stmts {
		if err := g.genStmt(inner); err != nil {
			return err
		}
	}
	g.exitScope()
	return nil
}

// genIfStmt and genCondChain implement the if/elif/else state machine of
// spec §4.3.4: Start -> AfterCond -> AfterBranch -> (HasTail | End).
// Every level — the initial If and each chained Elif — mints its own
// pair of labels and has the identical two-branch shape; only Else
// breaks the pattern by running unconditionally.
func (g *Generator) genIfStmt(s *parser.IfStmt) error {
	return g.genCondChain(s.Cond, s.Body, s.Tail)
}

func (g *Generator) genCondChain(cond parser.Expr, body *parser.ScopeStmt, tail parser.IfTail) error {
	lNext := g.newLabel()
	lEnd := g.newLabel()

	if err := g.genExpr(cond); err != nil {
		return err
	}
	g.pop("rax")
	g.emitf("    test rax, rax\n")
	g.emitf("    jz %s\n", lNext)

	if err := g.genScopeStmt(body); err != nil {
		return err
	}
	g.emitf("    jmp %s\n", lEnd)

	g.emitf("%s:\n", lNext)
	if tail != nil {
		if err := g.genIfTail(tail); err != nil {
			return err
		}
	}
	g.emitf("%s:\n", lEnd)
	return nil
}

// genIfTail generates an Elif (which recurses into another full
// genCondChain of its own) or an Else (which simply runs its scope).
func (g *Generator) genIfTail(tail parser.IfTail) error {
	switch t := tail.(type) {
	case *parser.ElifClause:
		return g.genCondChain(t.Cond, t.Body, t.Next)
	case *parser.ElseClause:
		return g.genScopeStmt(t.Body)
	default:
		return &CodegenError{Message: "unhandled if-tail node"}
	}
}
