/*
File    : royc/codegen/generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package codegen walks a parsed Program exactly once and emits NASM-style
// x86-64 assembly text that, once assembled and linked, exits the process
// with the value of each `exit(E);` statement encountered.
//
// Correctness here rests entirely on one invariant: stack_size must
// always equal the number of 8-byte slots actually live on the machine
// stack. push, pop and pushOperand, plus exitScope's batched teardown,
// are the only places that invariant is allowed to move, and every other
// emission goes through them.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/royc/parser"
)

// Generator owns the growing assembly text and the compile-time state
// (variable table, scope stack, label counter) needed to emit it. It
// borrows the AST read-only; it never mutates a node.
type Generator struct {
	output       strings.Builder
	stackSize    int
	vars         []variable
	scopes       []int
	labelCounter int
}

// New returns a Generator ready to walk a Program.
func New() *Generator {
	return &Generator{}
}

// Generate walks prog once and returns the complete assembly text, or
// the first CodegenError encountered. The emitted program begins with
// `global _start` / `_start:` and ends with a default `exit(0)` in case
// control falls off the end of main without an explicit exit.
func (g *Generator) Generate(prog *parser.Program) (string, error) {
	g.output.WriteString("global _start\n")
	g.output.WriteString("_start:\n")

	for _, stmt := range prog.Stmts {
		if err := g.genStmt(stmt); err != nil {
			return "", err
		}
	}

	g.output.WriteString("    mov rax, 60\n")
	g.output.WriteString("    xor rdi, rdi\n")
	g.output.WriteString("    syscall\n")

	return g.output.String(), nil
}

// GenStmt generates a single statement against the generator's current
// state, without the surrounding `_start`/exit-syscall preamble Generate
// adds. It is exported for callers — such as the interactive REPL —
// that build up a session's assembly one statement at a time rather
// than compiling a whole Program in one call.
func (g *Generator) GenStmt(stmt parser.Stmt) error {
	return g.genStmt(stmt)
}

// Emitted returns everything written to the output buffer so far.
func (g *Generator) Emitted() string {
	return g.output.String()
}

// StackSize returns the generator's current logical operand stack size.
func (g *Generator) StackSize() int {
	return g.stackSize
}

// emitf writes a formatted instruction line to the output buffer. It
// never touches stack_size; only push/pop/pushOperand and exitScope's
// batched teardown do that.
func (g *Generator) emitf(format string, args ...any) {
	fmt.Fprintf(&g.output, format, args...)
}

// push emits `push reg` and records the slot it occupies.
func (g *Generator) push(reg string) {
	g.emitf("    push %s\n", reg)
	g.stackSize++
}

// pop emits `pop reg` and releases the slot it occupied.
func (g *Generator) pop(reg string) {
	g.emitf("    pop %s\n", reg)
	g.stackSize--
}

// pushOperand emits `push operand` for a bare memory operand (as opposed
// to a named register) and records the slot it occupies, so it obeys
// the same stack_size bookkeeping as push.
func (g *Generator) pushOperand(operand string) {
	g.emitf("    push %s\n", operand)
	g.stackSize++
}

// newLabel mints a fresh `labelN` and advances the counter.
func (g *Generator) newLabel() string {
	label := "label" + strconv.Itoa(g.labelCounter)
	g.labelCounter++
	return label
}
