/*
File    : royc/codegen/generator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/lexer"
	"github.com/akashmaji946/royc/parser"
)

func generate(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	prog, err := parser.NewParser(tokens, arena.New(arena.MinCapacity)).Parse()
	require.NoError(t, err)
	return New().Generate(prog)
}

func TestGenerate_ExitLiteralEmitsEntryPointAndSyscall(t *testing.T) {
	asm, err := generate(t, "exit(0);")
	require.NoError(t, err)
	assert.Contains(t, asm, "global _start")
	assert.Contains(t, asm, "_start:")
	assert.Contains(t, asm, "mov rax, 0")
	assert.Contains(t, asm, "mov rax, 60")
	assert.Contains(t, asm, "syscall")
}

func TestGenerate_ArithmeticPrecedence(t *testing.T) {
	asm, err := generate(t, "exit(2 + 3 * 4);")
	require.NoError(t, err)
	assert.Contains(t, asm, "mul rbx")
	assert.Contains(t, asm, "add rax, rbx")
}

func TestGenerate_DivisionClearsRdxFirst(t *testing.T) {
	asm, err := generate(t, "exit(10 / 2);")
	require.NoError(t, err)
	assert.Contains(t, asm, "xor rdx, rdx")
	assert.Contains(t, asm, "div rbx")
}

func TestGenerate_LetThenIdentReadsStackSlot(t *testing.T) {
	asm, err := generate(t, "let x = 10; exit(x);")
	require.NoError(t, err)
	assert.Contains(t, asm, "push QWORD [rsp + 0]")
}

func TestGenerate_ScopeShadowingBatchTeardown(t *testing.T) {
	asm, err := generate(t, "let x = 1; { let x = 7; } exit(x);")
	require.NoError(t, err)
	assert.Contains(t, asm, "add rsp, 8")
}

func TestGenerate_IfElseEmitsTwoLabelsAndJumps(t *testing.T) {
	asm, err := generate(t, "let a = 0; if (1) { a = 9; } else { a = 3; } exit(a);")
	require.NoError(t, err)
	assert.Contains(t, asm, "test rax, rax")
	assert.Contains(t, asm, "jz label")
	assert.Contains(t, asm, "jmp label")
}

func TestGenerate_IfElifElseChains(t *testing.T) {
	asm, err := generate(t, "let a = 0; if (0) { a = 1; } elif (0) { a = 2; } else { a = 3; } exit(a);")
	require.NoError(t, err)
	// Two condition chains (If and Elif) each mint their own pair of labels.
	assert.GreaterOrEqual(t, countOccurrences(asm, "test rax, rax"), 2)
}

func TestGenerate_UndeclaredIdentifierIsCodegenError(t *testing.T) {
	_, err := generate(t, "exit(x);")
	require.Error(t, err)
	var codegenErr *CodegenError
	require.ErrorAs(t, err, &codegenErr)
	assert.Equal(t, "x", codegenErr.Ident)
}

func TestGenerate_DuplicateLetInSameScopeIsCodegenError(t *testing.T) {
	_, err := generate(t, "let x = 1; let x = 2;")
	require.Error(t, err)
	var codegenErr *CodegenError
	require.ErrorAs(t, err, &codegenErr)
	assert.Equal(t, "x", codegenErr.Ident)
}

func TestGenerate_StackSizeMatchesLiveVariableCount(t *testing.T) {
	tokens, err := lexer.Tokenize("let x = 1; let y = 2;")
	require.NoError(t, err)
	prog, err := parser.NewParser(tokens, arena.New(arena.MinCapacity)).Parse()
	require.NoError(t, err)

	g := New()
	for _, stmt := range prog.Stmts {
		require.NoError(t, g.genStmt(stmt))
	}
	assert.Equal(t, len(g.vars), g.stackSize)
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
		}
	}
	return count
}
