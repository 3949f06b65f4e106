/*
File    : royc/driver/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package driver is the external collaborator spec.md's core explicitly
excludes from its own responsibility: reading the source file, running
the tokenizer/parser/generator pipeline over it, writing the resulting
assembly to disk, and — unless asked to stop at assembly — invoking an
external NASM-compatible assembler and linker to produce a native
executable. This mirrors original_source/main.cpp's own drive: read,
tokenize, parse, generate, write `out.asm`, shell out to `nasm`, shell
out to `ld`.
*/
package driver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/codegen"
	"github.com/akashmaji946/royc/lexer"
	"github.com/akashmaji946/royc/parser"
)

// IoError wraps a failure to read the source file or write an
// intermediate/output artifact — the one error kind spec.md §7 assigns
// to the driver rather than the core.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("[IO Error] %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// Options configures how far Compile carries a source file.
type Options struct {
	// OutputPath is the path of the final linked executable. Defaults to
	// the source file's base name with its extension stripped.
	OutputPath string
	// EmitAssemblyOnly stops after writing the `.s` file, skipping the
	// external assembler and linker (the `-S` driver flag).
	EmitAssemblyOnly bool
	// KeepIntermediates leaves the generated `.s`/`.o` files on disk
	// instead of removing them once the executable is linked.
	KeepIntermediates bool
}

// Result reports what Compile produced.
type Result struct {
	AssemblyPath string // always set
	ObjectPath   string // set unless EmitAssemblyOnly
	OutputPath   string // set unless EmitAssemblyOnly
	Assembly     string // the generated assembly text
}

// Compile runs the whole pipeline over the source file at path: read,
// tokenize, parse, generate, write assembly, and (unless
// opts.EmitAssemblyOnly) assemble and link. It returns the first
// LexError, ParseError, CodegenError, or IoError encountered.
func Compile(path string, opts Options) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}

	tokens, err := lexer.Tokenize(string(src))
	if err != nil {
		return nil, err
	}

	a := arena.New(arena.MinCapacity)
	prog, err := parser.NewParser(tokens, a).Parse()
	if err != nil {
		return nil, err
	}

	asm, err := codegen.New().Generate(prog)
	a.Reset()
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := filepath.Dir(path)
	asmPath := filepath.Join(dir, base+".s")

	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		return nil, &IoError{Path: asmPath, Err: err}
	}

	result := &Result{AssemblyPath: asmPath, Assembly: asm}
	if opts.EmitAssemblyOnly {
		return result, nil
	}

	objPath := filepath.Join(dir, base+".o")
	if err := assemble(asmPath, objPath); err != nil {
		return nil, err
	}
	result.ObjectPath = objPath

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = filepath.Join(dir, base)
	}
	if err := link(objPath, outPath); err != nil {
		return nil, err
	}
	result.OutputPath = outPath

	if !opts.KeepIntermediates {
		os.Remove(asmPath)
		os.Remove(objPath)
	}

	return result, nil
}

// assemble shells out to a NASM-compatible assembler to turn asmPath
// into an ELF64 object file at objPath.
func assemble(asmPath, objPath string) error {
	cmd := exec.Command("nasm", "-felf64", asmPath, "-o", objPath)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &IoError{Path: asmPath, Err: fmt.Errorf("nasm: %w", err)}
	}
	return nil
}

// link shells out to the system linker to turn objPath into a native
// executable at outPath.
func link(objPath, outPath string) error {
	cmd := exec.Command("ld", objPath, "-o", outPath)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &IoError{Path: objPath, Err: fmt.Errorf("ld: %w", err)}
	}
	return nil
}
