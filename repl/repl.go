/*
File    : royc/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive `royc repl`: each line of input is
tokenized, parsed, and run through the generator one statement at a time
against a session-long Generator, so variables declared on one line stay
live on the next. The REPL prints the assembly fragment each statement
emitted and the generator's running stack_size, rather than a value —
there is nothing to evaluate, only code to emit.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/royc/arena"
	"github.com/akashmaji946/royc/codegen"
	"github.com/akashmaji946/royc/lexer"
	"github.com/akashmaji946/royc/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: banner text plus the prompt string
// readline displays.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to the RoyC compiler shell!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter to see the assembly it emits")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until the user
// exits or EOF is reached. A single Generator and arena persist across
// the whole session so `let` bindings from one line resolve on the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	gen := codegen.New()
	a := arena.New(arena.MinCapacity)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, gen, a)
	}
}

// executeWithRecovery tokenizes, parses, and generates one line's worth
// of statements against the session's Generator, printing either the
// emitted assembly and running stack_size or the first error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, gen *codegen.Generator, a *arena.Arena) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tokens, err := lexer.Tokenize(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	prog, err := parser.NewParser(tokens, a).Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	before := len(gen.Emitted())
	for _, stmt := range prog.Stmts {
		if err := gen.GenStmt(stmt); err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
	}
	fragment := gen.Emitted()[before:]

	yellowColor.Fprintf(writer, "%s", fragment)
	cyanColor.Fprintf(writer, "; stack_size=%d\n", gen.StackSize())
}
