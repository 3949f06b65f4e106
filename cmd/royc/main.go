/*
File    : royc/cmd/royc/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the RoyC compiler. It provides three
modes of operation:
 1. File mode (default): compile the given source file to a native
    executable, invoking an external assembler and linker.
 2. REPL mode (`royc repl`): an interactive shell that emits assembly
    one statement at a time.
 3. Serve mode (`royc serve <addr>`): run the REPL over TCP, one session
    per connection.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/royc/driver"
	"github.com/akashmaji946/royc/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENCE = "MIT"
	PROMPT  = "royc >>> "
)

var BANNER = `
  ▄▄▄▄▄   ▄▄▄▄▄  ▄   ▄  ▄▄▄▄▄
  ▀▄  ▄▀  ▄▀  ▄▀ ▀▄ ▄▀ ▄▀
    ▀▀   ▀     ▀   ▀▀   ▀▀▀▀▄
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches on argv[1]:
//
//	royc [-o out] <path>   compile <path> to a native executable
//	royc -S <path>         compile to assembly only (<path> minus ext + .s)
//	royc repl              start the interactive shell on stdin/stdout
//	royc serve <addr>      start the interactive shell over TCP
//	royc --help / -h       usage
//	royc --version / -v    version banner
func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
		return
	case "--version", "-v":
		showVersion()
		return
	case "repl":
		repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT).Start(os.Stdin, os.Stdout)
		return
	case "serve":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing address for serve mode. Usage: royc serve <addr>\n")
			os.Exit(1)
		}
		serve(os.Args[2])
		return
	}

	path, opts := parseCompileArgs(os.Args[1:])
	runCompile(path, opts)
}

// parseCompileArgs hand-parses the small flag set accepted ahead of the
// positional source path: `-S` stops after emitting assembly, `-o` sets
// the output executable's path, `-keep` leaves intermediate `.s`/`.o`
// files on disk. There is deliberately no flag-parsing dependency here:
// the flag set is three entries wide and the arguments are otherwise
// purely positional, per spec.md §6.
func parseCompileArgs(args []string) (string, driver.Options) {
	var opts driver.Options
	var path string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-S":
			opts.EmitAssemblyOnly = true
		case "-keep":
			opts.KeepIntermediates = true
		case "-o":
			i++
			if i >= len(args) {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] -o requires a path\n")
				os.Exit(1)
			}
			opts.OutputPath = args[i]
		default:
			path = args[i]
		}
	}

	if path == "" {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing source file\n")
		os.Exit(1)
	}
	return path, opts
}

// runCompile drives the pipeline for file mode and reports the first
// lex/parse/codegen/IO failure as a non-zero exit, per spec.md §6.
func runCompile(path string, opts driver.Options) {
	result, err := driver.Compile(path, opts)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	if opts.EmitAssemblyOnly {
		cyanColor.Printf("wrote %s\n", result.AssemblyPath)
		return
	}
	cyanColor.Printf("wrote %s\n", result.OutputPath)
}

// serve listens on addr and hands each accepted connection its own REPL
// session, the network analogue of `royc repl`.
func serve(addr string) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("royc compile server listening on %s\n", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT).Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

func showHelp() {
	cyanColor.Println("royc - the RoyC compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  royc [-o out] <path>     Compile a .royc file to a native executable")
	cyanColor.Println("  royc -S <path>           Emit assembly only, skip the assembler/linker")
	cyanColor.Println("  royc -keep <path>        Keep intermediate .s/.o files")
	cyanColor.Println("  royc repl                Start the interactive shell")
	cyanColor.Println("  royc serve <addr>        Start the interactive shell over TCP")
	cyanColor.Println("  royc --help              Display this help message")
	cyanColor.Println("  royc --version           Display version information")
}

func showVersion() {
	cyanColor.Printf("royc %s (%s), %s\n", VERSION, LICENCE, AUTHOR)
}
