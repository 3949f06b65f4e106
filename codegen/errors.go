/*
File    : royc/codegen/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import "fmt"

// CodegenError reports a static failure the generator alone can detect:
// an identifier used before its `let`, or a `let` that redeclares a name
// already live in the innermost scope. Neither condition is visible to
// the parser, which never resolves names.
type CodegenError struct {
	Message string
	Ident   string
}

func (e *CodegenError) Error() string {
	if e.Ident != "" {
		return fmt.Sprintf("[Codegen Error] %s: %q", e.Message, e.Ident)
	}
	return fmt.Sprintf("[Codegen Error] %s", e.Message)
}

func errUndeclared(ident string) error {
	return &CodegenError{Message: "undeclared identifier", Ident: ident}
}

func errRedeclared(ident string) error {
	return &CodegenError{Message: "identifier already declared in this scope", Ident: ident}
}
