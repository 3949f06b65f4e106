/*
File: royc/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter (a-z, A-Z). RoyC
// identifiers must begin with a letter — no leading underscore, unlike
// the teacher language.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlphanumeric reports whether c may appear after the first character
// of an identifier (a letter or a digit).
func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isWhitespace reports whether c is a space, tab, newline, carriage
// return, vertical tab, or form feed. Does not
// rely on unicode.IsSpace since the source is scanned byte by byte and
// only ASCII whitespace is meaningful to RoyC.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
