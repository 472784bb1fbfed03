/*
File   : langfront/lexer/charclass.go
Package: lexer

Small ASCII classification helpers, split into their own file the way the
teacher separates them into lexer/lexer_utils.go. The core covers only
ASCII identifier classes (spec §1 Non-goals: "UTF-8 aware identifier
classes beyond ASCII" is explicitly out of scope), so these are plain byte
comparisons rather than unicode.IsLetter/IsDigit — a deliberate narrowing
from the teacher's rune-based isAlpha/isNumeric.
*/
package lexer

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
