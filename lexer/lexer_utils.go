/*
File   : langfront/lexer/lexer_utils.go
Package: lexer

Number, string, and identifier scanning, split from lexer.go the way the
teacher splits lexer/lexer_utils.go from lexer/lexer.go.
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/langfront/diagnostic"
	"github.com/akashmaji946/langfront/token"
)

// digitRun scans a maximal run of digits (valid for base) and underscore
// separators starting at the current byte, enforcing spec §4.1's
// placement rules: no leading underscore, no underscore immediately before
// the decimal point or at the end of the run, and — to cover the boundary
// example `1__0` — no two consecutive underscores. It returns the run's
// text with underscores stripped out and whether the run was well-formed.
// A run containing no digit at all is reported as not well-formed.
func (l *Lexer) digitRun(validDigit func(byte) bool) (text string, ok bool) {
	var b strings.Builder
	ok = true
	lastWasUnderscore := false
	sawDigit := false

	if l.ch == '_' {
		ok = false
	}

	for validDigit(l.ch) || l.ch == '_' {
		if l.ch == '_' {
			if lastWasUnderscore {
				ok = false
			}
			lastWasUnderscore = true
			l.readChar()
			continue
		}
		b.WriteByte(l.ch)
		sawDigit = true
		lastWasUnderscore = false
		l.readChar()
	}

	if lastWasUnderscore {
		ok = false
	}
	if !sawDigit {
		ok = false
	}
	return b.String(), ok
}

// readNumber dispatches to the decimal or radix-prefixed (0x/0b) scanner
// based on the two bytes at the cursor, per spec §4.1's numeric literal
// grammar.
func (l *Lexer) readNumber(start, line, col int) (token.Token, *diagnostic.Diagnostic) {
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		return l.readRadixNumber(start, line, col, 16, isHexDigit)
	}
	if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.readChar()
		l.readChar()
		return l.readRadixNumber(start, line, col, 2, isBinDigit)
	}
	return l.readDecimalNumber(start, line, col)
}

// readDecimalNumber scans `digits(.digits)?` in base 10 with underscore
// separators, deciding Int vs Float by the presence of the dot. Scientific
// notation (`e`/`E`) is not part of the grammar spec.md describes, so an
// alphabetic byte immediately following the digit run is flagged as
// InvalidNumberFormat rather than silently accepted or silently ignored.
func (l *Lexer) readDecimalNumber(start, line, col int) (token.Token, *diagnostic.Diagnostic) {
	intText, ok := l.digitRun(isDigit)
	malformed := !ok

	isFloat := false
	var fracText string
	if l.ch == '.' && (isDigit(l.peekChar()) || l.peekChar() == '_') {
		isFloat = true
		l.readChar() // consume '.'
		var fracOK bool
		fracText, fracOK = l.digitRun(isDigit)
		if !fracOK {
			malformed = true
		}
	}

	if isIdentStart(l.ch) {
		malformed = true
		for isIdentPart(l.ch) {
			l.readChar()
		}
	}

	span := token.Span{Start: start, End: l.pos, Line: line, Column: col}
	text := l.Src[start:l.pos]

	if malformed {
		return token.Token{Kind: token.ILLEGAL, Literal: text, Span: span},
			diagnostic.Newf(diagnostic.InvalidNumberFormat, line, col, "invalid number format %q", text)
	}

	if isFloat {
		fval := decimalFloatValue(intText, fracText)
		return token.Token{Kind: token.FLOAT, Literal: text, Span: span, FloatValue: fval}, nil
	}

	ival, err := strconv.ParseInt(intText, 10, 64)
	if err != nil {
		return token.Token{Kind: token.ILLEGAL, Literal: text, Span: span},
			diagnostic.Newf(diagnostic.InvalidNumberFormat, line, col, "integer literal %q out of range", text)
	}
	return token.Token{Kind: token.INT, Literal: text, Span: span, IntValue: ival}, nil
}

// readRadixNumber scans the digit run(s) following a `0x`/`0b` prefix
// already consumed by the caller, producing an Int or (if a fractional
// part follows the dot) a Float — e.g. `0xF.8` → Float(15.5), per spec
// §4.1's worked example.
func (l *Lexer) readRadixNumber(start, line, col, base int, validDigit func(byte) bool) (token.Token, *diagnostic.Diagnostic) {
	intText, ok := l.digitRun(validDigit)
	malformed := !ok

	isFloat := false
	var fracText string
	if l.ch == '.' && (validDigit(l.peekChar()) || l.peekChar() == '_') {
		isFloat = true
		l.readChar()
		var fracOK bool
		fracText, fracOK = l.digitRun(validDigit)
		if !fracOK {
			malformed = true
		}
	}

	if isIdentPart(l.ch) {
		malformed = true
		for isIdentPart(l.ch) {
			l.readChar()
		}
	}

	span := token.Span{Start: start, End: l.pos, Line: line, Column: col}
	text := l.Src[start:l.pos]

	if malformed || intText == "" {
		return token.Token{Kind: token.ILLEGAL, Literal: text, Span: span},
			diagnostic.Newf(diagnostic.InvalidNumberFormat, line, col, "invalid number format %q", text)
	}

	if isFloat {
		fval := radixFloatValue(intText, fracText, base)
		return token.Token{Kind: token.FLOAT, Literal: text, Span: span, FloatValue: fval}, nil
	}

	ival, err := strconv.ParseInt(intText, base, 64)
	if err != nil {
		return token.Token{Kind: token.ILLEGAL, Literal: text, Span: span},
			diagnostic.Newf(diagnostic.InvalidNumberFormat, line, col, "integer literal %q out of range", text)
	}
	return token.Token{Kind: token.INT, Literal: text, Span: span, IntValue: ival}, nil
}

// decimalFloatValue combines a base-10 integer part and fractional digit
// string (underscores already stripped) into a float64: it builds
// "intPart.fracPart" and parses that text with strconv.ParseFloat.
func decimalFloatValue(intText, fracText string) float64 {
	if intText == "" {
		intText = "0"
	}
	v, _ := strconv.ParseFloat(intText+"."+fracText, 64)
	return v
}

// radixFloatValue computes intPart + sum(digit_i * base^-(i+1)) for a
// non-decimal radix, since strconv.ParseFloat has no hex/binary fractional
// form that matches this grammar.
func radixFloatValue(intText, fracText string, base int) float64 {
	var whole float64
	if intText != "" {
		iv, _ := strconv.ParseInt(intText, base, 64)
		whole = float64(iv)
	}
	frac := 0.0
	scale := 1.0 / float64(base)
	for i := 0; i < len(fracText); i++ {
		frac += float64(digitValue(fracText[i])) * scale
		scale /= float64(base)
	}
	return whole + frac
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

// readString scans a quoted string literal, matching the opening quote
// (`"` or `'`) with its closing partner. Per spec §9's pinned decision, the
// returned Span includes both quote characters. A backslash is treated as
// an unconditional one-byte escape: whatever follows it is consumed
// verbatim without decoding, so `\"` never terminates the string early.
// Literal carries the raw text between the quotes (escapes un-decoded),
// matching spec §3's `String(raw)` — decoding is left to a later stage.
func (l *Lexer) readString(start, line, col int) (token.Token, *diagnostic.Diagnostic) {
	quote := l.ch
	l.readChar() // consume opening quote
	contentStart := l.pos

	for l.ch != quote {
		if l.ch == 0 {
			span := token.Span{Start: start, End: l.pos, Line: line, Column: col}
			return token.Token{Kind: token.ILLEGAL, Literal: l.Src[start:l.pos], Span: span},
				diagnostic.New(diagnostic.UnterminatedString, "unterminated string literal", line, col)
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				span := token.Span{Start: start, End: l.pos, Line: line, Column: col}
				return token.Token{Kind: token.ILLEGAL, Literal: l.Src[start:l.pos], Span: span},
					diagnostic.New(diagnostic.UnterminatedString, "unterminated string literal", line, col)
			}
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}

	content := l.Src[contentStart:l.pos]
	l.readChar() // consume closing quote

	span := token.Span{Start: start, End: l.pos, Line: line, Column: col}
	return token.Token{Kind: token.STRING, Literal: content, Span: span}, nil
}

// readIdentifier scans a maximal run of identifier bytes and classifies it
// as a keyword or a plain identifier via token.LookupIdent. A standalone
// `_1` (identifier starting with underscore followed by digits) is a valid
// Identifier here — the grammar in spec §4.1 explicitly allows `_` as an
// identifier-start byte; the boundary-behavior table's `_1` entry is read
// as describing digit-separator placement, not this production.
func (l *Lexer) readIdentifier(start, line, col int) (token.Token, *diagnostic.Diagnostic) {
	for isIdentPart(l.ch) {
		l.readChar()
	}
	text := l.Src[start:l.pos]
	span := token.Span{Start: start, End: l.pos, Line: line, Column: col}
	kind := token.LookupIdent(text)

	tok := token.Token{Kind: kind, Literal: text, Span: span}
	switch kind {
	case token.TRUE:
		tok.BoolValue = true
	case token.FALSE:
		tok.BoolValue = false
	}
	return tok, nil
}
