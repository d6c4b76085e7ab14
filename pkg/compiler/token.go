package compiler

import (
	"fmt"
	"strconv"

	"genesis/pkg/intern"
)

// TokenType identifies the category of a lexed token.
//
// Single-character tokens use the byte itself as their type, so '+' lexes to
// TokenType('+'). Byte 0 is the stream terminator and doubles as EOF.
type TokenType uint16

const (
	EOF      TokenType = 0   // sentinel: terminator byte or end of input
	LastChar TokenType = 255 // highest single-character type
)

const (
	INTEGER    TokenType = LastChar + 1 + iota // decimal integer literal
	IDENTIFIER                                 // letters, digits and '_', not starting with a digit
)

// IsChar reports whether tt is a single-character token type.
func (tt TokenType) IsChar() bool {
	return tt > EOF && tt <= LastChar
}

func (tt TokenType) String() string {
	switch {
	case tt == EOF:
		return "EOF"
	case tt == INTEGER:
		return "INTEGER"
	case tt == IDENTIFIER:
		return "IDENTIFIER"
	case tt.IsChar():
		return quoteByte(byte(tt))
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7f && b != '\'' && b != '\\' {
		return fmt.Sprintf("'%c'", b)
	}
	switch b {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\r':
		return `'\r'`
	}
	return fmt.Sprintf(`'\x%02x'`, b)
}

// Token is a single lexical unit produced by the Lexer.
// Start and End are byte offsets into the source, End exclusive.
type Token struct {
	Type  TokenType
	Start int
	End   int
	Line  int // 1-based source line of Start

	Value uint64        // INTEGER only
	Name  intern.Handle // IDENTIFIER only
}

// Char returns the byte of a single-character token, or 0 for any other type.
func (t Token) Char() byte {
	if !t.Type.IsChar() {
		return 0
	}
	return byte(t.Type)
}

// Len returns the number of source bytes the token covers.
func (t Token) Len() int {
	return t.End - t.Start
}

func (t Token) String() string {
	switch t.Type {
	case INTEGER:
		return fmt.Sprintf("%-10s %-14d  [%d,%d) line %d", t.Type, t.Value, t.Start, t.End, t.Line)
	case IDENTIFIER:
		return fmt.Sprintf("%-10s #%-13d  [%d,%d) line %d", t.Type, t.Name, t.Start, t.End, t.Line)
	}
	return fmt.Sprintf("%-10s %-14s  [%d,%d) line %d", t.Type, "", t.Start, t.End, t.Line)
}

// Lexeme renders the source text a token stands for: the decimal value of an
// INTEGER, the interned name of an IDENTIFIER, the quoted byte otherwise.
func Lexeme(t Token, names *intern.Interner) string {
	switch t.Type {
	case INTEGER:
		return strconv.FormatUint(t.Value, 10)
	case IDENTIFIER:
		return names.String(t.Name)
	}
	return t.Type.String()
}
