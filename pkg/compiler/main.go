// Package compiler provides the lexical front-end: a byte-stream Lexer that
// produces typed tokens and canonicalizes identifiers through an
// intern.Interner.
//
// Pipeline: source bytes → Lexer.Next (one token per call) → Tokenize collects
// them into a buffer.Buffer[Token] ending with EOF.
package compiler
