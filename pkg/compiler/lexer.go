package compiler

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/go-logr/logr"

	"genesis/pkg/intern"
)

// ErrIntegerOverflow is returned when a decimal literal does not fit in 64 bits.
var ErrIntegerOverflow = errors.New("integer literal overflows uint64")

// Option configures a Lexer.
type Option func(*options)

type options struct {
	skipSpace    bool
	wrapOverflow bool
	maxTokens    int
	log          logr.Logger
}

// WithSkipWhitespace makes the lexer discard ASCII whitespace between tokens.
// Without it every space, tab and newline is returned as its own token.
func WithSkipWhitespace() Option {
	return func(o *options) {
		o.skipSpace = true
	}
}

// WithWrapOverflow makes oversized integer literals wrap modulo 2^64 instead
// of failing with ErrIntegerOverflow.
func WithWrapOverflow() Option {
	return func(o *options) {
		o.wrapOverflow = true
	}
}

// WithMaxTokens limits how many tokens Tokenize collects. It has no effect on
// a Lexer driven by Next.
func WithMaxTokens(n int) Option {
	return func(o *options) {
		o.maxTokens = n
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Lexer holds all mutable state for a single scanning pass over src.
// The stream ends at the first 0 byte or at the end of src, whichever comes first.
type Lexer struct {
	src   []byte
	pos   int // index of the next byte to consume
	line  int // current 1-based source line
	tok   Token
	done  bool // EOF has been produced
	names *intern.Interner
	opts  options
	log   logr.Logger
}

// NewLexer starts a session over src. Identifiers are interned into names;
// a nil names gives the lexer a private Interner.
func NewLexer(src []byte, names *intern.Interner, opts ...Option) *Lexer {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if names == nil {
		names = intern.New(intern.WithLogger(o.log))
	}
	return &Lexer{
		src:   src,
		line:  1,
		names: names,
		opts:  o,
		log:   o.log.WithName("lexer"),
	}
}

// Reset starts a new session over src, keeping the interner and options.
func (l *Lexer) Reset(src []byte) {
	l.src = src
	l.pos = 0
	l.line = 1
	l.tok = Token{}
	l.done = false
}

// Interner returns the string table identifiers are interned into.
func (l *Lexer) Interner() *intern.Interner {
	return l.names
}

// Token returns the most recently produced token.
func (l *Lexer) Token() Token {
	return l.tok
}

// Pos returns the cursor: the offset of the next byte to be consumed.
func (l *Lexer) Pos() int {
	return l.pos
}

// Done reports whether EOF has been produced.
func (l *Lexer) Done() bool {
	return l.done
}

// Text returns the source bytes covered by tok.
func (l *Lexer) Text(tok Token) []byte {
	return l.src[tok.Start:tok.End]
}

// Name returns the interned text of an IDENTIFIER token.
func (l *Lexer) Name(tok Token) string {
	return l.names.String(tok.Name)
}

// peek returns the byte at the current position without advancing.
// Past the end of src it returns the terminator.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one byte and returns it.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.peek()) {
		l.advance()
	}
}

// scanInt consumes a maximal run of decimal digits.
// The first digit must still be at l.peek().
func (l *Lexer) scanInt() (uint64, error) {
	start := l.pos
	var value uint64
	overflow := false
	for isDigit(l.peek()) {
		d := uint64(l.advance() - '0')
		if value > (math.MaxUint64-d)/10 {
			overflow = true
		}
		value = value*10 + d
	}
	if overflow && !l.opts.wrapOverflow {
		return value, fmt.Errorf("literal %s at offset %d on line %d: %w", l.src[start:l.pos], start, l.line, ErrIntegerOverflow)
	}
	return value, nil
}

// scanIdent consumes a maximal run of letters, digits and '_' and interns it.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() (intern.Handle, error) {
	start := l.pos
	for ch := l.peek(); isLetter(ch) || isDigit(ch) || ch == '_'; ch = l.peek() {
		l.advance()
	}
	h, err := l.names.Intern(l.src[start:l.pos])
	if err != nil {
		return 0, fmt.Errorf("identifier at offset %d on line %d: %w", start, l.line, err)
	}
	return h, nil
}

// Next returns the next token. Once EOF has been returned, further calls
// return the same EOF token again without moving.
//
// On error the returned token still carries its type and span, and the cursor
// is past the offending bytes.
func (l *Lexer) Next() (Token, error) {
	if l.done {
		return l.tok, nil
	}
	if l.opts.skipSpace {
		l.skipWhitespace()
	}

	tok := Token{Start: l.pos, Line: l.line}
	var err error

	ch := l.peek()
	switch {
	case ch == 0:
		tok.Type = EOF
		l.done = true
	case isDigit(ch):
		tok.Type = INTEGER
		tok.Value, err = l.scanInt()
	case isLetter(ch) || ch == '_':
		tok.Type = IDENTIFIER
		tok.Name, err = l.scanIdent()
	default:
		l.advance()
		tok.Type = TokenType(ch)
	}

	tok.End = l.pos
	l.tok = tok
	if l.log.V(2).Enabled() {
		l.log.V(2).Info("token", "type", tok.Type.String(), "start", tok.Start, "end", tok.End, "line", tok.Line)
	}
	return tok, err
}

// All yields tokens up to and including EOF. Iteration stops after the first
// error, which is yielded alongside the token that caused it.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if !yield(tok, err) || err != nil || tok.Type == EOF {
				return
			}
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
