package compiler

import (
	"fmt"

	"genesis/pkg/buffer"
	"genesis/pkg/intern"
)

// Tokenize lexes src and returns every token including the final EOF.
// On error the buffer holds the tokens produced before the failure.
func Tokenize(src []byte, names *intern.Interner, opts ...Option) (*buffer.Buffer[Token], error) {
	l := NewLexer(src, names, opts...)
	tokens := buffer.New[Token](buffer.WithMaxCapacity(l.opts.maxTokens))
	for tok, err := range l.All() {
		if err != nil {
			return tokens, err
		}
		if err := tokens.Append(tok); err != nil {
			return tokens, fmt.Errorf("token at offset %d on line %d: %w", tok.Start, tok.Line, err)
		}
	}
	l.log.V(1).Info("tokenized", "bytes", l.pos, "tokens", tokens.Len(), "names", l.names.Count())
	return tokens, nil
}
