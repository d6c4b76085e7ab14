package compiler

import (
	"testing"

	"genesis/pkg/intern"
)

func TestLexerKeywords(t *testing.T) {
	names := intern.New()
	kw, err := InternKeywords(names)
	if err != nil {
		t.Fatalf("InternKeywords failed: %v", err)
	}
	if kw.If == kw.For || kw.For == kw.While || kw.If == kw.While {
		t.Fatalf("keyword handles collide: %+v", kw)
	}

	tokens, err := Tokenize([]byte("if x for while whilst"), names, WithSkipWhitespace())
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	expected := []bool{true, false, true, true, false, false}
	if tokens.Len() != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), tokens.Len())
	}
	for i, tok := range tokens.All() {
		if got := kw.Is(tok); got != expected[i] {
			t.Errorf("Token %d (%s): Is() = %t, want %t", i, names.String(tok.Name), got, expected[i])
		}
	}

	if first := tokens.At(0); first.Type != IDENTIFIER || first.Name != kw.If {
		t.Errorf("Expected 'if' to lex as IDENTIFIER with the keyword handle, got %v", first)
	}
}

func TestKeywordsIgnoreOtherTypes(t *testing.T) {
	var kw Keywords
	if kw.Is(Token{Type: IDENTIFIER}) {
		t.Errorf("zero handle matched an empty Keywords")
	}
	kw = Keywords{If: 1, For: 2, While: 3}
	if kw.Is(Token{Type: INTEGER, Name: 1}) {
		t.Errorf("INTEGER token matched a keyword")
	}
}

func TestKeywordsInternerLimit(t *testing.T) {
	_, err := InternKeywords(intern.New(intern.WithMaxEntries(2)))
	if err == nil {
		t.Fatalf("Expected InternKeywords to fail on a 2-entry table")
	}
}
