package main

import (
	"strings"
	"testing"

	"genesis/pkg/compiler"
)

func TestNewGameLabels(t *testing.T) {
	g, err := newGame("demo", []byte("while (x) 42"), compiler.WithSkipWhitespace())
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}

	expected := []string{"[while]", "'('", "x", "')'", "42", "EOF"}
	if len(g.labels) != len(expected) {
		t.Fatalf("Expected %d labels, got %d: %v", len(expected), len(g.labels), g.labels)
	}
	for i, want := range expected {
		if g.labels[i] != want {
			t.Errorf("label %d = %q; want %q", i, g.labels[i], want)
		}
	}
	if g.rows != 2 {
		t.Errorf("rows = %d; want 2", g.rows)
	}
	if !strings.Contains(g.title, "6 tokens") {
		t.Errorf("title = %q", g.title)
	}
}

func TestLongLabelsAreTruncated(t *testing.T) {
	g, err := newGame("long", []byte(strings.Repeat("a", 64)))
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	if got := g.labels[0]; len(got) != cellChars || !strings.HasSuffix(got, "~") {
		t.Errorf("label = %q; want %d chars ending in ~", got, cellChars)
	}
}

func TestScrollIsClamped(t *testing.T) {
	src := strings.Repeat("+", cols*(visibleRows+5))
	g, err := newGame("scroll", []byte(src))
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}

	g.scrollBy(-3)
	if g.scroll != 0 {
		t.Errorf("scroll = %d after scrolling up from the top", g.scroll)
	}
	g.scrollBy(1000)
	if g.scroll != g.rows-visibleRows {
		t.Errorf("scroll = %d; want %d", g.scroll, g.rows-visibleRows)
	}
}

func TestLayout(t *testing.T) {
	g := &Game{}
	w, h := g.Layout(1024, 768)
	if w != screenWidth || h != screenHeight {
		t.Errorf("Layout() = (%d, %d); want (%d, %d)", w, h, screenWidth, screenHeight)
	}
}
