package compiler

import "genesis/pkg/intern"

// Keywords holds the interned handles of the reserved words. Keyword tokens
// are still IDENTIFIER tokens; Is compares their handle.
type Keywords struct {
	If    intern.Handle
	For   intern.Handle
	While intern.Handle
}

// InternKeywords adds the reserved words to names and returns their handles.
// Interning them before lexing keeps their handles stable and low.
func InternKeywords(names *intern.Interner) (Keywords, error) {
	var kw Keywords
	for _, w := range []struct {
		text string
		dst  *intern.Handle
	}{
		{"if", &kw.If},
		{"for", &kw.For},
		{"while", &kw.While},
	} {
		h, err := names.InternString(w.text)
		if err != nil {
			return Keywords{}, err
		}
		*w.dst = h
	}
	return kw, nil
}

// Is reports whether tok is an identifier spelled like one of the keywords.
func (kw Keywords) Is(tok Token) bool {
	if tok.Type != IDENTIFIER || !tok.Name.IsValid() {
		return false
	}
	switch tok.Name {
	case kw.If, kw.For, kw.While:
		return true
	}
	return false
}
