// Package intern deduplicates byte strings into stable handles.
//
// An Interner keeps one owned copy of every distinct string it has seen and
// hands out a Handle for it. Two Intern calls with byte-identical input return
// the same Handle for the lifetime of the Interner, so identifiers can be
// compared with ==.
//
// Lookups scan the table linearly, comparing lengths before bytes. That is
// O(n) per call and fine for the identifier counts of a small front-end.
// WithIndex adds a hash index for larger inputs; handles are the same either way.
package intern

import (
	"fmt"
	"iter"

	"github.com/go-logr/logr"

	"genesis/pkg/buffer"
)

// ErrOutOfMemory is returned when the table cannot grow.
var ErrOutOfMemory = buffer.ErrOutOfMemory

// Handle identifies an interned string. The zero Handle never refers to an
// entry, so it can mark "no name" in structs.
type Handle uint32

// IsValid reports whether h was produced by Intern.
func (h Handle) IsValid() bool {
	return h != 0
}

// Entry is one canonical string owned by the Interner.
type Entry struct {
	Length  int
	Content string
}

// Interner is a string table. It is not safe for concurrent use; give each
// lexing session its own instance.
type Interner struct {
	entries *buffer.Buffer[Entry]
	index   map[string]Handle // nil unless WithIndex
	log     logr.Logger
}

// Option configures an Interner.
type Option func(*config)

type config struct {
	indexed    bool
	maxEntries int
	log        logr.Logger
}

// WithIndex keeps a hash index next to the table so lookups are O(1).
func WithIndex() Option {
	return func(c *config) {
		c.indexed = true
	}
}

// WithMaxEntries limits the number of distinct strings. Interning a new string
// past the limit fails with ErrOutOfMemory.
func WithMaxEntries(n int) Option {
	return func(c *config) {
		c.maxEntries = n
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// New returns an empty Interner.
func New(opts ...Option) *Interner {
	c := config{log: logr.Discard()}
	for _, opt := range opts {
		opt(&c)
	}

	in := &Interner{
		entries: buffer.New[Entry](buffer.WithMaxCapacity(c.maxEntries)),
		log:     c.log.WithName("intern"),
	}
	if c.indexed {
		in.index = make(map[string]Handle)
	}
	return in
}

// Intern returns the handle for b, adding a copy of b to the table if no
// entry with the same bytes exists yet.
func (in *Interner) Intern(b []byte) (Handle, error) {
	if h, ok := in.Lookup(b); ok {
		return h, nil
	}
	return in.insert(string(b))
}

// InternString is Intern for a string argument.
func (in *Interner) InternString(s string) (Handle, error) {
	if h, ok := in.lookupString(s); ok {
		return h, nil
	}
	return in.insert(s)
}

// Lookup returns the handle for b without adding it.
func (in *Interner) Lookup(b []byte) (Handle, bool) {
	if in.index != nil {
		h, ok := in.index[string(b)]
		return h, ok
	}
	for i, e := range in.entries.All() {
		if e.Length == len(b) && e.Content == string(b) {
			return handleAt(i), true
		}
	}
	return 0, false
}

func (in *Interner) lookupString(s string) (Handle, bool) {
	if in.index != nil {
		h, ok := in.index[s]
		return h, ok
	}
	for i, e := range in.entries.All() {
		if e.Length == len(s) && e.Content == s {
			return handleAt(i), true
		}
	}
	return 0, false
}

// insert takes ownership of s. Callers pass a freshly converted string, so
// the table never aliases caller memory.
func (in *Interner) insert(s string) (Handle, error) {
	if err := in.entries.Append(Entry{Length: len(s), Content: s}); err != nil {
		return 0, fmt.Errorf("intern %q: %w", s, err)
	}
	h := handleAt(in.entries.Len() - 1)
	if in.index != nil {
		in.index[s] = h
	}
	in.log.V(1).Info("new entry", "handle", uint32(h), "text", s)
	return h, nil
}

// String returns the text of h, or "" for a handle this Interner did not issue.
func (in *Interner) String(h Handle) string {
	e, ok := in.entry(h)
	if !ok {
		return ""
	}
	return e.Content
}

// Bytes returns a copy of the text of h, or nil for an unknown handle.
func (in *Interner) Bytes(h Handle) []byte {
	e, ok := in.entry(h)
	if !ok {
		return nil
	}
	return []byte(e.Content)
}

// Len returns the byte length of h's text.
func (in *Interner) Len(h Handle) int {
	e, ok := in.entry(h)
	if !ok {
		return 0
	}
	return e.Length
}

// Count returns the number of distinct strings in the table.
func (in *Interner) Count() int {
	return in.entries.Len()
}

// Entries yields every handle and its entry in insertion order.
func (in *Interner) Entries() iter.Seq2[Handle, Entry] {
	return func(yield func(Handle, Entry) bool) {
		for i, e := range in.entries.All() {
			if !yield(handleAt(i), e) {
				return
			}
		}
	}
}

func (in *Interner) entry(h Handle) (Entry, bool) {
	i := int(h) - 1
	if i < 0 || i >= in.entries.Len() {
		return Entry{}, false
	}
	return in.entries.At(i), true
}

func handleAt(i int) Handle {
	return Handle(i + 1)
}
