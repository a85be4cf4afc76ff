// Package symbol provides process-wide interned member names.
//
// The resolver compares names by Symbol pointer, never by content, which
// makes the cache pre-filter a single comparison. Go does not intern string
// literals the way the probe needs, so names are interned explicitly:
// [Intern] returns the one canonical *Symbol per name for the lifetime of
// the process. Call sites intern once (typically in a package-level var),
// not per call.
package symbol

import "sync"

// Symbol is an interned member name. Two Symbols returned by Intern for
// the same string are the same pointer.
type Symbol struct {
	name string
}

func (s *Symbol) String() string { return s.name }

var table sync.Map // string -> *Symbol

// Intern returns the canonical Symbol for name. Safe for concurrent use.
func Intern(name string) *Symbol {
	if v, ok := table.Load(name); ok {
		return v.(*Symbol)
	}
	v, _ := table.LoadOrStore(name, &Symbol{name: name})
	return v.(*Symbol)
}
