package compiler

import "fmt"

// ---------------------------------------------------------------------------
// SymbolTable: two-scope identifier registry
// ---------------------------------------------------------------------------

// Kind is the storage class of a declared variable. It determines which
// virtual machine segment the variable lives in and which index counter
// numbers it.
type Kind int

const (
	KindStatic Kind = iota
	KindField
	KindArg
	KindLocal
)

var kindNames = map[Kind]string{
	KindStatic: "static",
	KindField:  "field",
	KindArg:    "argument",
	KindLocal:  "local",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Segment returns the virtual machine segment a variable of this kind is
// addressed through. Fields are receiver-relative.
func (k Kind) Segment() Segment {
	switch k {
	case KindStatic:
		return SegStatic
	case KindField:
		return SegThis
	case KindArg:
		return SegArgument
	default:
		return SegLocal
	}
}

// Symbol is one declared variable: its name, declared type (primitive or
// class name, opaque here), storage class, and index within that storage
// class.
type Symbol struct {
	Name  string
	Type  string
	Kind  Kind
	Index int
}

// scope is a single-level name table with per-kind index counters.
type scope struct {
	entries map[string]Symbol
	counts  map[Kind]int
}

func newScope() *scope {
	return &scope{
		entries: make(map[string]Symbol),
		counts:  make(map[Kind]int),
	}
}

func (s *scope) define(name, typ string, kind Kind) (Symbol, bool) {
	if _, exists := s.entries[name]; exists {
		return Symbol{}, false
	}
	sym := Symbol{
		Name:  name,
		Type:  typ,
		Kind:  kind,
		Index: s.counts[kind],
	}
	s.counts[kind]++
	s.entries[name] = sym
	return sym, true
}

// SymbolTable tracks the class scope (static and field variables) and the
// subroutine scope (arguments and locals). The subroutine scope shadows the
// class scope; it is reset at the start of every subroutine.
type SymbolTable struct {
	class      *scope
	subroutine *scope
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		class:      newScope(),
		subroutine: newScope(),
	}
}

// StartClass resets the class scope. Static and field counters restart at 0.
func (t *SymbolTable) StartClass() {
	t.class = newScope()
	t.subroutine = newScope()
}

// StartSubroutine resets the subroutine scope. For instance methods the
// implicit receiver occupies argument slot 0 under the name "this", with the
// enclosing class as its type.
func (t *SymbolTable) StartSubroutine(receiverType string, isMethod bool) {
	t.subroutine = newScope()
	if isMethod {
		t.subroutine.define("this", receiverType, KindArg)
	}
}

// Define inserts a new symbol at the next index for its storage class.
// Static and field go in the class scope, argument and local in the
// subroutine scope. Returns false if the name is already declared in that
// same scope.
func (t *SymbolTable) Define(name, typ string, kind Kind) (Symbol, bool) {
	if kind == KindStatic || kind == KindField {
		return t.class.define(name, typ, kind)
	}
	return t.subroutine.define(name, typ, kind)
}

// Lookup resolves a name, subroutine scope first. An absent result is not
// itself an error: the caller decides whether the identifier denotes a class
// or subroutine name instead.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	if sym, ok := t.subroutine.entries[name]; ok {
		return sym, true
	}
	sym, ok := t.class.entries[name]
	return sym, ok
}

// Count returns the number of declared symbols of the given storage class in
// its scope: class scope for static/field, subroutine scope for
// argument/local.
func (t *SymbolTable) Count(kind Kind) int {
	if kind == KindStatic || kind == KindField {
		return t.class.counts[kind]
	}
	return t.subroutine.counts[kind]
}
