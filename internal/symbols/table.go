package symbols

import "sort"

// Scope is one flat name map. Within a single scope a later insert for
// the same name wins, matching shadowing-by-redeclaration semantics.
type Scope struct {
	names map[string]*Symbol
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{names: make(map[string]*Symbol)}
}

// Insert binds name to sym, replacing any previous binding.
func (s *Scope) Insert(sym *Symbol) {
	s.names[sym.Name] = sym
}

// Lookup returns the binding for name in this scope only.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.names[name]
	return sym, ok
}

// Len returns the number of bindings in this scope.
func (s *Scope) Len() int {
	return len(s.names)
}

// Symbols returns the scope's bindings sorted by name, for dumps.
func (s *Scope) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(s.names))
	for _, sym := range s.names {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Table is a stack of scopes. The base scope always exists and is never
// popped; EnterScope and ExitScope bracket blocks and function bodies.
type Table struct {
	scopes []*Scope
}

// NewTable returns a table holding only the base scope.
func NewTable() *Table {
	return &Table{scopes: []*Scope{NewScope()}}
}

// EnterScope pushes a fresh innermost scope.
func (t *Table) EnterScope() {
	t.scopes = append(t.scopes, NewScope())
}

// ExitScope pops the innermost scope. The base scope stays.
func (t *Table) ExitScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Depth returns the number of open scopes, counting the base scope.
func (t *Table) Depth() int {
	return len(t.scopes)
}

// Insert binds sym in the innermost scope.
func (t *Table) Insert(sym *Symbol) {
	t.scopes[len(t.scopes)-1].Insert(sym)
}

// Lookup resolves name from the innermost scope outward.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i].Lookup(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal resolves name in the innermost scope only, for
// same-scope redeclaration checks.
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	return t.scopes[len(t.scopes)-1].Lookup(name)
}

// Base returns the outermost scope, which holds module-level symbols.
func (t *Table) Base() *Scope {
	return t.scopes[0]
}

// MultiTable groups the independent namespaces resolution writes into.
// Struct fields are keyed "Struct.field" and enum variants
// "Enum.Variant", so member names from unrelated types never collide.
type MultiTable struct {
	Types        *Table
	Values       *Table
	EnumVariants *Table
	StructFields *Table
}

// NewMultiTable returns a MultiTable with all four namespaces at base
// scope.
func NewMultiTable() *MultiTable {
	return &MultiTable{
		Types:        NewTable(),
		Values:       NewTable(),
		EnumVariants: NewTable(),
		StructFields: NewTable(),
	}
}

// EnterScope opens a new scope in every namespace.
func (m *MultiTable) EnterScope() {
	m.Types.EnterScope()
	m.Values.EnterScope()
	m.EnumVariants.EnterScope()
	m.StructFields.EnterScope()
}

// ExitScope closes the innermost scope in every namespace.
func (m *MultiTable) ExitScope() {
	m.Types.ExitScope()
	m.Values.ExitScope()
	m.EnumVariants.ExitScope()
	m.StructFields.ExitScope()
}

// HasType reports whether name resolves in the type namespace.
func (m *MultiTable) HasType(name string) bool {
	_, ok := m.Types.Lookup(name)
	return ok
}

// HasValue reports whether name resolves in the value namespace.
func (m *MultiTable) HasValue(name string) bool {
	_, ok := m.Values.Lookup(name)
	return ok
}

// HasVariant reports whether "Enum.Variant" resolves.
func (m *MultiTable) HasVariant(key string) bool {
	_, ok := m.EnumVariants.Lookup(key)
	return ok
}

// HasField reports whether "Struct.field" resolves.
func (m *MultiTable) HasField(key string) bool {
	_, ok := m.StructFields.Lookup(key)
	return ok
}
