package core

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	// print name of the symbol terminating proper lists.
	TERMINATOR_NAME = "NIL"
)

var (
	DefaultSymbolTable = NewSymbolTable()

	NIL = Intern(TERMINATOR_NAME)
)

// A Symbol is an atom identified by its print name, Symbol implements Value.
// Symbols should be created by a SymbolTable, two symbols with the same name are equal
// even if they come from different tables.
type Symbol struct {
	name string
}

func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) String() string {
	return s.name
}

// IsTerminator reports whether v is the symbol terminating proper lists.
func IsTerminator(v Value) bool {
	sym, ok := v.(*Symbol)
	return ok && sym != nil && sym.name == TERMINATOR_NAME
}

// A SymbolTable interns symbols, it is safe for concurrent use.
type SymbolTable struct {
	symbols cmap.ConcurrentMap[string, *Symbol]
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: cmap.New[*Symbol](),
	}
}

// Intern returns the symbol named name, creating it if necessary.
func (t *SymbolTable) Intern(name string) *Symbol {
	return t.symbols.Upsert(name, nil, func(exist bool, valueInMap, _ *Symbol) *Symbol {
		if exist {
			return valueInMap
		}
		return &Symbol{name: name}
	})
}

func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	return t.symbols.Get(name)
}

func (t *SymbolTable) Count() int {
	return t.symbols.Count()
}

// Intern interns name in DefaultSymbolTable.
func Intern(name string) *Symbol {
	return DefaultSymbolTable.Intern(name)
}
