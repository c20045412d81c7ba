package symbols

// Table is an ordered name to symbol mapping.
type Table struct {
	names []string
	syms  map[string]Symbol
}

func NewTable() *Table {
	return &Table{syms: make(map[string]Symbol)}
}

func (t *Table) Get(name string) Symbol { return t.syms[name] }

func (t *Table) Has(name string) bool {
	_, ok := t.syms[name]
	return ok
}

// Add inserts sym under name. It fails, leaving the table unchanged,
// when name is already taken.
func (t *Table) Add(name string, sym Symbol) bool {
	if t.Has(name) {
		return false
	}
	t.names = append(t.names, name)
	t.syms[name] = sym
	return true
}

// Set inserts or replaces and returns the previous occupant.
func (t *Table) Set(name string, sym Symbol) Symbol {
	prev, ok := t.syms[name]
	if !ok {
		t.names = append(t.names, name)
	}
	t.syms[name] = sym
	return prev
}

func (t *Table) Len() int { return len(t.names) }

// Names returns the keys in insertion order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Symbols returns the entries in insertion order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, len(t.names))
	for i, n := range t.names {
		out[i] = t.syms[n]
	}
	return out
}

// Each calls fn for every entry in insertion order.
func (t *Table) Each(fn func(name string, sym Symbol)) {
	for _, n := range t.names {
		fn(n, t.syms[n])
	}
}
