package symbols

// Branch overlays a scope for one arm of a conditional or loop body.
// The first lookup of a variable clones it into the branch, so writes
// made while the arm is analysed stay local until Merge. New bindings are
// never created in a branch: Add and Set go to the overlaid scope.
type Branch struct {
	orig   *Scope
	prev   *Branch
	local  *Table
	origin map[*VarSymbol]*VarSymbol // clone -> symbol it was cloned from
}

// NewBranch overlays orig. prev is the branch orig is nested in, if any;
// names not bound in orig itself are then resolved through prev, so an
// inner branch clones the outer branch's copy rather than the original.
// Two branches over the same scope resolve everything through prev.
func NewBranch(orig *Scope, prev *Branch) *Branch {
	return &Branch{orig: orig, prev: prev, local: NewTable(), origin: make(map[*VarSymbol]*VarSymbol)}
}

func (b *Branch) Scope() *Scope   { return b.orig }
func (b *Branch) Parent() *Branch { return b.prev }

// Owns reports whether sym is one of the branch's clones.
func (b *Branch) Owns(sym Symbol) bool {
	v, ok := sym.(*VarSymbol)
	if !ok {
		return false
	}
	_, ok = b.origin[v]
	return ok
}

func (b *Branch) Find(name string) Symbol {
	if sym := b.local.Get(name); sym != nil {
		return sym
	}
	var sym Symbol
	switch {
	case b.prev == nil:
		sym = b.orig.Get(name, true)
	case b.prev.orig == b.orig:
		sym = b.prev.Find(name)
	default:
		if sym = b.orig.Get(name, false); sym == nil {
			sym = b.prev.Find(name)
		}
	}
	v, ok := sym.(*VarSymbol)
	if !ok {
		return sym
	}
	clone := v.Clone()
	b.local.Add(name, clone)
	b.origin[clone] = v
	return clone
}

func (b *Branch) Add(name string, sym Symbol) bool { return b.orig.Add(name, sym) }

func (b *Branch) Set(name string, sym Symbol) Symbol { return b.orig.Set(name, sym) }

// Merge reports the branch's writes to the symbols it cloned: anything
// written inside the arm is written as far as the enclosing code is
// concerned, and its value is no longer known there.
func (b *Branch) Merge() {
	for _, sym := range b.local.Symbols() {
		clone := sym.(*VarSymbol)
		orig := b.origin[clone]
		if clone.Writes > orig.Writes {
			orig.Writes = clone.Writes
			orig.Value = Unknown()
		}
		if clone.Reads > orig.Reads {
			orig.Reads = clone.Reads
		}
	}
}
