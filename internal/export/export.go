// Package export merges a compiled unit into the session's global scope
// so that later units can reach its modules and public symbols.
package export

import (
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/symbols"
)

// Exporter copies from one unit scope into the global scope. Symbols
// are shared: the global scope holds a second reference and the owning
// scope of every symbol stays the unit's.
type Exporter struct {
	global *symbols.Scope
	sink   *diagnostics.Sink
}

func New(global *symbols.Scope, sink *diagnostics.Sink) *Exporter {
	return &Exporter{global: global, sink: sink}
}

func (e *Exporter) Export(unit *symbols.Scope) {
	e.usages(unit, e.global)
	e.symbols(unit)
	e.modules(unit, e.global)
}

// usages copies the public imports of src. An import key already taken
// in dst keeps its first binding.
func (e *Exporter) usages(src, dst *symbols.Scope) {
	for _, u := range src.Usages.All() {
		if !u.Pub {
			continue
		}
		if !dst.Usages.Add(u) {
			e.sink.Debugf(u.Loc, "public import `%s` is already exported", u.Key())
		}
	}
}

// symbols shares the non-private declarations at the top of the unit.
func (e *Exporter) symbols(unit *symbols.Scope) {
	unit.Table().Each(func(name string, sym symbols.Symbol) {
		if sym.Kind() == symbols.KindModule || sym.Common().Flags.Has(symbols.FlagPrivate) {
			return
		}
		e.share(e.global, name, sym)
	})
}

// modules merges the module tree below src into dst, creating the
// modules dst does not have yet.
func (e *Exporter) modules(src, dst *symbols.Scope) {
	for _, mod := range src.Children() {
		msym := src.Get(mod.Name, false)
		target, other := dst.Fetch([]string{mod.Name}, msym.Common().Loc)
		if target == nil {
			e.conflict(msym, other, mod.Name)
			continue
		}
		mod.Table().Each(func(name string, sym symbols.Symbol) {
			if sym.Kind() != symbols.KindModule {
				e.share(target, name, sym)
			}
		})
		e.usages(mod, target)
		e.modules(mod, target)
	}
}

func (e *Exporter) share(dst *symbols.Scope, name string, sym symbols.Symbol) {
	if prev := dst.Get(name, false); prev != nil {
		if prev != sym {
			e.conflict(sym, prev, name)
		}
		return
	}
	dst.Share(name, sym)
	sym.Common().Exported = true
}

func (e *Exporter) conflict(sym, prev symbols.Symbol, name string) {
	e.sink.Errorf(diagnostics.ErrX001, sym.Common().Loc, "cannot export %s `%s`: the name is already a global %s", sym.Kind(), name, prev.Kind())
	e.sink.Infof(prev.Common().Loc, "previous symbol was here")
}
