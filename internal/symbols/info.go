package symbols

import "github.com/funvibe/phsc/internal/ast"

// Info holds what the passes learn about a unit's nodes.
type Info struct {
	// Scopes maps scope-creating nodes (units, modules, class-likes,
	// function-likes, blocks, loops) to their scope.
	Scopes map[ast.Node]*Scope
	// Defs maps declaring nodes to the symbol they declare.
	Defs map[ast.Node]Symbol
	// Uses maps every resolved name reference to its symbol.
	Uses map[*ast.Name]Symbol
}

func NewInfo() *Info {
	return &Info{
		Scopes: make(map[ast.Node]*Scope),
		Defs:   make(map[ast.Node]Symbol),
		Uses:   make(map[*ast.Name]Symbol),
	}
}

func (i *Info) ScopeOf(n ast.Node) *Scope { return i.Scopes[n] }

func (i *Info) DefOf(n ast.Node) Symbol { return i.Defs[n] }
