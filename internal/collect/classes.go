package collect

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/symbols"
)

func (c *Collector) VisitClassDecl(n *ast.ClassDecl) {
	sym := c.classLike(symbols.KindClass, n, n.Name, n.Mods)
	sym.SuperName = n.Super
	sym.IfaceNames = n.Ifaces
	c.body(n, sym, n.Members, false)
}

func (c *Collector) VisitTraitDecl(n *ast.TraitDecl) {
	sym := c.classLike(symbols.KindTrait, n, n.Name, n.Mods)
	c.body(n, sym, n.Members, true)
}

func (c *Collector) VisitIfaceDecl(n *ast.IfaceDecl) {
	sym := c.classLike(symbols.KindIface, n, n.Name, n.Mods)
	sym.IfaceNames = n.Ifaces
	c.body(n, sym, n.Members, false)
}

// VisitTraitUse records the traits; they are mixed in by link.
func (c *Collector) VisitTraitUse(n *ast.TraitUse) {
	host := c.members("trait use").Host
	host.Traits = append(host.Traits, n.Traits...)
}

func (c *Collector) classLike(kind symbols.Kind, n ast.Node, name string, mods ast.Mods) *symbols.ClassSymbol {
	sym := symbols.NewClass(kind, name, n.Loc(), symbols.FlagsFromMods(mods))
	c.declare(name, sym, n)
	c.classes = append(c.classes, &classDecl{sym: sym, home: c.scope})
	return sym
}

// body collects a member list into a fresh member scope. Members are
// never nested functions, whatever encloses the class.
func (c *Collector) body(n ast.Node, sym *symbols.ClassSymbol, members []ast.Stmt, trait bool) {
	ms := symbols.NewMemberScope(c.scope, sym)
	c.attach(n, ms)

	restore := c.enter(ms)
	level, inTrait := c.level, c.trait
	c.level, c.trait = 0, trait
	defer func() {
		restore()
		c.level, c.trait = level, inTrait
	}()

	for _, m := range members {
		m.Accept(c)
	}
}
