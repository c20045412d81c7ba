package symbols

import "github.com/funvibe/phsc/internal/source"

// Child returns the direct submodule called name.
func (s *Scope) Child(name string) *Scope {
	return s.children[name]
}

// Children returns the direct submodules in creation order.
func (s *Scope) Children() []*Scope {
	out := make([]*Scope, len(s.childNames))
	for i, n := range s.childNames {
		out[i] = s.children[n]
	}
	return out
}

// Fetch walks path below s, creating missing modules on the way. When a
// segment is already bound to something that is not a module, Fetch
// stops and returns that symbol as the collision; modules created before
// the collision are kept.
func (s *Scope) Fetch(path []string, loc *source.Location) (*Scope, Symbol) {
	cur := s
	for _, name := range path {
		if next := cur.Child(name); next != nil {
			cur = next
			continue
		}
		if other := cur.Get(name, false); other != nil {
			return nil, other
		}
		mod := newScope(cur.ids, ScopeModule, cur)
		mod.Name = name
		cur.Add(name, NewModule(name, loc, mod))
		cur.childNames = append(cur.childNames, name)
		cur.children[name] = mod
		cur = mod
	}
	return cur, nil
}

// Resolve walks path below s without creating anything.
func (s *Scope) Resolve(path []string) *Scope {
	cur := s
	for _, name := range path {
		if cur = cur.Child(name); cur == nil {
			return nil
		}
	}
	return cur
}
