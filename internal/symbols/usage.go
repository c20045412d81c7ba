package symbols

import (
	"strings"

	"github.com/funvibe/phsc/internal/source"
)

// Usage is one imported name.
type Usage struct {
	Loc  *source.Location
	Pub  bool
	Root bool
	Self bool

	// Path is the full imported path; Orig is its last segment and Item
	// the name the import is visible as (Orig or the alias).
	Path []string
	Orig string
	Item string

	// Base is the group import this one was declared in, if any.
	Base *Usage
	// Ref caches the resolved target.
	Ref *Ref
}

func NewUsage(loc *source.Location, path []string, alias string, pub bool) *Usage {
	u := &Usage{Loc: loc, Pub: pub, Path: path, Orig: path[len(path)-1]}
	u.Item = u.Orig
	if alias != "" {
		u.Item = alias
	}
	return u
}

// Key is the name the usage is stored under.
func (u *Usage) Key() string { return u.Item }

func (u *Usage) String() string {
	s := strings.Join(u.Path, "::")
	if u.Root {
		s = "::" + s
	}
	if u.Item != u.Orig {
		s += " as " + u.Item
	}
	return s
}

// UsageMap is an ordered key to usage mapping.
type UsageMap struct {
	keys []string
	m    map[string]*Usage
}

func NewUsageMap() *UsageMap {
	return &UsageMap{m: make(map[string]*Usage)}
}

func (um *UsageMap) Get(key string) *Usage { return um.m[key] }

func (um *UsageMap) Has(key string) bool {
	_, ok := um.m[key]
	return ok
}

// Add stores u under its key; it fails when the key is taken.
func (um *UsageMap) Add(u *Usage) bool {
	if um.Has(u.Key()) {
		return false
	}
	um.keys = append(um.keys, u.Key())
	um.m[u.Key()] = u
	return true
}

func (um *UsageMap) Len() int { return len(um.keys) }

// All returns the usages in insertion order.
func (um *UsageMap) All() []*Usage {
	out := make([]*Usage, len(um.keys))
	for i, k := range um.keys {
		out[i] = um.m[k]
	}
	return out
}
