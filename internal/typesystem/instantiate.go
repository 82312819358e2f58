package typesystem

// InstantiationCache memoizes Generic id -> freshly instantiated Term so
// every occurrence of the same generic parameter within a term shares
// one fresh variable — what turns `forall a. (a, a) -> a` into
// `(b, b) -> b` rather than `(b, c) -> d` (spec §4.4).
type InstantiationCache map[int]Term

// Instantiate replaces every Generic Link in t with a fresh Unbound Link
// at level, sharing the replacement across all occurrences of the same
// generic id via cache. Composite shapes are rebuilt with instantiated
// children; for each Class/Function explicit generic, the id of the
// explicit is also recorded in cache so references elsewhere in the
// term that key off the explicit's own id (rather than its Link) still
// resolve consistently.
func (e *Engine) Instantiate(t Term, level int, cache InstantiationCache) Term {
	switch v := t.(type) {
	case *Link:
		switch v.kind {
		case linkGeneric:
			if cached, ok := cache[v.ID]; ok {
				return cached
			}
			fresh := e.FreshUnboundAt(level, v.IsStatic, v.Loc)
			cache[v.ID] = fresh
			return fresh
		case linkUnbound:
			return v
		case linkLinked:
			return e.Instantiate(v.target, level, cache)
		default:
			panic(&InvariantViolation{Reason: "unreachable link kind in instantiate"})
		}
	case *Class:
		return e.instantiateClass(v, level, cache)
	case *Function:
		return &Function{
			Name:                 v.Name,
			FuncClass:            e.instantiateClass(v.FuncClass, level, cache),
			Args:                 e.instantiateAll(v.Args, level, cache),
			Explicits:            e.instantiateGenerics(v.Explicits, level, cache),
			Parent:               e.instantiateParent(v.Parent, level, cache),
			IgnoreParentGenerics: v.IgnoreParentGenerics,
			Loc:                  v.Loc,
		}
	case *Static:
		return &Static{Explicits: e.instantiateGenerics(v.Explicits, level, cache), Expr: v.Expr, Loc: v.Loc}
	case *Partial:
		base, _ := e.Instantiate(v.Base, level, cache).(*Function)
		return &Partial{Base: base, KnownTypes: v.KnownTypes, Loc: v.Loc}
	default:
		panic(&InvariantViolation{Reason: "unclassified term in instantiate"})
	}
}

func (e *Engine) instantiateClass(c *Class, level int, cache InstantiationCache) *Class {
	return &Class{
		Name:         c.Name,
		IsRecord:     c.IsRecord,
		FromTuple:    c.FromTuple,
		FromFunction: c.FromFunction,
		Args:         e.instantiateAll(c.Args, level, cache),
		Explicits:    e.instantiateGenerics(c.Explicits, level, cache),
		Parent:       e.instantiateParent(c.Parent, level, cache),
		Loc:          c.Loc,
	}
}

func (e *Engine) instantiateParent(p *Class, level int, cache InstantiationCache) *Class {
	if p == nil {
		return nil
	}
	return e.instantiateClass(p, level, cache)
}

func (e *Engine) instantiateAll(ts []Term, level int, cache InstantiationCache) []Term {
	if ts == nil {
		return nil
	}
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = e.Instantiate(t, level, cache)
	}
	return out
}

// instantiateGenerics rebuilds each explicit's Link field via
// Instantiate. As in generalizeGenerics, g.Link may already have been
// resolved to a concrete composite by the time it is instantiated, in
// which case Instantiate(g.Link, ...) returns that composite's own
// instantiated form (a *Class/*Function/etc.), not a *Link — so the
// result is stored as the Term it actually is, never force-asserted
// back to *Link.
func (e *Engine) instantiateGenerics(gs []Generic, level int, cache InstantiationCache) []Generic {
	if gs == nil {
		return nil
	}
	out := make([]Generic, len(gs))
	for i, g := range gs {
		link := e.Instantiate(g.Link, level, cache)
		if _, ok := cache[g.ID]; !ok {
			cache[g.ID] = link
		}
		out[i] = Generic{Name: g.Name, Link: link, ID: g.ID}
	}
	return out
}
