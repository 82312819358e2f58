package typesystem

// Generalize quantifies every Unbound Link in t whose level is >= level,
// converting it to a Generic Link with the same id and isStatic flag
// (promoting it to a parameter at this scope boundary). An Unbound Link
// with a lower level is left unchanged — it escapes to the outer scope.
// Composite shapes are rebuilt with generalized children, preserving
// source locations (spec §4.4).
func (e *Engine) Generalize(t Term, level int) Term {
	switch v := t.(type) {
	case *Link:
		switch v.kind {
		case linkUnbound:
			if v.Level >= level {
				return newGeneric(v.ID, v.IsStatic, v.Loc)
			}
			return v
		case linkGeneric:
			return v
		case linkLinked:
			return e.Generalize(v.target, level)
		default:
			panic(&InvariantViolation{Reason: "unreachable link kind in generalize"})
		}
	case *Class:
		return e.generalizeClass(v, level)
	case *Function:
		return &Function{
			Name:                 v.Name,
			FuncClass:            e.generalizeClass(v.FuncClass, level),
			Args:                 e.generalizeAll(v.Args, level),
			Explicits:            e.generalizeGenerics(v.Explicits, level),
			Parent:               e.generalizeParent(v.Parent, level),
			IgnoreParentGenerics: v.IgnoreParentGenerics,
			Loc:                  v.Loc,
		}
	case *Static:
		return &Static{Explicits: e.generalizeGenerics(v.Explicits, level), Expr: v.Expr, Loc: v.Loc}
	case *Partial:
		base, _ := e.Generalize(v.Base, level).(*Function)
		return &Partial{Base: base, KnownTypes: v.KnownTypes, Loc: v.Loc}
	default:
		panic(&InvariantViolation{Reason: "unclassified term in generalize"})
	}
}

func (e *Engine) generalizeClass(c *Class, level int) *Class {
	return &Class{
		Name:         c.Name,
		IsRecord:     c.IsRecord,
		FromTuple:    c.FromTuple,
		FromFunction: c.FromFunction,
		Args:         e.generalizeAll(c.Args, level),
		Explicits:    e.generalizeGenerics(c.Explicits, level),
		Parent:       e.generalizeParent(c.Parent, level),
		Loc:          c.Loc,
	}
}

func (e *Engine) generalizeParent(p *Class, level int) *Class {
	if p == nil {
		return nil
	}
	return e.generalizeClass(p, level)
}

func (e *Engine) generalizeAll(ts []Term, level int) []Term {
	if ts == nil {
		return nil
	}
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = e.Generalize(t, level)
	}
	return out
}

// generalizeGenerics rebuilds each explicit's Link field via Generalize.
// g.Link is not necessarily still a bare *Link by the time a scope
// exits: if the explicit was already unified with a concrete term (e.g.
// List[T] unified with List[Int] leaves T's Link forwarding to the Int
// Class), Generalize(g.Link, level) follows that Link and returns the
// generalized target itself — a *Class, not a *Link. Storing that
// returned Term directly (rather than asserting it back to *Link) is
// what keeps the binding intact in that case.
func (e *Engine) generalizeGenerics(gs []Generic, level int) []Generic {
	if gs == nil {
		return nil
	}
	out := make([]Generic, len(gs))
	for i, g := range gs {
		out[i] = Generic{Name: g.Name, Link: e.Generalize(g.Link, level), ID: g.ID}
	}
	return out
}
