package typesystem

// Unify attempts to make a and b structurally equal, recording every
// mutation in j so a speculative attempt can be undone exactly. On
// success it returns a non-negative match score used by overload
// resolution (higher = more specific). On failure it returns a
// distinguished error and guarantees j records only a prefix of
// mutations the caller must Undo — Unify itself never undoes on
// internal failure (spec §4.2).
//
// Dispatch order, after Follow on both sides: an Unbound Link on either
// side always gets first chance to absorb the other (even a Generic);
// only once neither side is Unbound does a bare Generic require exact
// self-match; only once neither side is any kind of Link do the
// composite shapes (Class/Function/Static/Partial) dispatch against
// each other.
func (e *Engine) Unify(a, b Term, j *Journal) (int, error) {
	a = Follow(a)
	b = Follow(b)

	if al, ok := a.(*Link); ok && al.kind == linkUnbound {
		return e.absorbUnbound(al, b, j)
	}
	if bl, ok := b.(*Link); ok && bl.kind == linkUnbound {
		return e.absorbUnbound(bl, a, j)
	}

	if al, ok := a.(*Link); ok {
		// Follow guarantees al.kind != linkLinked here.
		bl, ok := b.(*Link)
		if !ok || bl.kind != linkGeneric || bl.ID != al.ID || bl.IsStatic != al.IsStatic {
			return 0, mismatch(a, b, "a rigid generic only unifies with itself")
		}
		return 1, nil
	}
	if _, ok := b.(*Link); ok {
		// b must be Generic (Unbound handled above, Linked impossible
		// after Follow) and a is a composite: no composite unifies with
		// a bare rigid generic.
		return 0, mismatch(a, b, "a composite type cannot unify with a rigid generic")
	}

	switch av := a.(type) {
	case *Static:
		bv, ok := b.(*Static)
		if !ok {
			return 0, mismatch(a, b, "static type vs non-static type")
		}
		return e.unifyStatic(av, bv, j)
	case *Partial:
		bv, ok := b.(*Partial)
		if !ok {
			return 0, mismatch(a, b, "partial type vs non-partial type")
		}
		return e.unifyPartial(av, bv, j)
	case *Function:
		if _, ok := b.(*Static); ok {
			return 0, mismatch(a, b, "function type vs static type")
		}
		if _, ok := b.(*Partial); ok {
			return 0, mismatch(a, b, "function type vs partial type")
		}
		return e.unifyClass(av.getClass(), classView(b), j)
	case *Class:
		if _, ok := b.(*Static); ok {
			return 0, mismatch(a, b, "class type vs static type")
		}
		if _, ok := b.(*Partial); ok {
			return 0, mismatch(a, b, "class type vs partial type")
		}
		return e.unifyClass(av, classView(b), j)
	default:
		panic(&InvariantViolation{Reason: "unclassified term in unify"})
	}
}

// classView returns t's Class view: itself if already a Class, or the
// synthesized Class view if t is a Function (spec §4.5). Callers only
// reach here once Static/Partial have been ruled out on both sides.
func classView(t Term) *Class {
	switch v := t.(type) {
	case *Class:
		return v
	case *Function:
		return v.getClass()
	default:
		panic(&InvariantViolation{Reason: "classView called on a non-Class, non-Function term"})
	}
}

// absorbUnbound implements spec §4.2 rule 1: an Unbound Link absorbs
// the other side, subject to matching isStatic flags, a trivial success
// on identical ids, and the occurs-check (which also lowers the level
// of any Unbound it passes over whose level exceeds l's).
func (e *Engine) absorbUnbound(l *Link, other Term, j *Journal) (int, error) {
	if ol, ok := other.(*Link); ok && ol.kind == linkUnbound && ol.ID == l.ID {
		if ol.IsStatic != l.IsStatic {
			return 0, mismatch(l, other, "isStatic mismatch on identical ids")
		}
		return 1, nil
	}

	// An integer-literal Class (see IntClass) is what a bound Static
	// generic resolves to, so it passes the isStatic check either way.
	if _, isLiteral := staticBindingOf(other); !isLiteral && l.IsStatic != isStaticTerm(other) {
		return 0, mismatch(l, other, "isStatic mismatch")
	}

	// StrictOccursCheck is disabled only by fuzzing harnesses that want
	// to observe the engine's behavior on inputs a real frontend could
	// never produce; every other caller leaves it at its default true.
	if e.Config.StrictOccursCheck && e.occursCheck(l.ID, l.Level, other, j) {
		return 0, mismatch(l, other, "occurs check failed: infinite type")
	}

	l.kind = linkLinked
	l.target = other
	j.recordLink(l)
	e.logEvent("link", map[string]any{"id": l.ID, "target": ToString(other)})
	return 0, nil
}

// isStaticTerm reports whether t is, or stands for, a Static type: true
// for *Static itself and for any Link (bound or free) whose IsStatic
// flag is set.
func isStaticTerm(t Term) bool {
	switch v := t.(type) {
	case *Static:
		return true
	case *Link:
		return v.IsStatic
	default:
		return false
	}
}

// occursCheck reports whether id occurs free anywhere reachable from t
// (recursing through Class.Args, Class.Explicits, Class.Parent,
// Static.Explicits, Partial.Base, and following Links), and as a side
// effect lowers the level of any Unbound Link it passes over whose
// level exceeds absorbLevel, journaling each adjustment (spec §4.2
// rule 1). The level adjustments are journaled even along a path that
// turns out not to contain id, since Unify's caller is responsible for
// undoing the whole attempt on failure (spec §4.2 intro, §8 P1/P2).
func (e *Engine) occursCheck(id int, absorbLevel int, t Term, j *Journal) bool {
	t = Follow(t)
	switch v := t.(type) {
	case *Link:
		switch v.kind {
		case linkUnbound:
			if v.ID == id {
				return true
			}
			if v.Level > absorbLevel {
				j.recordLevel(v, v.Level)
				v.Level = absorbLevel
			}
			return false
		case linkGeneric:
			return false
		default:
			panic(&InvariantViolation{Reason: "Follow returned a still-Linked Link"})
		}
	case *Class:
		for _, a := range v.Args {
			if e.occursCheck(id, absorbLevel, a, j) {
				return true
			}
		}
		for _, g := range v.Explicits {
			if e.occursCheck(id, absorbLevel, g.Link, j) {
				return true
			}
		}
		if v.Parent != nil {
			return e.occursCheck(id, absorbLevel, v.Parent, j)
		}
		return false
	case *Function:
		for _, a := range v.Args {
			if e.occursCheck(id, absorbLevel, a, j) {
				return true
			}
		}
		for _, g := range v.Explicits {
			if e.occursCheck(id, absorbLevel, g.Link, j) {
				return true
			}
		}
		if v.Parent != nil {
			return e.occursCheck(id, absorbLevel, v.Parent, j)
		}
		return false
	case *Static:
		for _, g := range v.Explicits {
			if e.occursCheck(id, absorbLevel, g.Link, j) {
				return true
			}
		}
		return false
	case *Partial:
		return e.occursCheck(id, absorbLevel, v.Base, j)
	default:
		panic(&InvariantViolation{Reason: "unclassified term in occurs check"})
	}
}

// unifyClass implements spec §4.2 rule 2. Args unify left-to-right,
// stopping at the first failure (spec's tie-break policy); the name
// rule is checked after the args have unified, before parent and
// explicit generics.
func (e *Engine) unifyClass(a, b *Class, j *Journal) (int, error) {
	if a.IsRecord != b.IsRecord {
		return 0, mismatch(a, b, "record/nominal mismatch")
	}
	if len(a.Args) != len(b.Args) {
		return 0, mismatch(a, b, "argument count mismatch")
	}

	score := 0
	for i := range a.Args {
		s, err := e.Unify(a.Args[i], b.Args[i], j)
		if err != nil {
			return 0, err
		}
		score += s
	}

	sameIdentity := a.Name == b.Name
	if a.IsRecord {
		sameIdentity = sameIdentity || (a.FromTuple && b.FromTuple) || (a.FromFunction && b.FromFunction)
	}
	if !sameIdentity {
		return 0, mismatch(a, b, "name mismatch")
	}
	score++ // matching nominal structure contributes 1 per level

	if (a.Parent == nil) != (b.Parent == nil) {
		return 0, mismatch(a, b, "parent presence mismatch")
	}
	if a.Parent != nil {
		s, err := e.unifyClass(a.Parent, b.Parent, j)
		if err != nil {
			return 0, err
		}
		score += s
	}

	if len(a.Explicits) != len(b.Explicits) {
		return 0, mismatch(a, b, "generic arity mismatch")
	}
	for i := range a.Explicits {
		s, err := e.Unify(a.Explicits[i].Link, b.Explicits[i].Link, j)
		if err != nil {
			return 0, err
		}
		score += s + 1 // generics contribute 1
	}
	return score, nil
}

// unifyStatic implements spec §4.2 rule 4: only unify if the two
// expressions are syntactically identical (same printed form); if so,
// unify their explicit generic bindings pairwise.
func (e *Engine) unifyStatic(a, b *Static, j *Journal) (int, error) {
	if a.Expr.String() != b.Expr.String() {
		return 0, mismatch(a, b, "static expressions are not syntactically identical")
	}
	if len(a.Explicits) != len(b.Explicits) {
		return 0, mismatch(a, b, "static generic arity mismatch")
	}
	score := 1
	for i := range a.Explicits {
		s, err := e.Unify(a.Explicits[i].Link, b.Explicits[i].Link, j)
		if err != nil {
			return 0, err
		}
		score += s
	}
	return score, nil
}

// unifyPartial implements spec §4.2 rule 5: bitmasks must be equal
// length and equal element-wise, then unify as Classes (here: unify the
// wrapped functions' Class views).
func (e *Engine) unifyPartial(a, b *Partial, j *Journal) (int, error) {
	if len(a.KnownTypes) != len(b.KnownTypes) {
		return 0, mismatch(a, b, "partial arity mismatch")
	}
	for i := range a.KnownTypes {
		if a.KnownTypes[i] != b.KnownTypes[i] {
			return 0, mismatch(a, b, "partial bitmask mismatch")
		}
	}
	return e.unifyClass(a.Base.getClass(), b.Base.getClass(), j)
}
