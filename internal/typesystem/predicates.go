package typesystem

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// HasUnbound reports whether any transitively reachable Link is Unbound
// (spec §4.7).
func HasUnbound(t Term) bool {
	switch v := Follow(t).(type) {
	case *Link:
		return v.kind == linkUnbound
	case *Class:
		return hasUnboundClass(v)
	case *Function:
		return hasUnboundFunction(v)
	case *Static:
		for _, g := range v.Explicits {
			if HasUnbound(g.Link) {
				return true
			}
		}
		return false
	case *Partial:
		return HasUnbound(v.Base)
	default:
		panic(&InvariantViolation{Reason: "unclassified term in hasUnbound"})
	}
}

func hasUnboundClass(c *Class) bool {
	for _, a := range c.Args {
		if HasUnbound(a) {
			return true
		}
	}
	for _, g := range c.Explicits {
		if HasUnbound(g.Link) {
			return true
		}
	}
	return c.Parent != nil && hasUnboundClass(c.Parent)
}

// hasUnboundFunction skips Args[0] (the return slot, derivable). When
// IgnoreParentGenerics is set, for methods whose own enclosing class
// generics are bound externally, it skips exactly one level of Parent
// and checks the grandparent instead of dropping the parent chain
// entirely (spec §4.5).
func hasUnboundFunction(f *Function) bool {
	for i, a := range f.Args {
		if i == 0 {
			continue
		}
		if HasUnbound(a) {
			return true
		}
	}
	for _, g := range f.Explicits {
		if HasUnbound(g.Link) {
			return true
		}
	}
	if f.IgnoreParentGenerics {
		return f.Parent != nil && f.Parent.Parent != nil && hasUnboundClass(f.Parent.Parent)
	}
	return f.Parent != nil && hasUnboundClass(f.Parent)
}

// CanRealize reports whether every reachable Link is bound (state
// Linked) and every composite's children are realizable; a Static
// additionally requires its reducer to accept the current bindings
// (spec §4.7).
func CanRealize(t Term) bool {
	switch v := Follow(t).(type) {
	case *Link:
		return v.kind == linkLinked && CanRealize(v.target)
	case *Class:
		return canRealizeClass(v)
	case *Function:
		return canRealizeFunction(v)
	case *Static:
		bindings, ok := staticBindings(v)
		if !ok {
			return false
		}
		_, ready := v.Expr.Eval(bindings)
		return ready
	case *Partial:
		return CanRealize(v.Base)
	default:
		panic(&InvariantViolation{Reason: "unclassified term in canRealize"})
	}
}

func canRealizeClass(c *Class) bool {
	for _, a := range c.Args {
		if !CanRealize(a) {
			return false
		}
	}
	for _, g := range c.Explicits {
		if !CanRealize(g.Link) {
			return false
		}
	}
	return c.Parent == nil || canRealizeClass(c.Parent)
}

func canRealizeFunction(f *Function) bool {
	for i, a := range f.Args {
		if i == 0 {
			continue
		}
		if !CanRealize(a) {
			return false
		}
	}
	for _, g := range f.Explicits {
		if !CanRealize(g.Link) {
			return false
		}
	}
	if f.IgnoreParentGenerics {
		return f.Parent == nil || f.Parent.Parent == nil || canRealizeClass(f.Parent.Parent)
	}
	return f.Parent == nil || canRealizeClass(f.Parent)
}

// staticBindings reads a Static's current integer bindings for its
// explicit generics. It fails (ok=false, meaning "not realizable yet",
// per spec §4.8) if any explicit is not yet bound to a concrete integer
// literal Class.
func staticBindings(s *Static) (map[string]int, bool) {
	bindings := make(map[string]int, len(s.Explicits))
	for _, g := range s.Explicits {
		n, ok := staticBindingOf(g.Link)
		if !ok {
			return nil, false
		}
		bindings[g.Name] = n
	}
	return bindings, true
}

// staticBindingOf reports the concrete integer a Static generic is
// currently bound to. Bound integer values are represented as a
// non-record Class with no args or explicits whose Name is the decimal
// literal (see IntClass in engine.go).
func staticBindingOf(t Term) (int, bool) {
	t = Follow(t)
	c, ok := t.(*Class)
	if !ok || c.IsRecord || len(c.Args) != 0 || len(c.Explicits) != 0 {
		return 0, false
	}
	n, err := strconv.Atoi(c.Name)
	if err != nil {
		return 0, false
	}
	return n, true
}

// debugNamePattern matches the "?id.level" / "#id.level" forms ToString
// emits for Unbound/Generic links, so DebugString can normalize them.
var debugNamePattern = regexp.MustCompile(`[?#]\d+\.\d+`)

// DebugString renders t the same way ToString does, except that when
// e.Config.DebugNames is set every "?id.level"/"#id.level" token is
// collapsed to its sigil plus "_", so two runs that allocate fresh ids
// in a different order still produce byte-identical golden output.
// Mirrors the teacher's own config.IsTestMode-gated name normalization
// in its printer (internal/typesystem/types.go, internal/typesystem/kinds.go).
func (e *Engine) DebugString(t Term) string {
	s := ToString(t)
	if !e.Config.DebugNames {
		return s
	}
	return debugNamePattern.ReplaceAllStringFunc(s, func(tok string) string {
		return tok[:1] + "_"
	})
}

// ToString renders t in the engine's debug grammar: Unbound as
// "?id.level", Generic as "#id.level", Link as its target (transparent,
// via Follow), Class/Function as "name[g1,...]" optionally prefixed by
// "parent:" (spec §4.7).
func ToString(t Term) string {
	switch v := Follow(t).(type) {
	case *Link:
		switch v.kind {
		case linkUnbound:
			return fmt.Sprintf("?%d.%d", v.ID, v.Level)
		case linkGeneric:
			return fmt.Sprintf("#%d.%d", v.ID, v.Level)
		default:
			panic(&InvariantViolation{Reason: "Follow returned a still-Linked Link"})
		}
	case *Class:
		return classString(v)
	case *Function:
		return classString(v.getClass())
	case *Static:
		return staticString(v)
	case *Partial:
		return fmt.Sprintf("%s[%s]", v.Name(), ToString(v.Base))
	default:
		panic(&InvariantViolation{Reason: "unclassified term in toString"})
	}
}

// classGenericParts collects the bracketed GENERICS list for c: its
// field types (Args) followed by its explicit generic bindings
// (Explicits). Both contribute to a Class's printed/realized identity —
// a record's Args carry its field types (what distinguishes one tuple
// or Function Class view from another, spec §3's "ordered list of field
// types"), while Explicits carry its named generic bindings (what
// distinguishes one List[T] instantiation from another). Printing only
// one of the two would collapse distinct tuples/functions to the same
// string whenever their Explicits happened to match (or were empty).
func classGenericParts(c *Class) []string {
	parts := make([]string, 0, len(c.Args)+len(c.Explicits))
	for _, a := range c.Args {
		parts = append(parts, ToString(a))
	}
	for _, g := range c.Explicits {
		parts = append(parts, ToString(g.Link))
	}
	return parts
}

func classString(c *Class) string {
	body := c.Name
	if parts := classGenericParts(c); len(parts) > 0 {
		body = fmt.Sprintf("%s[%s]", c.Name, strings.Join(parts, ","))
	}
	if c.Parent != nil {
		return ToString(c.Parent) + ":" + body
	}
	return body
}

func staticString(s *Static) string {
	parts := make([]string, len(s.Explicits))
	for i, g := range s.Explicits {
		parts[i] = g.Name + "=" + ToString(g.Link)
	}
	return fmt.Sprintf("Static[%s]{%s}", strings.Join(parts, ","), s.Expr.String())
}

// RealizeString returns the canonical monomorphization key, per the
// grammar in spec §6:
//
//	TYPE      := (PARENT ':')? NAME ( '[' GENERICS ']' )?
//	GENERICS  := TYPE (',' TYPE)*
//	           | STATIC_KEY
//	STATIC_KEY:= TYPE (';' TYPE)* INTEGER
//	NAME      := unqualified identifier with trailing '.N' suffix stripped
//
// It requires CanRealize(t); callers should check first, since a
// non-realizable term here is a caller contract violation rather than a
// recoverable unification outcome (spec §4.8).
func RealizeString(t Term) string {
	if !CanRealize(t) {
		panic(&InvariantViolation{Reason: "realizeString called on a non-realizable term"})
	}
	return realize(Follow(t))
}

func realize(t Term) string {
	switch v := t.(type) {
	case *Link:
		return realize(Follow(v.target))
	case *Class:
		return realizeClass(v)
	case *Function:
		return realizeClass(v.getClass())
	case *Partial:
		return fmt.Sprintf("%s[%s]", v.Name(), realize(Follow(v.Base)))
	case *Static:
		return realizeStatic(v)
	default:
		panic(&InvariantViolation{Reason: "unclassified term in realizeString"})
	}
}

// realizeClassParts is classGenericParts's realize-grammar counterpart:
// Args then Explicits, each lowered through realize rather than
// ToString, so a tuple or Function Class view's field types contribute
// to its realize key exactly as they contribute to its debug string.
func realizeClassParts(c *Class) []string {
	parts := make([]string, 0, len(c.Args)+len(c.Explicits))
	for _, a := range c.Args {
		parts = append(parts, realize(Follow(a)))
	}
	for _, g := range c.Explicits {
		parts = append(parts, realize(Follow(g.Link)))
	}
	return parts
}

func realizeClass(c *Class) string {
	name := chopTrailingSuffix(c.Name)
	body := name
	if parts := realizeClassParts(c); len(parts) > 0 {
		body = fmt.Sprintf("%s[%s]", name, strings.Join(parts, ","))
	}
	if c.Parent != nil {
		return realize(c.Parent) + ":" + body
	}
	return body
}

func realizeStatic(s *Static) string {
	bindings := make(map[string]int, len(s.Explicits))
	parts := make([]string, 0, len(s.Explicits)+1)
	for _, g := range s.Explicits {
		parts = append(parts, realize(Follow(g.Link)))
		n, _ := staticBindingOf(g.Link)
		bindings[g.Name] = n
	}
	value, ready := s.Expr.Eval(bindings)
	if !ready {
		panic(&InvariantViolation{Reason: "realizeString: static evaluator rejected bound generics"})
	}
	parts = append(parts, strconv.Itoa(value))
	return strings.Join(parts, ";")
}

// chopTrailingSuffix removes a trailing ".N" suffix used internally to
// distinguish multiply-declared nominal types in the source (spec §6).
func chopTrailingSuffix(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name
	}
	if _, err := strconv.Atoi(name[idx+1:]); err != nil {
		return name
	}
	return name[:idx]
}
