package typesystem

import "github.com/funvibe/typecore/internal/config"

type linkKind uint8

const (
	linkUnbound linkKind = iota
	linkGeneric
	linkLinked
)

// Link is the mutable union-find cell backing every type variable. It
// holds one of three states: Unbound (free), Generic (rigid, already
// quantified), or Linked (forwarding to another Term). Generic is
// immutable after creation; only Unbound transitions, either to Linked
// (on unification) or by having its level lowered; Linked never
// transitions back (spec §3).
type Link struct {
	ID       int
	Level    int
	IsStatic bool
	Loc      config.SourceLocation

	kind   linkKind
	target Term
}

func (*Link) isTerm() {}

func newUnbound(id, level int, isStatic bool, loc config.SourceLocation) *Link {
	return &Link{ID: id, Level: level, IsStatic: isStatic, Loc: loc, kind: linkUnbound}
}

func newGeneric(id int, isStatic bool, loc config.SourceLocation) *Link {
	return &Link{ID: id, IsStatic: isStatic, Loc: loc, kind: linkGeneric}
}

// IsUnbound reports whether l is currently a free variable.
func (l *Link) IsUnbound() bool { return l.kind == linkUnbound }

// IsGeneric reports whether l is a rigid, quantified parameter.
func (l *Link) IsGeneric() bool { return l.kind == linkGeneric }

// IsLinked reports whether l currently forwards to another Term.
func (l *Link) IsLinked() bool { return l.kind == linkLinked }

// Target returns the Term l forwards to. Callers must check IsLinked
// first; Target panics otherwise, since reading it is a caller bug.
func (l *Link) Target() Term {
	if l.kind != linkLinked {
		panic(&InvariantViolation{Reason: "Target read on a Link that is not Linked"})
	}
	return l.target
}

// Follow walks Link chains to the representative Term. Composite terms
// (Class/Function/Static/Partial) are already representatives and are
// returned unchanged. Callers must Follow before inspecting a type's
// shape (spec §4.1). Path compression is not performed; it is not
// required for correctness. A Link target is already followed at the
// point it is assigned (see absorbUnbound in unify.go), but that target
// may be an Unbound Link that is itself linked later, so a chain can be
// more than one hop deep.
func Follow(t Term) Term {
	for {
		l, ok := t.(*Link)
		if !ok || l.kind != linkLinked {
			return t
		}
		t = l.target
	}
}
