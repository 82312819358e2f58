package typesystem

import "github.com/funvibe/typecore/internal/config"

// Generic is an explicit generic parameter binding: the declared name
// paired with the Link that stands for it and the id that names the
// parameter itself (spec §3 — "(name, Link, id) triple"). Link starts
// life as a *Link, but once unification resolves it (Unbound -> Linked)
// it stands for whatever composite term it was linked to; Generalize
// and Instantiate both rebuild it in place, so the field is typed as
// the general Term rather than narrowed to *Link (spec §4.4 — "Link ->
// recurse into target" applies here exactly as it does anywhere else a
// Link is reachable).
type Generic struct {
	Name string
	Link Term
	ID   int
}

// Class is a nominal composite (non-record: compared by name) or a
// structural one (record: tuples and Function's Class view compare by
// fields alone). Parent is the enclosing class for nested generics and
// is itself a shared, possibly-free-variable-containing reference, not
// a weak back-pointer (spec §3).
type Class struct {
	Name      string
	IsRecord  bool
	Args      []Term
	Explicits []Generic
	Parent    *Class
	Loc       config.SourceLocation

	// FromTuple and FromFunction mark the two record shapes that unify
	// by fields alone, ignoring Name (spec §4.2 rule 2, §7 P7): anonymous
	// tuples, and a Function's synthesized Class view. A record Class
	// with neither flag set is a user-declared structural record, which
	// still compares by name.
	FromTuple    bool
	FromFunction bool
}

func (*Class) isTerm() {}
