// Package typesystem is the type inference and unification engine: a
// tagged-variant representation of type terms, a mutable union-find
// Link cell, a reversible unification journal, and level-based
// generalization/instantiation. See the package's design ledger in
// DESIGN.md at the repository root.
package typesystem

// Term is the closed sum type of every node in the type graph: exactly
// one of *Link, *Class, *Function, *Static, *Partial. Operations are
// implemented as exhaustive type switches against this set (spec §9 —
// "tagged variants over virtual dispatch" — rather than a probe-method
// capability interface), so an unrecognized concrete type can only ever
// arise from a bug, not from legitimate API use.
type Term interface {
	isTerm()
}
