package typesystem

import (
	"testing"

	"github.com/funvibe/typecore/internal/config"
)

// DebugNames normalizes "?id.level"/"#id.level" tokens so golden output
// doesn't depend on fresh-id allocation order, mirroring the teacher's
// own config.IsTestMode name normalization.
func TestDebugString_NormalizesIDsWhenEnabled(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.DebugNames = true
	e := NewEngine(cfg)

	a := e.FreshUnbound(false, config.NoLocation{})
	b := e.FreshUnbound(false, config.NoLocation{})
	pair := e.TupleOf([]Term{a, b}, config.NoLocation{})

	if got, want := e.DebugString(pair), "tuple[?_,?_]"; got != want {
		t.Errorf("DebugString() = %q, want %q", got, want)
	}
	// Plain ToString still shows real ids, unaffected by DebugNames.
	if got := ToString(pair); got == e.DebugString(pair) {
		t.Errorf("ToString() should retain real ids distinct from DebugString(): %q", got)
	}
}

func TestDebugString_PassesThroughWhenDisabled(t *testing.T) {
	e := newTestEngine()
	v := e.FreshUnbound(false, config.NoLocation{})
	if got, want := e.DebugString(v), ToString(v); got != want {
		t.Errorf("DebugString() = %q, want ToString() unchanged: %q", got, want)
	}
}

// StrictOccursCheck=false is an explicit, documented opt-out reserved for
// fuzzing harnesses: the occurs-check that would normally reject an
// infinite type is skipped, so the otherwise-failing unification of
// Scenario 3 (spec §8) now succeeds and links Unbound to a term that
// contains it.
func TestUnify_StrictOccursCheckCanBeDisabled(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.StrictOccursCheck = false
	e := NewEngine(cfg)

	v := e.FreshUnbound(false, config.NoLocation{})
	intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
	tuple := e.TupleOf([]Term{v, intType}, config.NoLocation{})

	j := e.NewJournal()
	if _, err := e.Unify(v, tuple, j); err != nil {
		t.Fatalf("with StrictOccursCheck disabled, the occurs violation should be skipped: %v", err)
	}
}

// A Class's printed/realized identity must reflect its field types
// (Args), not only its named explicit generics (Explicits): two tuples
// with different field types must realize to different keys even
// though tuples carry no Explicits at all (spec §8 P5).
func TestRealizeString_TupleFieldsDistinguishIdentity(t *testing.T) {
	e := newTestEngine()
	intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
	boolType := e.ClassOf("Bool", false, nil, nil, nil, config.NoLocation{})

	intPair := e.TupleOf([]Term{intType, intType}, config.NoLocation{})
	mixedPair := e.TupleOf([]Term{intType, boolType}, config.NoLocation{})

	if got := RealizeString(intPair); got != "tuple[Int,Int]" {
		t.Errorf("RealizeString(intPair) = %q, want %q", got, "tuple[Int,Int]")
	}
	if got := RealizeString(mixedPair); got != "tuple[Int,Bool]" {
		t.Errorf("RealizeString(mixedPair) = %q, want %q", got, "tuple[Int,Bool]")
	}
	if RealizeString(intPair) == RealizeString(mixedPair) {
		t.Errorf("tuples with different field types must not share a realizeString")
	}
}

// CanRealize/HasUnbound for Function ignore Args[0] (the return slot).
func TestFunctionPredicates_IgnoreReturnSlot(t *testing.T) {
	e := newTestEngine()
	intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
	unboundReturn := e.FreshUnbound(false, config.NoLocation{})

	fn := e.FunctionOf("fn", e.ClassOf("Fn", true, nil, nil, nil, config.NoLocation{}),
		[]Term{unboundReturn, intType}, nil, nil, false, config.NoLocation{})

	if HasUnbound(fn) {
		t.Errorf("HasUnbound should ignore the unbound return slot at Args[0]")
	}
	if !CanRealize(fn) {
		t.Errorf("CanRealize should ignore the unbound return slot at Args[0]")
	}
}

// IgnoreParentGenerics skips exactly one level of Parent, not the whole
// chain: a method whose immediate enclosing class is itself nested
// inside a still-generic grandparent must still report unbound/
// unrealizable, reflecting that free variable two levels up.
func TestFunctionPredicates_IgnoreParentGenericsSkipsOneLevel(t *testing.T) {
	e := newTestEngine()
	unboundGrandparent := e.FreshUnbound(false, config.NoLocation{})
	grandparent := e.ClassOf("Outer", false, nil,
		[]Generic{{Name: "G", Link: unboundGrandparent, ID: unboundGrandparent.ID}}, nil, config.NoLocation{})
	parent := e.ClassOf("Inner", false, nil, nil, grandparent, config.NoLocation{})
	intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})

	fn := e.FunctionOf("fn", e.ClassOf("Fn", true, nil, nil, nil, config.NoLocation{}),
		[]Term{intType, intType}, nil, parent, true, config.NoLocation{})

	if !HasUnbound(fn) {
		t.Errorf("HasUnbound should still see the grandparent's free variable through IgnoreParentGenerics")
	}
	if CanRealize(fn) {
		t.Errorf("CanRealize should still be blocked by the grandparent's free variable through IgnoreParentGenerics")
	}

	// With a fully-bound grandparent, the method is unbound/realizable
	// again: only the immediate parent's own generics were meant to be
	// ignored, not the grandparent's.
	boundGrandparent := e.ClassOf("Outer", false, nil, nil, nil, config.NoLocation{})
	boundParent := e.ClassOf("Inner", false, nil, nil, boundGrandparent, config.NoLocation{})
	fn2 := e.FunctionOf("fn", e.ClassOf("Fn", true, nil, nil, nil, config.NoLocation{}),
		[]Term{intType, intType}, nil, boundParent, true, config.NoLocation{})

	if HasUnbound(fn2) {
		t.Errorf("HasUnbound should not see unbound state once the grandparent is fully bound")
	}
	if !CanRealize(fn2) {
		t.Errorf("CanRealize should succeed once the grandparent is fully bound")
	}
}

// getClass's synthesized Class view always uses a nil Parent: two
// methods with identical arg/return shape but unrelated (non-unifying)
// enclosing classes must still unify through their Class views.
func TestGetClass_DropsParentForUnification(t *testing.T) {
	e := newTestEngine()
	intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
	parentA := e.ClassOf("A", false, nil, nil, nil, config.NoLocation{})
	parentB := e.ClassOf("B", false, nil, nil, nil, config.NoLocation{})

	fnA := e.FunctionOf("fn", e.ClassOf("Fn", true, nil, nil, nil, config.NoLocation{}),
		[]Term{intType, intType}, nil, parentA, false, config.NoLocation{})
	fnB := e.FunctionOf("fn", e.ClassOf("Fn", true, nil, nil, nil, config.NoLocation{}),
		[]Term{intType, intType}, nil, parentB, false, config.NoLocation{})

	j := e.NewJournal()
	if _, err := e.Unify(fnA, fnB, j); err != nil {
		t.Errorf("functions with identical shape but distinct enclosing classes should still unify via their Class view: %v", err)
	}
}
