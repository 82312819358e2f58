package typesystem

import (
	"testing"

	"github.com/funvibe/typecore/internal/config"
)

// P1: for all terms a, b and any journal J, after undo(J) the printed
// form of every reachable Link is identical to before the call,
// whether unify succeeded or failed.
func TestJournal_UndoIsIdentity(t *testing.T) {
	e := newTestEngine()
	a := e.FreshUnbound(false, config.NoLocation{})
	b := e.FreshUnbound(false, config.NoLocation{})
	before := ToString(a) + "|" + ToString(b)

	j := e.NewJournal()
	if _, err := e.Unify(a, b, j); err != nil {
		t.Fatalf("unify failed: %v", err)
	}
	e.Undo(j)

	after := ToString(a) + "|" + ToString(b)
	if before != after {
		t.Errorf("undo was not identity: before %q, after %q", before, after)
	}
}

func TestJournal_UndoTwicePanics(t *testing.T) {
	e := newTestEngine()
	a := e.FreshUnbound(false, config.NoLocation{})
	intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
	j := e.NewJournal()
	if _, err := e.Unify(a, intType, j); err != nil {
		t.Fatalf("unify failed: %v", err)
	}
	e.Undo(j)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic on double undo")
		}
		if _, ok := r.(*InvariantViolation); !ok {
			t.Errorf("expected *InvariantViolation, got %T", r)
		}
	}()
	e.Undo(j)
}

// P3: no Unbound's level ever increases across an engine operation.
// Unifying a shallow-scope variable with a deeper-scope one lowers the
// deeper one's level down to the shallow one's, journaled, and
// reversible.
func TestUnify_LevelLowering(t *testing.T) {
	e := newTestEngine() // level 1
	outer := e.FreshUnbound(false, config.NoLocation{})
	e.EnterScope() // level 2
	inner := e.FreshUnbound(false, config.NoLocation{})
	if inner.Level <= outer.Level {
		t.Fatalf("test setup: inner should start at a deeper level than outer")
	}

	wrapper := e.TupleOf([]Term{inner}, config.NoLocation{})
	j := e.NewJournal()
	if _, err := e.Unify(outer, wrapper, j); err != nil {
		t.Fatalf("unify failed: %v", err)
	}
	if inner.Level != outer.Level {
		t.Errorf("inner.Level = %d, want lowered to outer.Level = %d", inner.Level, outer.Level)
	}

	e.Undo(j)
	if inner.Level != 2 {
		t.Errorf("inner.Level after undo = %d, want restored to 2", inner.Level)
	}
}
