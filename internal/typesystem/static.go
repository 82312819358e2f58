package typesystem

import "github.com/funvibe/typecore/internal/config"

// ExpressionReducer is the external, pure black-box reducer consumed by
// Static types (spec §4.6, §6). It is a collaborator, not part of the
// engine: the engine only ever calls String (for the syntactic-identity
// check in Static-vs-Static unification) and Eval (to realize). Ready
// being false means "not realizable yet", never an error (spec §4.8) —
// a real implementation backs this with the language's expression
// evaluator; internal/staticeval provides a small reference one.
type ExpressionReducer interface {
	// String returns the expression's canonical printed form. Two
	// Statics unify only if their reducers print identically; this is a
	// deliberate conservatism (spec §4.2 rule 4, §9) — N+1 and 1+N are
	// not unified.
	String() string
	// Eval reduces the expression given integer bindings for its free
	// names, which correspond to the Static's Explicits names.
	Eval(bindings map[string]int) (value int, ready bool)
}

// Static is a compile-time-integer type: an expression over a set of
// named, explicitly-generic integer bindings. It realizes to the
// integer the evaluator returns for the current bindings.
type Static struct {
	Explicits []Generic
	Expr      ExpressionReducer
	Loc       config.SourceLocation
}

func (*Static) isTerm() {}
