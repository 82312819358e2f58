package typesystem

import (
	"strconv"

	"github.com/funvibe/typecore/internal/config"
)

// Engine is one compilation unit's worth of type-inference state. The
// fresh-id counter and current level are instance fields rather than
// package globals, per the REDESIGN note in spec.md §9 ("Global
// counters ... should be encapsulated as engine-instance state so
// tests and parallel compilations do not interfere"). The engine is
// single-threaded and not safe for concurrent use (spec §5); a driver
// that wants parallelism shards by translation unit and keeps one
// Engine per shard.
type Engine struct {
	ids    IDAllocator
	level  int
	Logger Logger
	Config config.EngineConfig
}

// NewEngine creates a fresh, empty compilation unit. The current level
// starts at 1 (top level); EnterScope/ExitScope track nested scopes.
func NewEngine(cfg config.EngineConfig) *Engine {
	return &Engine{level: 1, Logger: NopLogger{}, Config: cfg}
}

func (e *Engine) logEvent(kind string, fields map[string]any) {
	if e.Config.Verbosity > 0 && e.Logger != nil {
		e.Logger.Event(kind, fields)
	}
}

// FreshID returns the next monotonic type-variable identifier.
func (e *Engine) FreshID() int { return e.ids.Fresh() }

// Level returns the current scope depth.
func (e *Engine) Level() int { return e.level }

// EnterScope increments the current level on scope entry.
func (e *Engine) EnterScope() {
	e.level++
	e.logEvent("scope.enter", map[string]any{"level": e.level})
}

// ExitScope decrements the current level on scope exit.
func (e *Engine) ExitScope() {
	e.logEvent("scope.exit", map[string]any{"level": e.level})
	e.level--
}

// FreshUnbound allocates a new free type variable at the current level.
func (e *Engine) FreshUnbound(isStatic bool, loc config.SourceLocation) *Link {
	return newUnbound(e.ids.Fresh(), e.level, isStatic, loc)
}

// FreshUnboundAt allocates a new free type variable at an explicit
// level, used by Instantiate to place fresh variables at the level the
// polymorphic use occurs at rather than the engine's current level.
func (e *Engine) FreshUnboundAt(level int, isStatic bool, loc config.SourceLocation) *Link {
	return newUnbound(e.ids.Fresh(), level, isStatic, loc)
}

// FreshGeneric wraps an already-allocated id as a rigid, universally
// quantified parameter (a skolem).
func (e *Engine) FreshGeneric(id int, isStatic bool, loc config.SourceLocation) *Link {
	return newGeneric(id, isStatic, loc)
}

// ClassOf constructs a nominal or record composite.
func (e *Engine) ClassOf(name string, isRecord bool, args []Term, explicits []Generic, parent *Class, loc config.SourceLocation) *Class {
	return &Class{Name: name, IsRecord: isRecord, Args: args, Explicits: explicits, Parent: parent, Loc: loc}
}

// TupleOf constructs the anonymous record Class view of a tuple; tuples
// unify by fields alone, ignoring Name (spec §4.2 rule 2, §8 P7).
func (e *Engine) TupleOf(args []Term, loc config.SourceLocation) *Class {
	return &Class{Name: "tuple", IsRecord: true, FromTuple: true, Args: args, Loc: loc}
}

// FunctionOf constructs a function type.
func (e *Engine) FunctionOf(name string, funcClass *Class, args []Term, explicits []Generic, parent *Class, ignoreParentGenerics bool, loc config.SourceLocation) *Function {
	return &Function{
		Name: name, FuncClass: funcClass, Args: args, Explicits: explicits,
		Parent: parent, IgnoreParentGenerics: ignoreParentGenerics, Loc: loc,
	}
}

// StaticOf constructs a compile-time-integer type over the given
// explicit generics and expression handle.
func (e *Engine) StaticOf(explicits []Generic, expr ExpressionReducer, loc config.SourceLocation) *Static {
	return &Static{Explicits: explicits, Expr: expr, Loc: loc}
}

// PartialOf constructs a partial application of fn, with one bit in
// knownTypes per formal parameter (true => already supplied).
func (e *Engine) PartialOf(fn *Function, knownTypes []bool, loc config.SourceLocation) *Partial {
	mask := make([]bool, len(knownTypes))
	copy(mask, knownTypes)
	return &Partial{Base: fn, KnownTypes: mask, Loc: loc}
}

// IntClass builds the nominal literal-value Class a bound Static
// generic resolves to; see staticBindingOf in predicates.go.
func IntClass(n int) *Class {
	return &Class{Name: strconv.Itoa(n)}
}

// NewJournal starts a new, empty unification attempt log.
func (e *Engine) NewJournal() *Journal { return NewJournal() }

// Undo reverts every mutation recorded by j.
func (e *Engine) Undo(j *Journal) { j.Undo() }
