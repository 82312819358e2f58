package typesystem

import (
	"strconv"

	"github.com/funvibe/typecore/internal/config"
)

// Function is a callable type: Args[0] is the self/return slot by
// convention, the remaining entries are parameters. Its structural
// identity for unification purposes is its Class view (spec §4.5),
// which unifies function types and callable-like records uniformly.
type Function struct {
	Name                 string
	FuncClass            *Class
	Args                 []Term
	Explicits            []Generic
	Parent               *Class
	IgnoreParentGenerics bool
	Loc                  config.SourceLocation
}

func (*Function) isTerm() {}

// getClass builds the tuple-like Class view used to unify a Function:
// name inherited from FuncClass, IsRecord true, Args are the function's
// own arg/return types, and explicit generics are synthesized
// positionally (T0, T1, ...) paired with the Function's own generic
// Links so arg types are positionally matched through the generic
// mechanism (spec §4.5). Parent is always nil here, never f.Parent: the
// Class view compares functions purely by arg/return shape and
// explicits, so two method signatures from different enclosing classes
// can still unify.
func (f *Function) getClass() *Class {
	explicits := make([]Generic, len(f.Explicits))
	for i, g := range f.Explicits {
		explicits[i] = Generic{Name: "T" + strconv.Itoa(i), Link: g.Link, ID: g.ID}
	}
	return &Class{
		Name:         f.FuncClass.Name,
		IsRecord:     true,
		FromFunction: true,
		Args:         f.Args,
		Explicits:    explicits,
		Parent:       nil,
		Loc:          f.Loc,
	}
}
