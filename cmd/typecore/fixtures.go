package main

import (
	"fmt"

	"github.com/funvibe/typecore/internal/config"
	"github.com/funvibe/typecore/internal/staticeval"
	"github.com/funvibe/typecore/internal/typesystem"
)

// fixture builds a pair of terms to unify plus, on success, the term
// whose realizeString should be recorded. Fixtures stand in for what a
// real frontend would hand the engine after parsing and name
// resolution — scope explicitly excluded from this engine (spec §1).
type fixture func(e *typesystem.Engine) (left, right typesystem.Term, realizeTarget typesystem.Term)

var fixtures = map[string]fixture{
	"list-var-vs-list-int": func(e *typesystem.Engine) (typesystem.Term, typesystem.Term, typesystem.Term) {
		intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
		v := e.FreshUnbound(false, config.NoLocation{})
		listVar := e.ClassOf("List", false, nil, []typesystem.Generic{{Name: "T", Link: v, ID: v.ID}}, nil, config.NoLocation{})
		listInt := e.ClassOf("List", false, nil, []typesystem.Generic{{Name: "T", Link: boundLink(e, intType)}}, nil, config.NoLocation{})
		return listVar, listInt, listVar
	},
	"point-vs-vector": func(e *typesystem.Engine) (typesystem.Term, typesystem.Term, typesystem.Term) {
		intType := e.ClassOf("Int", false, nil, nil, nil, config.NoLocation{})
		point := e.ClassOf("Point", false, []typesystem.Term{intType, intType}, nil, nil, config.NoLocation{})
		vector := e.ClassOf("Vector", false, []typesystem.Term{intType, intType}, nil, nil, config.NoLocation{})
		return point, vector, nil
	},
	"static-n-plus-one": func(e *typesystem.Engine) (typesystem.Term, typesystem.Term, typesystem.Term) {
		expr := staticeval.Add(staticeval.Var("N"), staticeval.Const(1))
		nVar := e.FreshUnbound(true, config.NoLocation{})
		s1 := e.StaticOf([]typesystem.Generic{{Name: "N", Link: nVar, ID: nVar.ID}}, expr, config.NoLocation{})
		s2 := e.StaticOf([]typesystem.Generic{{Name: "N", Link: boundLink(e, typesystem.IntClass(3))}}, expr, config.NoLocation{})
		return s1, s2, s1
	},
}

// boundLink returns a fresh Link already Linked to target, the
// constructor-less shortcut a real frontend would not need since it
// builds bound Links through ordinary unification instead.
func boundLink(e *typesystem.Engine, target typesystem.Term) *typesystem.Link {
	l := e.FreshUnbound(false, config.NoLocation{})
	j := e.NewJournal()
	if _, err := e.Unify(l, target, j); err != nil {
		panic(fmt.Sprintf("typecore: fixture setup: %v", err))
	}
	return l
}

func lookupFixture(name string) (fixture, error) {
	f, ok := fixtures[name]
	if !ok {
		return nil, fmt.Errorf("typecore: unknown fixture %q", name)
	}
	return f, nil
}
