package typesystem

import "github.com/funvibe/typecore/internal/config"

// Partial represents a function with a subset of its arguments already
// supplied. KnownTypes is a bitmask with one entry per formal parameter
// (true => the argument at that position is already bound). Its name is
// deterministically partial.<bitstring>.
type Partial struct {
	Base       *Function
	KnownTypes []bool
	Loc        config.SourceLocation
}

func (*Partial) isTerm() {}

// Name renders the deterministic partial.<bitstring> identifier, e.g.
// partial.101 for a 3-argument function with the first and last
// arguments already supplied.
func (p *Partial) Name() string {
	bits := make([]byte, len(p.KnownTypes))
	for i, known := range p.KnownTypes {
		if known {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return "partial." + string(bits)
}
