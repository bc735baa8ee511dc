package engine

import "fmt"

// Notation renders picker output. PlainNotation is used unless a dial is given another.
type Notation interface {
	Unit(g Generator) string
	Product(a, b Generator, e Entry) string
}

// PlainNotation renders ASCII forms: "i_0", "i_0 i_1 = -i_3", "i_3^2 = -1".
type PlainNotation struct{}

func (PlainNotation) Unit(g Generator) string { return fmt.Sprintf("i_%d", int(g)) }

func (n PlainNotation) Product(a, b Generator, e Entry) string {
	switch {
	case a == b:
		return fmt.Sprintf("i_%d^2 = -1", int(a))
	case e.Kind == EntryCross:
		sign := ""
		if e.Negative {
			sign = "-"
		}
		return fmt.Sprintf("%s %s = %s%s", n.Unit(a), n.Unit(b), sign, n.Unit(e.Result))
	default:
		return fmt.Sprintf("%s %s = undefined", n.Unit(a), n.Unit(b))
	}
}
