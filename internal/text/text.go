package text

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/DaanHessen/octodial/internal/engine"
)

// Notation names accepted by ByName.
const (
	NameUnicode = "unicode"
	NameASCII   = "ascii"
)

var subscripts = []rune("₀₁₂₃₄₅₆₇₈₉")

// unicodeNotation matches the web dial: i₀i₁ = i₃, i₃² = -1.
type unicodeNotation struct{}

func NewUnicode() engine.Notation { return unicodeNotation{} }

// NewASCII is the notation used when nothing else is configured.
func NewASCII() engine.Notation { return engine.PlainNotation{} }

func (unicodeNotation) Unit(g engine.Generator) string { return "i" + subscript(int(g)) }

func (n unicodeNotation) Product(a, b engine.Generator, e engine.Entry) string {
	switch {
	case a == b:
		return n.Unit(a) + "² = -1"
	case e.Kind == engine.EntryCross:
		sign := ""
		if e.Negative {
			sign = "-"
		}
		return n.Unit(a) + n.Unit(b) + " = " + sign + n.Unit(e.Result)
	default:
		return n.Unit(a) + n.Unit(b) + " = ?"
	}
}

func subscript(n int) string {
	if n < 0 {
		return "₋" + subscript(-n)
	}
	digits := fmt.Sprint(n)
	var b strings.Builder
	for _, d := range digits {
		b.WriteRune(subscripts[d-'0'])
	}
	return b.String()
}

// ByName resolves a configured notation name.
func ByName(name string) (engine.Notation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameUnicode, "":
		return NewUnicode(), nil
	case NameASCII:
		return NewASCII(), nil
	default:
		return nil, errors.Errorf("unknown notation %q", name)
	}
}

// Toggle returns the notation name after current.
func Toggle(current string) string {
	if current == NameASCII {
		return NameUnicode
	}
	return NameASCII
}
