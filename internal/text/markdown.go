package text

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/octodial/internal/engine"
)

// TableMarkdown renders the full product table, row operand times column operand.
func TableMarkdown(t *engine.Table, n engine.Notation) string {
	var b strings.Builder
	b.WriteString("| × |")
	for j := engine.Generator(0); j < engine.Units; j++ {
		b.WriteString(" " + n.Unit(j) + " |")
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", engine.Units))
	b.WriteString("\n")
	for i := engine.Generator(0); i < engine.Units; i++ {
		b.WriteString("| **" + n.Unit(i) + "** |")
		for j := engine.Generator(0); j < engine.Units; j++ {
			b.WriteString(" " + cell(t, i, j, n) + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cell(t *engine.Table, a, b engine.Generator, n engine.Notation) string {
	e, ok := t.Lookup(a, b)
	switch {
	case !ok || !e.Kind.Validate():
		return "?"
	case e.Square():
		return "-1"
	case e.Negative:
		return "-" + n.Unit(e.Result)
	default:
		return n.Unit(e.Result)
	}
}

// RulesMarkdown lists the rule positions with their visible triples and defining products.
func RulesMarkdown(d *engine.Dial, n engine.Notation) string {
	var b strings.Builder
	b.WriteString("| position | angle | visible | rule |\n|---|---|---|---|\n")
	for pos := 0; pos < engine.Units; pos++ {
		r := d.RuleAt(pos)
		units := make([]string, 0, len(r.Triple))
		for _, g := range r.Triple {
			units = append(units, n.Unit(g))
		}
		b.WriteString(fmt.Sprintf("| %d | %.2f° | %s | %s |\n",
			pos, float64(pos)*engine.DegreesPerPosition, strings.Join(units, " "),
			n.Product(r.Triple[0], r.Triple[1], r.Entry)))
	}
	return b.String()
}
