package engine

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Units is the number of imaginary generators i0..i6, and also the number of dial positions.
const Units = 7

// Generator identifies one of the imaginary units i0..i6.
type Generator int

// Valid reports whether g is in [0,6].
func (g Generator) Valid() bool { return g >= 0 && g < Units }

func (g Generator) String() string { return fmt.Sprintf("i%d", int(g)) }

// Triple is one visible triple [L, M, N]; L*M = +N for every triple in Triples.
type Triple [3]Generator

// Contains reports whether g is a member of the triple.
func (t Triple) Contains(g Generator) bool {
	return t[0] == g || t[1] == g || t[2] == g
}

// Third returns the member that is neither a nor b; ok is false when there is none.
func (t Triple) Third(a, b Generator) (Generator, bool) {
	for _, g := range t {
		if g != a && g != b {
			return g, true
		}
	}
	return 0, false
}

// Triples are the visible triples, indexed by rule position.
var Triples = [Units]Triple{
	{0, 1, 3},
	{1, 2, 4},
	{2, 3, 5},
	{3, 4, 6},
	{4, 5, 0},
	{5, 6, 1},
	{6, 0, 2},
}

// Entry is one cell of the multiplication table.
// Square entries stand for the scalar -1; cross entries for +-i_Result.
type Entry struct {
	Kind     EntryKind
	Result   Generator
	Negative bool
}

// Square reports whether the entry is i_n * i_n = -1.
func (e Entry) Square() bool { return e.Kind == EntrySquare }

// Table is the complete 7x7 product table. It is never mutated after BuildTable returns.
type Table struct {
	entries [Units][Units]Entry
	triples [Units]Triple
}

// Lookup returns the entry for a*b. ok is false only for out of range generators.
func (t *Table) Lookup(a, b Generator) (Entry, bool) {
	if t == nil || !a.Valid() || !b.Valid() {
		return Entry{}, false
	}
	return t.entries[a][b], true
}

// Triple returns the visible triple at rule position pos (taken mod 7).
func (t *Table) Triple(pos int) Triple {
	return t.triples[mod(pos, Units)]
}

// Len is the number of defined entries; 49 for a well formed table.
func (t *Table) Len() int {
	n := 0
	for a := range t.entries {
		for b := range t.entries[a] {
			if t.entries[a][b].Kind.Validate() {
				n++
			}
		}
	}
	return n
}

// isClockwise reports whether a->b->c runs clockwise around the 7-point cycle.
// Argument order matters: swapping a and b flips the answer for distinct inputs.
func isClockwise(a, b, c Generator) bool {
	a = Generator(mod(int(a), Units))
	b = Generator(mod(int(b), Units))
	c = Generator(mod(int(c), Units))
	if a < b && b < c {
		return true
	}
	if a < b && c < a {
		return true
	}
	if b < c && c < a {
		return true
	}
	return false
}

// ValidateCovering checks that every unordered pair of distinct generators
// shares exactly one triple and that each triple has three distinct valid members.
func ValidateCovering(triples [Units]Triple) error {
	var cover [Units][Units]int
	for pos, tr := range triples {
		for _, g := range tr {
			if !g.Valid() {
				return errors.Errorf("triple %d: generator %d out of range", pos, int(g))
			}
		}
		for i, g := range tr {
			for _, h := range tr[i+1:] {
				if g == h {
					return errors.Errorf("triple %d: generator %d repeated", pos, int(g))
				}
				cover[g][h]++
				cover[h][g]++
			}
		}
	}
	for a := 0; a < Units; a++ {
		for b := a + 1; b < Units; b++ {
			if cover[a][b] != 1 {
				return errors.Errorf("pair (%d,%d) covered %d times", a, b, cover[a][b])
			}
		}
	}
	return nil
}

// BuildTable derives the signed product table from a triple set.
func BuildTable(triples [Units]Triple) (*Table, error) {
	if err := ValidateCovering(triples); err != nil {
		return nil, errors.Wrap(err, "invalid triple set")
	}
	t := &Table{triples: triples}
	for i := Generator(0); i < Units; i++ {
		t.entries[i][i] = Entry{Kind: EntrySquare, Result: -1}
	}
	for i := Generator(0); i < Units; i++ {
		for j := Generator(0); j < Units; j++ {
			if i == j {
				continue
			}
			tr, ok := tripleFor(triples, i, j)
			if !ok {
				return nil, errors.Errorf("no triple contains (%d,%d)", int(i), int(j))
			}
			k, ok := tr.Third(i, j)
			if !ok {
				return nil, errors.Errorf("triple %v has no third member for (%d,%d)", tr, int(i), int(j))
			}
			t.entries[i][j] = Entry{Kind: EntryCross, Result: k, Negative: !isClockwise(i, j, k)}
		}
	}
	return t, nil
}

// MustBuildTable is BuildTable for fixed configuration; it panics on a bad triple set.
func MustBuildTable(triples [Units]Triple) *Table {
	t, err := BuildTable(triples)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = sync.OnceValue(func() *Table { return MustBuildTable(Triples) })

// DefaultTable returns the shared table built from Triples.
func DefaultTable() *Table { return defaultTable() }

func tripleFor(triples [Units]Triple, a, b Generator) (Triple, bool) {
	for _, tr := range triples {
		if tr.Contains(a) && tr.Contains(b) {
			return tr, true
		}
	}
	return Triple{}, false
}

func mod(n, m int) int {
	return ((n % m) + m) % m
}
