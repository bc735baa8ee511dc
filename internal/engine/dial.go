package engine

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Rule describes one rule position: its visible triple and the product that defines it.
type Rule struct {
	Position int
	Triple   Triple
	Entry    Entry
}

// Dial is one independent dial instance: a rotary, a picker and the table they share.
// Rotating the dial always abandons a pick in progress.
type Dial struct {
	ID     uuid.UUID
	table  *Table
	rotary *Rotary
	picker *Picker
	log    *slog.Logger

	settles int
}

type DialOption func(*dialConfig)

type dialConfig struct {
	logger   *slog.Logger
	notation Notation
	onSettle func(position int)
}

func WithLogger(l *slog.Logger) DialOption { return func(c *dialConfig) { c.logger = l } }

func WithDialNotation(n Notation) DialOption { return func(c *dialConfig) { c.notation = n } }

// WithOnSettle observes every completed snap or step.
func WithOnSettle(fn func(position int)) DialOption {
	return func(c *dialConfig) { c.onSettle = fn }
}

// NewDial builds a dial over table; a nil table means DefaultTable.
func NewDial(table *Table, opts ...DialOption) *Dial {
	cfg := dialConfig{notation: PlainNotation{}}
	for _, o := range opts {
		o(&cfg)
	}
	if table == nil {
		table = DefaultTable()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &Dial{ID: uuid.New(), table: table}
	d.log = cfg.logger.With("dial_id", d.ID.String())
	d.picker = NewPicker(table, WithNotation(cfg.notation), WithPickerLogger(d.log))
	d.rotary = NewRotary(
		WithResetHook(d.picker.Reset),
		WithSettleHook(func(pos int) {
			d.settles++
			d.log.Info("position settled", "position", pos, "angle", d.rotary.Angle())
			if cfg.onSettle != nil {
				cfg.onSettle(pos)
			}
		}),
		WithRotaryLogger(d.log),
	)
	return d
}

func (d *Dial) Table() *Table { return d.table }

func (d *Dial) Position() int { return d.rotary.Position() }

func (d *Dial) Angle() float64 { return d.rotary.Angle() }

func (d *Dial) Dragging() bool { return d.rotary.Dragging() }

func (d *Dial) DragOffset() float64 { return d.rotary.DragOffset() }

// Settles counts completed snaps and steps since the dial was created.
func (d *Dial) Settles() int { return d.settles }

// VisibleSet is derived from the current position, never from what is drawn.
func (d *Dial) VisibleSet() VisibleSet { return d.table.Triple(d.rotary.Position()) }

// Rule returns the current rule position and its defining product.
func (d *Dial) Rule() Rule { return d.RuleAt(d.rotary.Position()) }

// RuleAt returns rule position pos (taken mod 7).
func (d *Dial) RuleAt(pos int) Rule {
	tr := d.table.Triple(pos)
	e, _ := d.table.Lookup(tr[0], tr[1])
	return Rule{Position: mod(pos, Units), Triple: tr, Entry: e}
}

func (d *Dial) BeginDrag(pointerDegrees float64) { d.rotary.BeginDrag(pointerDegrees) }

func (d *Dial) ContinueDrag(pointerDegrees float64) { d.rotary.ContinueDrag(pointerDegrees) }

func (d *Dial) EndDrag() { d.rotary.EndDrag() }

func (d *Dial) StepNext() { d.rotary.StepNext() }

func (d *Dial) StepPrevious() { d.rotary.StepPrevious() }

// Click picks unit u if it is visible at the current position.
func (d *Dial) Click(u Generator) bool { return d.picker.Click(u, d.VisibleSet()) }

func (d *Dial) Display() Display { return d.picker.Display() }

func (d *Dial) Mode() PickerMode { return d.picker.Mode() }

func (d *Dial) SetNotation(n Notation) { d.picker.SetNotation(n) }
