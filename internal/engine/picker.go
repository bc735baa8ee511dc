package engine

import (
	"io"
	"log/slog"
)

// Display is what the picker currently shows. Text is empty for DisplayEmpty.
type Display struct {
	Kind   DisplayKind
	First  Generator
	Second Generator
	Entry  Entry
	Text   string
}

// VisibleSet is the set of units that can be picked at the current rule position.
type VisibleSet = Triple

// Picker is the two-click "pick a pair" state machine.
// After a product is shown the mode is idle again but the product stays on display.
type Picker struct {
	table    *Table
	notation Notation
	log      *slog.Logger

	mode    PickerMode
	first   Generator
	display Display
}

type PickerOption func(*Picker)

func WithNotation(n Notation) PickerOption { return func(p *Picker) { p.notation = n } }

func WithPickerLogger(l *slog.Logger) PickerOption { return func(p *Picker) { p.log = l } }

func NewPicker(table *Table, opts ...PickerOption) *Picker {
	p := &Picker{
		table:    table,
		notation: PlainNotation{},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		mode:     ModeIdle,
		display:  Display{Kind: DisplayEmpty},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Picker) Mode() PickerMode { return p.mode }

// First is the pending operand; only meaningful in ModeAwaitingSecond.
func (p *Picker) First() Generator { return p.first }

func (p *Picker) Display() Display { return p.display }

// SetNotation changes how later picks are rendered and re-renders the current display.
func (p *Picker) SetNotation(n Notation) {
	p.notation = n
	switch p.display.Kind {
	case DisplaySingle:
		p.display.Text = n.Unit(p.display.First)
	case DisplayProduct:
		p.display.Text = n.Product(p.display.First, p.display.Second, p.display.Entry)
	}
}

// Click handles a click on unit u. Units outside visible are ignored; the return
// value reports whether the click was accepted.
func (p *Picker) Click(u Generator, visible VisibleSet) bool {
	if !u.Valid() || !visible.Contains(u) {
		p.log.Debug("click ignored", "unit", int(u), "visible", visible)
		return false
	}
	if p.mode != ModeAwaitingSecond {
		p.mode = ModeAwaitingSecond
		p.first = u
		p.display = Display{Kind: DisplaySingle, First: u, Text: p.notation.Unit(u)}
		p.log.Debug("first operand", "unit", int(u))
		return true
	}
	e, _ := p.table.Lookup(p.first, u)
	p.display = Display{
		Kind:   DisplayProduct,
		First:  p.first,
		Second: u,
		Entry:  e,
		Text:   p.notation.Product(p.first, u, e),
	}
	p.mode = ModeIdle
	p.log.Debug("product", "text", p.display.Text)
	return true
}

// Reset returns to idle and blanks the display.
func (p *Picker) Reset() {
	p.mode = ModeIdle
	p.first = 0
	p.display = Display{Kind: DisplayEmpty}
}
