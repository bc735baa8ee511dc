package engine

import (
	"io"
	"log/slog"
	"math"
)

// DegreesPerPosition is the angular spacing between rule positions.
const DegreesPerPosition = 360.0 / Units

// Rotary tracks the dial's continuous angle and the rule position it is snapped to.
// It is owned by a single event loop and is not safe for concurrent use.
type Rotary struct {
	angle    float64
	position int

	dragging     bool
	dragOrigin   float64
	lastPointer  float64
	lastAdjusted float64

	onReset  func()
	onSettle func(position int)
	log      *slog.Logger
}

type RotaryOption func(*Rotary)

// WithResetHook is called when a drag begins or a step command runs, before the angle moves.
func WithResetHook(fn func()) RotaryOption { return func(r *Rotary) { r.onReset = fn } }

// WithSettleHook is called once after each completed EndDrag, StepNext or StepPrevious.
func WithSettleHook(fn func(position int)) RotaryOption {
	return func(r *Rotary) { r.onSettle = fn }
}

func WithRotaryLogger(l *slog.Logger) RotaryOption { return func(r *Rotary) { r.log = l } }

func NewRotary(opts ...RotaryOption) *Rotary {
	r := &Rotary{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Angle is the accumulated rotation in degrees; it may exceed a full turn.
func (r *Rotary) Angle() float64 { return r.angle }

// Position is the current rule position in [0,6]. Not authoritative while Dragging.
func (r *Rotary) Position() int { return r.position }

func (r *Rotary) Dragging() bool { return r.dragging }

// DragOffset is the rotation accumulated since BeginDrag, or 0 when no drag is active.
func (r *Rotary) DragOffset() float64 {
	if !r.dragging {
		return 0
	}
	return r.angle - r.dragOrigin
}

// LastAdjustment is the snap or step delta applied by the most recent completed operation.
func (r *Rotary) LastAdjustment() float64 { return r.lastAdjusted }

func (r *Rotary) BeginDrag(pointerDegrees float64) {
	r.dragging = true
	r.dragOrigin = r.angle
	r.lastPointer = pointerDegrees
	r.reset()
	r.log.Debug("drag begin", "pointer", pointerDegrees, "angle", r.angle)
}

// ContinueDrag follows the pointer without snapping. Ignored when no drag is active.
func (r *Rotary) ContinueDrag(pointerDegrees float64) {
	if !r.dragging {
		return
	}
	delta := pointerDegrees - r.lastPointer
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	r.angle += delta
	r.lastPointer = pointerDegrees
}

// EndDrag snaps to the nearest position along the shortest path. Ignored when no drag is active.
func (r *Rotary) EndDrag() {
	if !r.dragging {
		return
	}
	r.dragging = false
	target := NearestPosition(r.angle)
	from := r.angle
	r.moveTo(target)
	r.log.Debug("drag end", "from", from, "angle", r.angle, "position", r.position)
	r.settle()
}

func (r *Rotary) StepNext() { r.step(1) }

func (r *Rotary) StepPrevious() { r.step(-1) }

func (r *Rotary) step(dir int) {
	r.reset()
	target := mod(r.position+dir, Units)
	r.moveTo(target)
	r.log.Debug("step", "dir", dir, "angle", r.angle, "position", r.position)
	r.settle()
}

func (r *Rotary) moveTo(target int) {
	d := ShortestDelta(NormalizeDegrees(r.angle), float64(target)*DegreesPerPosition)
	r.angle += d
	r.lastAdjusted = d
	r.position = target
}

func (r *Rotary) reset() {
	if r.onReset != nil {
		r.onReset()
	}
}

func (r *Rotary) settle() {
	if r.onSettle != nil {
		r.onSettle(r.position)
	}
}

// NormalizeDegrees maps any angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	n := math.Mod(math.Mod(deg, 360)+360, 360)
	if n >= 360 {
		n = 0
	}
	return n
}

// NearestPosition returns the rule position whose canonical angle is closest to deg.
// Halfway angles round up, and 6.5 wraps to position 0.
func NearestPosition(deg float64) int {
	idx := int(math.Floor(NormalizeDegrees(deg)/DegreesPerPosition + 0.5))
	return mod(idx, Units)
}

// ShortestDelta returns the signed rotation from one angle to another, in (-180,180].
func ShortestDelta(from, to float64) float64 {
	d := NormalizeDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}
