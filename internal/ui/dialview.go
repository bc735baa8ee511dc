package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/octodial/internal/engine"
)

// Dial canvas geometry, in terminal cells. Cells are about twice as tall as wide,
// so horizontal radii are doubled.
const (
	dialW = 45
	dialH = 21
	dialX = dialW / 2
	dialY = dialH / 2

	unitRY   = 7
	unitRX   = 2 * unitRY
	windowRY = 9
	windowRX = 2 * windowRY

	// canvas origin on screen: title line and a blank line above, two columns of margin
	dialTop  = 2
	dialLeft = 2
)

// windowOffsets are the mask openings at rotation 0, in positions; they expose
// units p, p+1 and p+3 at rule position p.
var windowOffsets = [3]int{0, 1, 3}

type cellKind int

const (
	cellBlank cellKind = iota
	cellRing
	cellWindow
	cellLit
	cellHidden
	cellCenter
)

type cell struct {
	r    rune
	kind cellKind
}

type canvas [dialH][dialW]cell

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= dialW || y >= dialH {
		return
	}
	c[y][x] = cell{r: r, kind: k}
}

func (c *canvas) text(x, y int, s string, k cellKind) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, k)
	}
}

// polar converts a dial angle (degrees clockwise from 12 o'clock) to a canvas cell.
func polar(deg float64, rx, ry int) (int, int) {
	rad := deg * math.Pi / 180
	x := dialX + int(math.Round(float64(rx)*math.Sin(rad)))
	y := dialY - int(math.Round(float64(ry)*math.Cos(rad)))
	return x, y
}

// unitCell is the anchor cell of unit g's label.
func unitCell(g engine.Generator) (int, int) {
	return polar(float64(g)*engine.DegreesPerPosition, unitRX, unitRY)
}

// pointerAngle is the screen angle of a canvas cell around the dial centre, in degrees
// in (-180,180]. 0 is 3 o'clock and angles grow clockwise, as with atan2 on a y-down screen.
func pointerAngle(x, y int) float64 {
	dx := float64(x-dialX) / 2
	dy := float64(y - dialY)
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// toCanvas converts screen coordinates to canvas coordinates.
func toCanvas(sx, sy int) (int, int, bool) {
	x, y := sx-dialLeft, sy-dialTop
	return x, y, x >= 0 && y >= 0 && x < dialW && y < dialH
}

// unitAt returns the unit whose label covers canvas cell (x, y).
func unitAt(x, y int) (engine.Generator, bool) {
	for g := engine.Generator(0); g < engine.Units; g++ {
		ux, uy := unitCell(g)
		if y == uy && x >= ux-1 && x <= ux+1 {
			return g, true
		}
	}
	return 0, false
}

// drawDial paints the ring, the mask windows at the dial's continuous angle, the unit
// labels, and the picker display in the middle. lit marks the units drawn as clickable.
func drawDial(d *engine.Dial, n engine.Notation, lit func(engine.Generator) bool) *canvas {
	var c canvas
	for y := range c {
		for x := range c[y] {
			c[y][x] = cell{r: ' '}
		}
	}
	for deg := 0.0; deg < 360; deg += 4 {
		x, y := polar(deg, windowRX, windowRY)
		c.set(x, y, '·', cellRing)
	}
	for _, off := range windowOffsets {
		centre := float64(off)*engine.DegreesPerPosition + d.Angle()
		for _, spread := range []float64{-8, -4, 4, 8} {
			x, y := polar(centre+spread, windowRX, windowRY)
			c.set(x, y, '•', cellWindow)
		}
		x, y := polar(centre, windowRX, windowRY)
		c.set(x, y, '◆', cellWindow)
	}
	for g := engine.Generator(0); g < engine.Units; g++ {
		x, y := unitCell(g)
		kind := cellHidden
		if lit(g) {
			kind = cellLit
		}
		c.text(x-1, y, n.Unit(g), kind)
	}
	if txt := d.Display().Text; txt != "" {
		w := len([]rune(txt))
		c.text(dialX-w/2, dialY, txt, cellCenter)
	}
	return &c
}

func (c *canvas) render(st styles) string {
	styleOf := map[cellKind]lipgloss.Style{
		cellRing:   st.ring,
		cellWindow: st.window,
		cellLit:    st.lit,
		cellHidden: st.hidden,
		cellCenter: st.center,
	}
	var out strings.Builder
	margin := strings.Repeat(" ", dialLeft)
	for y := range c {
		out.WriteString(margin)
		var run []rune
		kind := cellBlank
		flush := func() {
			if len(run) == 0 {
				return
			}
			if s, ok := styleOf[kind]; ok {
				out.WriteString(s.Render(string(run)))
			} else {
				out.WriteString(string(run))
			}
			run = run[:0]
		}
		for _, cl := range c[y] {
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run = append(run, cl.r)
		}
		flush()
		if y < dialH-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}
